// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
)

type ListReq struct {
	pagination.Query
}

type EditReq struct {
	Title      string `json:"title"`
	Visibility string `json:"visibility"`
}

type Resume struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Visibility  string `json:"visibility"`
	CreatedAt   string `json:"createdAt"`
	Analyzed    bool   `json:"analyzed"`
	DownloadURL string `json:"downloadUrl"`
}

type ResumeList = pagination.PageVO[Resume]

type Content struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LinkedinURL string `json:"linkedinUrl"`
	Summary     string `json:"summary"`
	RawText     string `json:"rawText"`
}

type Score struct {
	Value float64 `json:"value"`
	Level string  `json:"level"`
}

type Analysis struct {
	Overall                Score    `json:"overall"`
	Content                Score    `json:"content"`
	Formatting             Score    `json:"formatting"`
	ATSCompatibility       Score    `json:"atsCompatibility"`
	Strengths              []string `json:"strengths"`
	Weaknesses             []string `json:"weaknesses"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
}

// ContentPage 简历内容页，分析结果加载失败不影响内容的展示
type ContentPage struct {
	Resume        Resume    `json:"resume"`
	Content       Content   `json:"content"`
	Analysis      *Analysis `json:"analysis,omitempty"`
	AnalysisError string    `json:"analysisError,omitempty"`
}

type AnalysisPage struct {
	Resume   Resume   `json:"resume"`
	Analysis Analysis `json:"analysis"`
}

type UploadResp struct {
	Resume   Resume `json:"resume"`
	Redirect string `json:"redirect"`
}

func newContent(c domain.Content) Content {
	return Content{
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		Location:    c.Location,
		LinkedinURL: c.LinkedinURL,
		Summary:     c.Summary,
		RawText:     c.RawText,
	}
}

func newScore(v float64) Score {
	return Score{Value: v, Level: string(domain.LevelOf(v))}
}

func newAnalysis(a domain.Analysis) Analysis {
	return Analysis{
		Overall:                newScore(a.OverallScore),
		Content:                newScore(a.ContentScore),
		Formatting:             newScore(a.FormattingScore),
		ATSCompatibility:       newScore(a.ATSCompatibilityScore),
		Strengths:              a.Strengths,
		Weaknesses:             a.Weaknesses,
		ImprovementSuggestions: a.ImprovementSuggestions,
	}
}
