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

package domain

import "github.com/ecodeclub/jobboard/internal/pkg/apiclient"

type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusPending    Status = "pending"
	StatusParsed     Status = "parsed"
	StatusProcessing Status = "processing"
	StatusAnalyzed   Status = "analyzed"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

type Resume struct {
	ID         string
	Title      string
	Status     Status
	Visibility Visibility
	CreatedAt  string
}

// Analyzed 后端两种状态都用过
func (r Resume) Analyzed() bool {
	return r.Status == StatusAnalyzed || r.Status == StatusCompleted
}

// Content 解析出来的简历内容
type Content struct {
	FullName    string
	Email       string
	Phone       string
	Location    string
	LinkedinURL string
	Summary     string
	RawText     string
}

// Analysis 分数都是 0 到 10
type Analysis struct {
	OverallScore           float64
	ContentScore           float64
	FormattingScore        float64
	ATSCompatibilityScore  float64
	Strengths              []string
	Weaknesses             []string
	ImprovementSuggestions []string
}

type ScoreLevel string

const (
	ScoreGood ScoreLevel = "good"
	ScoreFair ScoreLevel = "fair"
	ScorePoor ScoreLevel = "poor"
)

func LevelOf(score float64) ScoreLevel {
	switch {
	case score >= 7:
		return ScoreGood
	case score >= 5:
		return ScoreFair
	default:
		return ScorePoor
	}
}

type Upload struct {
	Title      string
	Visibility Visibility
	File       apiclient.File
}

// Update 零值的字段不修改
type Update struct {
	Title      string
	Visibility Visibility
}
