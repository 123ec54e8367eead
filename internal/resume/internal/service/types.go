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

package service

import "github.com/ecodeclub/jobboard/internal/resume/internal/domain"

type resumeDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Visibility string `json:"visibility"`
	CreatedAt  string `json:"created_at"`
}

func (r resumeDTO) toDomain() domain.Resume {
	return domain.Resume{
		ID:         r.ID,
		Title:      r.Title,
		Status:     domain.Status(r.Status),
		Visibility: domain.Visibility(r.Visibility),
		CreatedAt:  r.CreatedAt,
	}
}

type contentDTO struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	LinkedinURL *string `json:"linkedin_url"`
	Summary     *string `json:"summary"`
	RawText     *string `json:"raw_text"`
}

func (c contentDTO) toDomain() domain.Content {
	return domain.Content{
		FullName:    deref(c.FullName),
		Email:       deref(c.Email),
		Phone:       deref(c.Phone),
		Location:    deref(c.Location),
		LinkedinURL: deref(c.LinkedinURL),
		Summary:     deref(c.Summary),
		RawText:     deref(c.RawText),
	}
}

type analysisDTO struct {
	OverallScore           float64  `json:"overall_score"`
	ContentScore           float64  `json:"content_score"`
	FormattingScore        float64  `json:"formatting_score"`
	ATSCompatibilityScore  float64  `json:"ats_compatibility_score"`
	Strengths              []string `json:"strengths"`
	Weaknesses             []string `json:"weaknesses"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

func (a analysisDTO) toDomain() domain.Analysis {
	return domain.Analysis{
		OverallScore:           a.OverallScore,
		ContentScore:           a.ContentScore,
		FormattingScore:        a.FormattingScore,
		ATSCompatibilityScore:  a.ATSCompatibilityScore,
		Strengths:              a.Strengths,
		Weaknesses:             a.Weaknesses,
		ImprovementSuggestions: a.ImprovementSuggestions,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
