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

import "github.com/ecodeclub/jobboard/internal/job/internal/domain"

type companyDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Logo        *string `json:"logo"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type jobDTO struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	SkillsRequired []string    `json:"skills_required"`
	Location       *string     `json:"location"`
	IsRemote       bool        `json:"is_remote"`
	Status         string      `json:"status"`
	Company        *companyDTO `json:"company"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

func (j jobDTO) toDomain() domain.Job {
	res := domain.Job{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		SkillsRequired: j.SkillsRequired,
		Location:       deref(j.Location),
		IsRemote:       j.IsRemote,
		Status:         domain.Status(j.Status),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if j.Company != nil {
		res.Company = &domain.Company{
			ID:          j.Company.ID,
			Name:        j.Company.Name,
			Description: deref(j.Company.Description),
			Website:     deref(j.Company.Website),
			Logo:        deref(j.Company.Logo),
			CreatedAt:   j.Company.CreatedAt,
			UpdatedAt:   j.Company.UpdatedAt,
		}
	}
	return res
}

type postingDTO struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SkillsRequired []string `json:"skills_required"`
	Location       string   `json:"location,omitempty"`
	IsRemote       bool     `json:"is_remote"`
}

func newPostingDTO(p domain.Posting) postingDTO {
	return postingDTO{
		Title:          p.Title,
		Description:    p.Description,
		SkillsRequired: p.SkillsRequired,
		Location:       p.Location,
		IsRemote:       p.IsRemote,
	}
}

// matchDTO 有的版本返回 score，有的返回 match_score
type matchDTO struct {
	JobID      string   `json:"job_id"`
	ResumeID   string   `json:"resume_id"`
	Score      *float64 `json:"score"`
	MatchScore float64  `json:"match_score"`
	Matches    []string `json:"matches"`
}

func (m matchDTO) toDomain() domain.MatchResult {
	score := m.MatchScore
	if m.Score != nil {
		score = *m.Score
	}
	return domain.MatchResult{
		JobID:    m.JobID,
		ResumeID: m.ResumeID,
		Score:    score,
		Matches:  m.Matches,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
