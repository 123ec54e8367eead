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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/resume"
)

type ListReq struct {
	pagination.Query
}

type ConfirmReq struct {
	Confirm bool `json:"confirm"`
}

type ApplyReq struct {
	ResumeID string `json:"resume_id"`
}

type MatchReq struct {
	ResumeID string `json:"resume_id"`
}

type PostingReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SkillsRequired []string `json:"skillsRequired"`
	Location       string   `json:"location"`
	IsRemote       bool     `json:"isRemote"`
}

func (r PostingReq) toDomain() domain.Posting {
	return domain.Posting{
		Title:          r.Title,
		Description:    r.Description,
		SkillsRequired: r.SkillsRequired,
		Location:       r.Location,
		IsRemote:       r.IsRemote,
	}.Normalize()
}

type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
}

type Job struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SkillsRequired []string `json:"skillsRequired"`
	Location       string   `json:"location"`
	IsRemote       bool     `json:"isRemote"`
	Status         string   `json:"status"`
	Company        *Company `json:"company,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

type JobList = pagination.PageVO[Job]

type ResumeOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ApplyPage 只列出已经分析完成的简历，默认选中第一份
type ApplyPage struct {
	Job              Job            `json:"job"`
	Resumes          []ResumeOption `json:"resumes"`
	SelectedResumeID string         `json:"selectedResumeId"`
	ResumesError     string         `json:"resumesError,omitempty"`
}

type Match struct {
	JobID    string   `json:"jobId"`
	ResumeID string   `json:"resumeId"`
	Score    float64  `json:"score"`
	Matches  []string `json:"matches"`
}

type RedirectVO struct {
	Redirect string `json:"redirect"`
}

type CreateResp struct {
	Job      Job    `json:"job"`
	Redirect string `json:"redirect"`
}

func newJob(j domain.Job) Job {
	res := Job{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		SkillsRequired: j.SkillsRequired,
		Location:       j.Location,
		IsRemote:       j.IsRemote,
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if j.Company != nil {
		res.Company = &Company{
			ID:          j.Company.ID,
			Name:        j.Company.Name,
			Description: j.Company.Description,
			Website:     j.Company.Website,
			Logo:        j.Company.Logo,
		}
	}
	return res
}

func newMatch(m domain.MatchResult) Match {
	return Match{
		JobID:    m.JobID,
		ResumeID: m.ResumeID,
		Score:    m.Score,
		Matches:  m.Matches,
	}
}

func newResumeOptions(list []resume.Resume) []ResumeOption {
	analyzed := slice.FindAll(list, func(src resume.Resume) bool {
		return src.Analyzed()
	})
	return slice.Map(analyzed, func(idx int, src resume.Resume) ResumeOption {
		return ResumeOption{ID: src.ID, Title: src.Title}
	})
}

func toJobList(state pagination.State[domain.Job, string]) JobList {
	return pagination.ToVO(state, func(idx int, src domain.Job) Job {
		return newJob(src)
	})
}
