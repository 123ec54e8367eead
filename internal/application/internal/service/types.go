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

import "github.com/ecodeclub/jobboard/internal/application/internal/domain"

type companyDTO struct {
	Name string `json:"name"`
}

type jobDTO struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Status  string      `json:"status"`
	Company *companyDTO `json:"company"`
}

type resumeDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type applicationDTO struct {
	ID             string     `json:"id"`
	ApplicantEmail string     `json:"applicant_email"`
	ResumeID       string     `json:"resume_id"`
	ResumeTitle    string     `json:"resume_title"`
	Resume         *resumeDTO `json:"resume"`
	Job            jobDTO     `json:"job"`
	// JobTitle 有的接口只返回职位标题
	JobTitle    string  `json:"job_title"`
	IsApproved  bool    `json:"is_approved"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	CoverLetter *string `json:"cover_letter"`
	CreatedAt   string  `json:"created_at"`
}

func (a applicationDTO) toDomain() domain.Application {
	res := domain.Application{
		ID:             a.ID,
		ApplicantEmail: a.ApplicantEmail,
		ResumeID:       a.ResumeID,
		ResumeTitle:    a.ResumeTitle,
		Job: domain.Job{
			ID:     a.Job.ID,
			Title:  a.Job.Title,
			Status: a.Job.Status,
		},
		IsApproved:  a.IsApproved,
		Status:      domain.Status(deref(a.Status)),
		Notes:       deref(a.Notes),
		CoverLetter: deref(a.CoverLetter),
		CreatedAt:   a.CreatedAt,
	}
	if a.Job.Company != nil {
		res.Job.CompanyName = a.Job.Company.Name
	}
	if res.Job.Title == "" {
		res.Job.Title = a.JobTitle
	}
	if a.Resume != nil {
		if res.ResumeID == "" {
			res.ResumeID = a.Resume.ID
		}
		if res.ResumeTitle == "" {
			res.ResumeTitle = a.Resume.Title
		}
	}
	return res
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
