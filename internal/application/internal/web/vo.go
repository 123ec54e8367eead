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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
)

// allStatus 页面上的"全部"选项
const allStatus = "all"

type ListReq struct {
	pagination.Query
}

type ApplicantsReq struct {
	pagination.Query
	Status string `form:"status"`
	Search string `form:"search"`
}

type JobApplicationsReq struct {
	pagination.Query
	Status string `form:"status"`
}

type ConfirmReq struct {
	Confirm bool `json:"confirm"`
}

type DecisionReq struct {
	Notes string `json:"notes"`
}

type StatusReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type NotesReq struct {
	Notes string `json:"notes"`
}

type Application struct {
	ID             string `json:"id"`
	ApplicantEmail string `json:"applicantEmail"`
	ResumeID       string `json:"resumeId"`
	ResumeTitle    string `json:"resumeTitle"`
	JobID          string `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	// Status 页面上展示的状态
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	CoverLetter string `json:"coverLetter"`
	CreatedAt   string `json:"createdAt"`
}

type ApplicationList = pagination.PageVO[Application]

// DecisionResp 操作成功之后已经打开的列表都会刷新
type DecisionResp struct {
	Applicants      *ApplicationList `json:"applicants,omitempty"`
	JobApplications *ApplicationList `json:"jobApplications,omitempty"`
}

type ResumeLink struct {
	URL string `json:"url"`
}

// parseStatus 空字符串和 all 表示不过滤
func parseStatus(s string) (domain.Status, bool) {
	if s == "" || s == allStatus {
		return "", true
	}
	st := domain.Status(s)
	return st, st.Valid()
}

func newApplication(a domain.Application) Application {
	return Application{
		ID:             a.ID,
		ApplicantEmail: a.ApplicantEmail,
		ResumeID:       a.ResumeID,
		ResumeTitle:    a.ResumeTitle,
		JobID:          a.Job.ID,
		JobTitle:       a.Job.Title,
		CompanyName:    a.Job.CompanyName,
		Status:         string(a.DisplayStatus()),
		Notes:          a.Notes,
		CoverLetter:    a.CoverLetter,
		CreatedAt:      a.CreatedAt,
	}
}

func toList(state pagination.State[domain.Application, domain.Filter]) ApplicationList {
	return pagination.ToVO(state, func(idx int, src domain.Application) Application {
		return newApplication(src)
	})
}
