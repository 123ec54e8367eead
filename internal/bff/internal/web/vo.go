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
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/resume"
)

type DashboardReq struct {
	pagination.Query
}

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	// EmailVerified 没有验证邮箱的时候页面上提示重新发送
	EmailVerified bool `json:"emailVerified"`
}

type Resume struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Visibility string `json:"visibility"`
	CreatedAt  string `json:"createdAt"`
	Analyzed   bool   `json:"analyzed"`
}

type Application struct {
	ID          string `json:"id"`
	JobID       string `json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	ResumeTitle string `json:"resumeTitle"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// SeekerDashboard 求职者首页，两个区块互不影响
type SeekerDashboard struct {
	User              User          `json:"user"`
	Resumes           []Resume      `json:"resumes"`
	ResumesTotal      int           `json:"resumesTotal"`
	ResumesError      string        `json:"resumesError,omitempty"`
	Applications      []Application `json:"applications"`
	ApplicationsTotal int           `json:"applicationsTotal"`
	ApplicationsError string        `json:"applicationsError,omitempty"`
}

type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Job struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	IsRemote  bool   `json:"isRemote"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type RecruiterDashboard struct {
	User User `json:"user"`
	// Company 还没有创建公司的时候为空
	Company           *Company               `json:"company"`
	Jobs              pagination.PageVO[Job] `json:"jobs"`
	JobsError         string                 `json:"jobsError,omitempty"`
	ApplicationsCount int                    `json:"applicationsCount"`
}

type AdminDashboard struct {
	User           User `json:"user"`
	TotalUsers     int  `json:"totalUsers"`
	TotalResumes   int  `json:"totalResumes"`
	TotalJobs      int  `json:"totalJobs"`
	TotalCompanies int  `json:"totalCompanies"`
}

func newUser(u sessionx.User) User {
	return User{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName(),
		Role:          string(u.Role),
		EmailVerified: u.EmailVerified,
	}
}

func newResumes(rs []resume.Resume) []Resume {
	return slice.Map(rs, func(idx int, src resume.Resume) Resume {
		return Resume{
			ID:         src.ID,
			Title:      src.Title,
			Status:     string(src.Status),
			Visibility: string(src.Visibility),
			CreatedAt:  src.CreatedAt,
			Analyzed:   src.Analyzed(),
		}
	})
}

func newApplications(as []application.Application) []Application {
	return slice.Map(as, func(idx int, src application.Application) Application {
		return Application{
			ID:          src.ID,
			JobID:       src.Job.ID,
			JobTitle:    src.Job.Title,
			CompanyName: src.Job.CompanyName,
			ResumeTitle: src.ResumeTitle,
			Status:      string(src.DisplayStatus()),
			CreatedAt:   src.CreatedAt,
		}
	})
}

func newCompany(c company.Company) *Company {
	return &Company{ID: c.ID, Name: c.Name, Logo: c.Logo}
}

func newJob(j job.Job) Job {
	return Job{
		ID:        j.ID,
		Title:     j.Title,
		Location:  j.Location,
		IsRemote:  j.IsRemote,
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt,
	}
}
