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

import (
	"context"
	"net/url"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
)

const (
	companiesPath = "/api/companies/"
	// 公司列表页从前 100 个职位里面整理
	listingJobsLimit = 100
)

//go:generate mockgen -source=./company.go -package=svcmocks -destination=./mocks/company.mock.go -typed CompanyService
type CompanyService interface {
	// MyCompany 招聘者所在的第一家公司，还没有的时候后端返回 404
	MyCompany(ctx context.Context, conn *apiclient.Conn) (domain.Company, error)
	Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Company, error)
	List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.Company, int, error)
	// Create 创建者会自动成为这家公司的招聘者
	Create(ctx context.Context, conn *apiclient.Conn, p domain.Profile, logo *apiclient.File) (domain.Company, error)
	Update(ctx context.Context, conn *apiclient.Conn, id string, p domain.Profile, logo *apiclient.File) (domain.Company, error)
	Delete(ctx context.Context, conn *apiclient.Conn, id string) error
	AddRecruiter(ctx context.Context, conn *apiclient.Conn, id string, userID int64) error
	// Listings 有已审核职位的公司，以及它们的职位
	Listings(ctx context.Context, conn *apiclient.Conn) ([]domain.Listing, error)
}

type companyService struct {
	jobSvc job.Service
}

func NewCompanyService(jobSvc job.Service) CompanyService {
	return &companyService{jobSvc: jobSvc}
}

func (s *companyService) MyCompany(ctx context.Context, conn *apiclient.Conn) (domain.Company, error) {
	return s.call(ctx, conn, apiclient.Get(companiesPath+"my-company/"))
}

func (s *companyService) Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Company, error) {
	return s.call(ctx, conn, apiclient.Get(companyPath(id, "")))
}

func (s *companyService) List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.Company, int, error) {
	res, err := apiclient.CallPage[companyDTO](ctx, conn,
		apiclient.Get(companiesPath).WithQuery(apiclient.PageQuery(page, limit)))
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(res.Results, func(idx int, src companyDTO) domain.Company {
		return src.toDomain()
	}), res.Count, nil
}

func (s *companyService) Create(ctx context.Context, conn *apiclient.Conn, p domain.Profile, logo *apiclient.File) (domain.Company, error) {
	return s.call(ctx, conn, withLogo(apiclient.Post(companiesPath), p, logo))
}

func (s *companyService) Update(ctx context.Context, conn *apiclient.Conn, id string, p domain.Profile, logo *apiclient.File) (domain.Company, error) {
	return s.call(ctx, conn, withLogo(apiclient.Patch(companyPath(id, "")), p, logo))
}

func (s *companyService) Delete(ctx context.Context, conn *apiclient.Conn, id string) error {
	return apiclient.Exec(ctx, conn, apiclient.Delete(companyPath(id, "")))
}

func (s *companyService) AddRecruiter(ctx context.Context, conn *apiclient.Conn, id string, userID int64) error {
	return apiclient.Exec(ctx, conn, apiclient.Post(companyPath(id, "add_recruiter/")).
		WithBody(map[string]int64{"user_id": userID}))
}

func (s *companyService) Listings(ctx context.Context, conn *apiclient.Conn) ([]domain.Listing, error) {
	jobs, _, err := s.jobSvc.List(ctx, conn, 1, listingJobsLimit)
	if err != nil {
		return nil, err
	}
	approved := slice.FindAll(jobs, func(src job.Job) bool {
		return src.Status == job.StatusApproved && src.Company != nil
	})
	return domain.GroupByCompany(slice.Map(approved, func(idx int, src job.Job) domain.Posted {
		return domain.Posted{
			Company: domain.Company{
				ID:          src.Company.ID,
				Name:        src.Company.Name,
				Description: src.Company.Description,
				Website:     src.Company.Website,
				Logo:        src.Company.Logo,
				CreatedAt:   src.Company.CreatedAt,
				UpdatedAt:   src.Company.UpdatedAt,
			},
			Opening: domain.Opening{
				ID:       src.ID,
				Title:    src.Title,
				Location: src.Location,
				IsRemote: src.IsRemote,
			},
		}
	})), nil
}

func (s *companyService) call(ctx context.Context, conn *apiclient.Conn, req apiclient.Request) (domain.Company, error) {
	c, err := apiclient.Call[companyDTO](ctx, conn, req)
	if err != nil {
		return domain.Company{}, err
	}
	return c.toDomain(), nil
}

func withLogo(req apiclient.Request, p domain.Profile, logo *apiclient.File) apiclient.Request {
	if logo != nil {
		return req.WithForm(profileForm(p), *logo)
	}
	return req.WithForm(profileForm(p))
}

func companyPath(id, action string) string {
	return companiesPath + url.PathEscape(id) + "/" + action
}
