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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
)

const applicationsPath = "/api/jobs/applications/"

//go:generate mockgen -source=./application.go -package=svcmocks -destination=./mocks/application.mock.go -typed ApplicationService
type ApplicationService interface {
	// List 求职者拿到自己的投递，招聘者拿到自己职位收到的投递
	List(ctx context.Context, conn *apiclient.Conn, page, limit int, f domain.Filter) ([]domain.Application, int, error)
	// ListByJob 某个职位收到的投递，只使用 Filter 里面的 Status
	ListByJob(ctx context.Context, conn *apiclient.Conn, page, limit int, f domain.Filter) ([]domain.Application, int, error)
	Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Application, error)

	// Approve notes 为空的时候不提交
	Approve(ctx context.Context, conn *apiclient.Conn, id, notes string) error
	Reject(ctx context.Context, conn *apiclient.Conn, id, notes string) error
	Review(ctx context.Context, conn *apiclient.Conn, id, notes string) error
	UpdateStatus(ctx context.Context, conn *apiclient.Conn, id string, status domain.Status, notes string) error
	AddNotes(ctx context.Context, conn *apiclient.Conn, id, notes string) error
	Withdraw(ctx context.Context, conn *apiclient.Conn, id string) error
}

type applicationService struct{}

func NewApplicationService() ApplicationService {
	return &applicationService{}
}

func (s *applicationService) List(ctx context.Context, conn *apiclient.Conn,
	page, limit int, f domain.Filter) ([]domain.Application, int, error) {
	q := apiclient.PageQuery(page, limit)
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return s.list(ctx, conn, apiclient.Get(applicationsPath).WithQuery(q))
}

func (s *applicationService) ListByJob(ctx context.Context, conn *apiclient.Conn,
	page, limit int, f domain.Filter) ([]domain.Application, int, error) {
	q := apiclient.PageQuery(page, limit)
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	path := "/api/jobs/job/" + url.PathEscape(f.JobID) + "/applications/"
	return s.list(ctx, conn, apiclient.Get(path).WithQuery(q))
}

func (s *applicationService) list(ctx context.Context, conn *apiclient.Conn,
	req apiclient.Request) ([]domain.Application, int, error) {
	res, err := apiclient.CallPage[applicationDTO](ctx, conn, req)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(res.Results, func(idx int, src applicationDTO) domain.Application {
		return src.toDomain()
	}), res.Count, nil
}

func (s *applicationService) Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Application, error) {
	a, err := apiclient.Call[applicationDTO](ctx, conn, apiclient.Get(applicationPath(id, "")))
	if err != nil {
		return domain.Application{}, err
	}
	return a.toDomain(), nil
}

func (s *applicationService) Approve(ctx context.Context, conn *apiclient.Conn, id, notes string) error {
	return s.decide(ctx, conn, id, "approve/", notes)
}

func (s *applicationService) Reject(ctx context.Context, conn *apiclient.Conn, id, notes string) error {
	return s.decide(ctx, conn, id, "reject/", notes)
}

func (s *applicationService) Review(ctx context.Context, conn *apiclient.Conn, id, notes string) error {
	return s.decide(ctx, conn, id, "review/", notes)
}

func (s *applicationService) decide(ctx context.Context, conn *apiclient.Conn, id, action, notes string) error {
	body := map[string]string{}
	if notes != "" {
		body["notes"] = notes
	}
	return apiclient.Exec(ctx, conn, apiclient.Post(applicationPath(id, action)).WithBody(body))
}

func (s *applicationService) UpdateStatus(ctx context.Context, conn *apiclient.Conn,
	id string, status domain.Status, notes string) error {
	body := map[string]string{"status": string(status)}
	if notes != "" {
		body["notes"] = notes
	}
	return apiclient.Exec(ctx, conn, apiclient.Patch(applicationPath(id, "")).WithBody(body))
}

func (s *applicationService) AddNotes(ctx context.Context, conn *apiclient.Conn, id, notes string) error {
	return apiclient.Exec(ctx, conn, apiclient.Patch(applicationPath(id, "")).
		WithBody(map[string]string{"notes": notes}))
}

func (s *applicationService) Withdraw(ctx context.Context, conn *apiclient.Conn, id string) error {
	return apiclient.Exec(ctx, conn, apiclient.Delete(applicationPath(id, "")))
}

func applicationPath(id, action string) string {
	return applicationsPath + url.PathEscape(id) + "/" + action
}
