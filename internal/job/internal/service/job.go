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
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
)

const jobsPath = "/api/jobs/job/"

//go:generate mockgen -source=./job.go -package=svcmocks -destination=./mocks/job.mock.go -typed JobService
type JobService interface {
	// List 后端按照角色过滤：求职者只能看到已经审核通过的，招聘者只能看到自己的
	List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.Job, int, error)
	Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Job, error)
	Create(ctx context.Context, conn *apiclient.Conn, p domain.Posting) (domain.Job, error)
	Update(ctx context.Context, conn *apiclient.Conn, id string, p domain.Posting) (domain.Job, error)
	Delete(ctx context.Context, conn *apiclient.Conn, id string) error
	Approve(ctx context.Context, conn *apiclient.Conn, id string) error
	Reject(ctx context.Context, conn *apiclient.Conn, id string) error

	Apply(ctx context.Context, conn *apiclient.Conn, jobID, resumeID string) error
	// Match 招聘者用指定的简历匹配职位
	Match(ctx context.Context, conn *apiclient.Conn, jobID, resumeID string) (domain.MatchResult, error)
	// SelfMatch 求职者用自己最新的简历匹配职位
	SelfMatch(ctx context.Context, conn *apiclient.Conn, jobID string) (domain.MatchResult, error)
}

type jobService struct{}

func NewJobService() JobService {
	return &jobService{}
}

func (s *jobService) List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.Job, int, error) {
	res, err := apiclient.CallPage[jobDTO](ctx, conn,
		apiclient.Get(jobsPath).WithQuery(apiclient.PageQuery(page, limit)))
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(res.Results, func(idx int, src jobDTO) domain.Job {
		return src.toDomain()
	}), res.Count, nil
}

func (s *jobService) Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Job, error) {
	return s.call(ctx, conn, apiclient.Get(jobPath(id, "")))
}

func (s *jobService) Create(ctx context.Context, conn *apiclient.Conn, p domain.Posting) (domain.Job, error) {
	return s.call(ctx, conn, apiclient.Post(jobsPath).WithBody(newPostingDTO(p)))
}

func (s *jobService) Update(ctx context.Context, conn *apiclient.Conn, id string, p domain.Posting) (domain.Job, error) {
	return s.call(ctx, conn, apiclient.Patch(jobPath(id, "")).WithBody(newPostingDTO(p)))
}

func (s *jobService) Delete(ctx context.Context, conn *apiclient.Conn, id string) error {
	return apiclient.Exec(ctx, conn, apiclient.Delete(jobPath(id, "")))
}

func (s *jobService) Approve(ctx context.Context, conn *apiclient.Conn, id string) error {
	return apiclient.Exec(ctx, conn, apiclient.Post(jobPath(id, "approve/")))
}

// Reject 后端没有单独的拒绝接口，直接修改状态
func (s *jobService) Reject(ctx context.Context, conn *apiclient.Conn, id string) error {
	return apiclient.Exec(ctx, conn, apiclient.Patch(jobPath(id, "")).
		WithBody(map[string]string{"status": string(domain.StatusRejected)}))
}

func (s *jobService) Apply(ctx context.Context, conn *apiclient.Conn, jobID, resumeID string) error {
	return apiclient.Exec(ctx, conn, apiclient.Post(jobPath(jobID, "apply/")).
		WithBody(map[string]string{"resume_id": resumeID}))
}

func (s *jobService) Match(ctx context.Context, conn *apiclient.Conn, jobID, resumeID string) (domain.MatchResult, error) {
	return s.match(ctx, conn, apiclient.Post(jobPath(jobID, "match/")).
		WithBody(map[string]string{"resume_id": resumeID}))
}

func (s *jobService) SelfMatch(ctx context.Context, conn *apiclient.Conn, jobID string) (domain.MatchResult, error) {
	return s.match(ctx, conn, apiclient.Post(jobPath(jobID, "self-match/")))
}

func (s *jobService) match(ctx context.Context, conn *apiclient.Conn, req apiclient.Request) (domain.MatchResult, error) {
	m, err := apiclient.Call[matchDTO](ctx, conn, req)
	if err != nil {
		return domain.MatchResult{}, err
	}
	return m.toDomain(), nil
}

func (s *jobService) call(ctx context.Context, conn *apiclient.Conn, req apiclient.Request) (domain.Job, error) {
	j, err := apiclient.Call[jobDTO](ctx, conn, req)
	if err != nil {
		return domain.Job{}, err
	}
	return j.toDomain(), nil
}

func jobPath(id, action string) string {
	return jobsPath + url.PathEscape(id) + "/" + action
}
