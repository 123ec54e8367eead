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
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
)

//go:generate mockgen -source=./resume.go -package=svcmocks -destination=./mocks/resume.mock.go -typed ResumeService
type ResumeService interface {
	// List 当前用户自己的简历
	List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.Resume, int, error)
	Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Resume, error)
	Upload(ctx context.Context, conn *apiclient.Conn, u domain.Upload) (domain.Resume, error)
	Update(ctx context.Context, conn *apiclient.Conn, id string, u domain.Update) (domain.Resume, error)
	// Parse 和 Analyze 只是触发后端的异步任务
	Parse(ctx context.Context, conn *apiclient.Conn, id string) (domain.Resume, error)
	Analyze(ctx context.Context, conn *apiclient.Conn, id string) (domain.Resume, error)
	Content(ctx context.Context, conn *apiclient.Conn, id string) (domain.Content, error)
	Analysis(ctx context.Context, conn *apiclient.Conn, id string) (domain.Analysis, error)
	// DownloadURL 浏览器直接从后端下载
	DownloadURL(id string) string
}

type resumeService struct {
	baseURL string
}

func NewResumeService(client *apiclient.Client) ResumeService {
	return &resumeService{baseURL: client.BaseURL()}
}

func (s *resumeService) List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.Resume, int, error) {
	res, err := apiclient.CallPage[resumeDTO](ctx, conn,
		apiclient.Get("/api/resumes/").WithQuery(apiclient.PageQuery(page, limit)))
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(res.Results, func(idx int, src resumeDTO) domain.Resume {
		return src.toDomain()
	}), res.Count, nil
}

func (s *resumeService) Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.Resume, error) {
	return s.call(ctx, conn, apiclient.Get(resumePath(id, "")))
}

func (s *resumeService) Upload(ctx context.Context, conn *apiclient.Conn, u domain.Upload) (domain.Resume, error) {
	file := u.File
	file.Field = "file"
	return s.call(ctx, conn, apiclient.Post("/api/resumes/upload/").
		WithForm(map[string]string{
			"title":      u.Title,
			"visibility": string(u.Visibility),
		}, file))
}

func (s *resumeService) Update(ctx context.Context, conn *apiclient.Conn, id string, u domain.Update) (domain.Resume, error) {
	body := make(map[string]string, 2)
	if u.Title != "" {
		body["title"] = u.Title
	}
	if u.Visibility != "" {
		body["visibility"] = string(u.Visibility)
	}
	return s.call(ctx, conn, apiclient.Patch(resumePath(id, "")).WithBody(body))
}

func (s *resumeService) Parse(ctx context.Context, conn *apiclient.Conn, id string) (domain.Resume, error) {
	r, err := s.call(ctx, conn, apiclient.Post(resumePath(id, "parse/")))
	r.ID = id
	return r, err
}

func (s *resumeService) Analyze(ctx context.Context, conn *apiclient.Conn, id string) (domain.Resume, error) {
	r, err := s.call(ctx, conn, apiclient.Post(resumePath(id, "analyze/")))
	r.ID = id
	return r, err
}

func (s *resumeService) Content(ctx context.Context, conn *apiclient.Conn, id string) (domain.Content, error) {
	c, err := apiclient.Call[contentDTO](ctx, conn, apiclient.Get(resumePath(id, "content/")))
	if err != nil {
		return domain.Content{}, err
	}
	return c.toDomain(), nil
}

func (s *resumeService) Analysis(ctx context.Context, conn *apiclient.Conn, id string) (domain.Analysis, error) {
	a, err := apiclient.Call[analysisDTO](ctx, conn, apiclient.Get(resumePath(id, "analyze/")))
	if err != nil {
		return domain.Analysis{}, err
	}
	return a.toDomain(), nil
}

func (s *resumeService) DownloadURL(id string) string {
	return s.baseURL + resumePath(id, "download/")
}

func (s *resumeService) call(ctx context.Context, conn *apiclient.Conn, req apiclient.Request) (domain.Resume, error) {
	r, err := apiclient.Call[resumeDTO](ctx, conn, req)
	if err != nil {
		return domain.Resume{}, err
	}
	return r.toDomain(), nil
}

func resumePath(id, action string) string {
	return "/api/resumes/" + url.PathEscape(id) + "/" + action
}
