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
	"github.com/ecodeclub/jobboard/internal/analytics/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
)

const logsPath = "/api/analytics/logs/"

//go:generate mockgen -source=./log.go -package=svcmocks -destination=./mocks/log.mock.go -typed LogService
type LogService interface {
	// List level 为空的时候不过滤
	List(ctx context.Context, conn *apiclient.Conn, page, limit int, level domain.Level) ([]domain.LogEntry, int, error)
	Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.LogEntry, error)
}

type logService struct{}

func NewLogService() LogService {
	return &logService{}
}

func (s *logService) List(ctx context.Context, conn *apiclient.Conn, page, limit int, level domain.Level) ([]domain.LogEntry, int, error) {
	q := apiclient.PageQuery(page, limit)
	if level != "" {
		q.Set("level", string(level))
	}
	res, err := apiclient.CallPage[logDTO](ctx, conn, apiclient.Get(logsPath).WithQuery(q))
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(res.Results, func(idx int, src logDTO) domain.LogEntry {
		return src.toDomain()
	}), res.Count, nil
}

func (s *logService) Get(ctx context.Context, conn *apiclient.Conn, id string) (domain.LogEntry, error) {
	l, err := apiclient.Call[logDTO](ctx, conn, apiclient.Get(logsPath+url.PathEscape(id)+"/"))
	if err != nil {
		return domain.LogEntry{}, err
	}
	return l.toDomain(), nil
}
