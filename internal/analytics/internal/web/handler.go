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
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/analytics/internal/domain"
	"github.com/ecodeclub/jobboard/internal/analytics/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/gin-gonic/gin"
)

const logsScreen = "admin_logs"

type logsController = pagination.Controller[domain.LogEntry, domain.Level]

// AdminHandler 管理员查看系统日志
type AdminHandler struct {
	svc      service.LogService
	client   *apiclient.Client
	registry *viewstate.Registry
}

func NewAdminHandler(svc service.LogService,
	client *apiclient.Client,
	registry *viewstate.Registry) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		client:   client,
		registry: registry,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/analytics",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleAdmin).Build())
	g.GET("", ginx.BS[ListReq](h.List))
	g.GET("/export", ginx.BS[ListReq](h.Export))
	g.GET("/:id", ginx.S(h.Detail))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	level, ok := parseLevel(req.Level)
	if !ok {
		return invalidLevelResult, nil
	}
	state := h.controller(sess).Apply(ctx, req.Query, level)
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	state.Data = filter(state.Data, req.Search)
	vo := pagination.ToVO(state, func(idx int, src domain.LogEntry) Log {
		return newLog(src)
	})
	return ginx.Result{Data: LogList{
		PageVO: vo,
		Level:  string(level),
		Search: req.Search,
	}}, nil
}

// Export 下载当前页的 CSV
func (h *AdminHandler) Export(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	level, ok := parseLevel(req.Level)
	if !ok {
		return invalidLevelResult, nil
	}
	state := h.controller(sess).Apply(ctx, req.Query, level)
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="system-logs-%s.csv"`, time.Now().Format(time.DateOnly)))
	if err := writeCSV(ctx.Writer, filter(state.Data, req.Search)); err != nil {
		return codes.SystemError(), err
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *AdminHandler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	l, err := h.svc.Get(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: newLog(l)}, nil
}

func (h *AdminHandler) controller(sess session.Session) *logsController {
	conn := sessionx.Conn(h.client, sess)
	return viewstate.Load(h.registry, sess.Claims().SSID, logsScreen, func() *logsController {
		return pagination.NewController[domain.LogEntry, domain.Level](
			func(ctx context.Context, page, pageSize int, level domain.Level) (pagination.Page[domain.LogEntry], error) {
				list, total, err := h.svc.List(ctx, conn, page, pageSize, level)
				return pagination.Page[domain.LogEntry]{Results: list, Count: total}, err
			}, pagination.Options[domain.Level]{})
	})
}

func filter(entries []domain.LogEntry, keyword string) []domain.LogEntry {
	return slice.FindAll(entries, func(src domain.LogEntry) bool {
		return src.Matches(keyword)
	})
}
