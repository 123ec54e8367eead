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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/gin-gonic/gin"
)

const myApplicationsScreen = "applications"

type applicationsController = pagination.Controller[domain.Application, domain.Filter]

type listFunc func(ctx context.Context, conn *apiclient.Conn,
	page, limit int, f domain.Filter) ([]domain.Application, int, error)

// Handler 求职者查看、撤回自己的投递
type Handler struct {
	svc      service.ApplicationService
	client   *apiclient.Client
	registry *viewstate.Registry
}

func NewHandler(svc service.ApplicationService,
	client *apiclient.Client,
	registry *viewstate.Registry) *Handler {
	return &Handler{
		svc:      svc,
		client:   client,
		registry: registry,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleJobSeeker).Build())
	g.GET("", ginx.BS[ListReq](h.List))
	g.POST("/:id/withdraw", ginx.BS[ConfirmReq](h.Withdraw))
}

func (h *Handler) controller(sess session.Session) *applicationsController {
	return controllerOf(h.client, h.registry, sess, myApplicationsScreen, h.svc.List)
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	state := h.controller(sess).Apply(ctx, req.Query, domain.Filter{})
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toList(state)}, nil
}

// Withdraw 必须确认，成功之后刷新列表
func (h *Handler) Withdraw(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	if !req.Confirm {
		return confirmRequiredResult, nil
	}
	err := h.svc.Withdraw(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	ctrl := h.controller(sess)
	ctrl.Refresh(ctx)
	return resultx.OK("Application withdrawn successfully", toList(ctrl.Snapshot())), nil
}

func controllerOf(client *apiclient.Client,
	registry *viewstate.Registry,
	sess session.Session,
	screen string, list listFunc) *applicationsController {
	conn := sessionx.Conn(client, sess)
	return viewstate.Load(registry, sess.Claims().SSID, screen, func() *applicationsController {
		// 职位列表要先有职位 id，第一次拉取交给 Apply
		return pagination.NewController[domain.Application, domain.Filter](
			func(ctx context.Context, page, pageSize int, f domain.Filter) (pagination.Page[domain.Application], error) {
				res, total, err := list(ctx, conn, page, pageSize, f)
				return pagination.Page[domain.Application]{Results: res, Count: total}, err
			}, pagination.Options[domain.Filter]{AutoFetch: false})
	})
}
