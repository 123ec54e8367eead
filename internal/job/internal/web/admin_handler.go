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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/gin-gonic/gin"
)

const adminJobsScreen = "admin_jobs"

// AdminHandler 管理员审核职位
type AdminHandler struct {
	svc      service.JobService
	client   *apiclient.Client
	registry *viewstate.Registry
}

func NewAdminHandler(svc service.JobService,
	client *apiclient.Client,
	registry *viewstate.Registry) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		client:   client,
		registry: registry,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/jobs",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleAdmin).Build())
	g.GET("", ginx.BS[ListReq](h.List))
	g.POST("/:id/approve", ginx.S(h.Approve))
	g.POST("/:id/reject", ginx.S(h.Reject))
	g.POST("/:id/delete", ginx.BS[ConfirmReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	state := h.controller(sess).Apply(ctx, req.Query, "")
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toJobList(state)}, nil
}

// Approve 状态只在后端成功之后通过刷新列表改变
func (h *AdminHandler) Approve(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Approve(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.refreshed(ctx, sess, "Job has been approved successfully")
}

func (h *AdminHandler) Reject(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.refreshed(ctx, sess, "Job has been rejected successfully")
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	if !req.Confirm {
		return confirmRequiredResult, nil
	}
	err := h.svc.Delete(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.refreshed(ctx, sess, "Job has been deleted successfully")
}

func (h *AdminHandler) controller(sess session.Session) *jobsController {
	return jobsControllerOf(h.svc, h.client, h.registry, sess, adminJobsScreen)
}

func (h *AdminHandler) refreshed(ctx *ginx.Context, sess session.Session, msg string) (ginx.Result, error) {
	ctrl := h.controller(sess)
	ctrl.Refresh(ctx)
	return resultx.OK(msg, toJobList(ctrl.Snapshot())), nil
}
