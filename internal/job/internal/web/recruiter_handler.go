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
	"fmt"

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

const (
	recruiterJobsScreen = "recruiter_jobs"
	recruiterJobsPath   = "/recruiter/jobs"
)

// RecruiterHandler 招聘者管理自己发布的职位
type RecruiterHandler struct {
	svc      service.JobService
	client   *apiclient.Client
	registry *viewstate.Registry
}

func NewRecruiterHandler(svc service.JobService,
	client *apiclient.Client,
	registry *viewstate.Registry) *RecruiterHandler {
	return &RecruiterHandler{
		svc:      svc,
		client:   client,
		registry: registry,
	}
}

func (h *RecruiterHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group(recruiterJobsPath,
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleRecruiter).Build())
	g.GET("", ginx.BS[ListReq](h.List))
	g.POST("", ginx.BS[PostingReq](h.Create))
	g.POST("/:id", ginx.BS[PostingReq](h.Edit))
	g.POST("/:id/delete", ginx.BS[ConfirmReq](h.Delete))
	g.POST("/:id/match", ginx.BS[MatchReq](h.Match))
}

func (h *RecruiterHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	state := jobsControllerOf(h.svc, h.client, h.registry, sess, recruiterJobsScreen).Apply(ctx, req.Query, "")
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toJobList(state)}, nil
}

// Create 新建的职位需要管理员审核
func (h *RecruiterHandler) Create(ctx *ginx.Context, req PostingReq, sess session.Session) (ginx.Result, error) {
	p := req.toDomain()
	if !p.Complete() {
		return codes.Invalid("Please fill in all required fields and add at least one skill"), nil
	}
	j, err := h.svc.Create(ctx, sessionx.Conn(h.client, sess), p)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	jobsControllerOf(h.svc, h.client, h.registry, sess, recruiterJobsScreen).Refresh(ctx)
	return resultx.OK("Job posting created successfully", CreateResp{
		Job:      newJob(j),
		Redirect: recruiterJobsPath,
	}), nil
}

func (h *RecruiterHandler) Edit(ctx *ginx.Context, req PostingReq, sess session.Session) (ginx.Result, error) {
	p := req.toDomain()
	if !p.Complete() {
		return codes.Invalid("Please fill in all required fields and add at least one skill"), nil
	}
	j, err := h.svc.Update(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), p)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	jobsControllerOf(h.svc, h.client, h.registry, sess, recruiterJobsScreen).Refresh(ctx)
	return resultx.OK("Job posting updated successfully", newJob(j)), nil
}

func (h *RecruiterHandler) Delete(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	if !req.Confirm {
		return confirmRequiredResult, nil
	}
	err := h.svc.Delete(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	ctrl := jobsControllerOf(h.svc, h.client, h.registry, sess, recruiterJobsScreen)
	ctrl.Refresh(ctx)
	return resultx.OK("Job posting deleted successfully", toJobList(ctrl.Snapshot())), nil
}

func (h *RecruiterHandler) Match(ctx *ginx.Context, req MatchReq, sess session.Session) (ginx.Result, error) {
	if req.ResumeID == "" {
		return codes.Invalid("Please select a resume to match"), nil
	}
	m, err := h.svc.Match(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), req.ResumeID)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	// 后端返回的已经是百分比
	return resultx.OK(fmt.Sprintf("Resume match score: %.0f%%", m.Score), newMatch(m)), nil
}
