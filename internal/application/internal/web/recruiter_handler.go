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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/gin-gonic/gin"
)

const (
	applicantsScreen      = "recruiter_applicants"
	jobApplicationsScreen = "job_applications"
)

// RecruiterHandler 招聘者处理收到的投递
type RecruiterHandler struct {
	svc       service.ApplicationService
	resumeSvc resume.Service
	client    *apiclient.Client
	registry  *viewstate.Registry
}

func NewRecruiterHandler(svc service.ApplicationService,
	resumeSvc resume.Service,
	client *apiclient.Client,
	registry *viewstate.Registry) *RecruiterHandler {
	return &RecruiterHandler{
		svc:       svc,
		resumeSvc: resumeSvc,
		client:    client,
		registry:  registry,
	}
}

func (h *RecruiterHandler) PrivateRoutes(server *gin.Engine) {
	recruiter := middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleRecruiter).Build()
	staff := middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleRecruiter, sessionx.RoleAdmin).Build()
	server.GET("/recruiter/applicants", recruiter, ginx.BS[ApplicantsReq](h.Applicants))
	server.GET("/recruiter/jobs/:id/applications", staff, ginx.BS[JobApplicationsReq](h.JobApplications))

	g := server.Group("/recruiter/applications", staff)
	g.POST("/:id/approve", ginx.BS[DecisionReq](h.Approve))
	g.POST("/:id/reject", ginx.BS[DecisionReq](h.Reject))
	g.POST("/:id/review", ginx.BS[DecisionReq](h.Review))
	g.POST("/:id/status", ginx.BS[StatusReq](h.UpdateStatus))
	g.POST("/:id/notes", ginx.BS[NotesReq](h.AddNotes))
	g.GET("/:id/resume", ginx.S(h.Resume))
}

func (h *RecruiterHandler) applicants(sess session.Session) *applicationsController {
	return controllerOf(h.client, h.registry, sess, applicantsScreen, h.svc.List)
}

func (h *RecruiterHandler) jobApplications(sess session.Session) *applicationsController {
	return controllerOf(h.client, h.registry, sess, jobApplicationsScreen, h.svc.ListByJob)
}

// Applicants 修改过滤条件的时候回到第一页
func (h *RecruiterHandler) Applicants(ctx *ginx.Context, req ApplicantsReq, sess session.Session) (ginx.Result, error) {
	status, ok := parseStatus(req.Status)
	if !ok {
		return codes.Invalid("Please select a valid status"), nil
	}
	state := h.applicants(sess).Apply(ctx, req.Query, domain.Filter{Status: status, Search: req.Search})
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toList(state)}, nil
}

// JobApplications 换了职位和换了过滤条件一样，回到第一页
func (h *RecruiterHandler) JobApplications(ctx *ginx.Context, req JobApplicationsReq, sess session.Session) (ginx.Result, error) {
	status, ok := parseStatus(req.Status)
	if !ok {
		return codes.Invalid("Please select a valid status"), nil
	}
	state := h.jobApplications(sess).Apply(ctx, req.Query, domain.Filter{
		JobID:  ctx.Context.Param("id"),
		Status: status,
	})
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toList(state)}, nil
}

func (h *RecruiterHandler) Approve(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Approve(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), req.Notes)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.reconciled(ctx, sess, "Application approved successfully"), nil
}

func (h *RecruiterHandler) Reject(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), req.Notes)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.reconciled(ctx, sess, "Application rejected successfully"), nil
}

func (h *RecruiterHandler) Review(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Review(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), req.Notes)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.reconciled(ctx, sess, "Application status updated to reviewed"), nil
}

func (h *RecruiterHandler) UpdateStatus(ctx *ginx.Context, req StatusReq, sess session.Session) (ginx.Result, error) {
	status := domain.Status(req.Status)
	if !status.Valid() {
		return codes.Invalid("Please select a valid status"), nil
	}
	err := h.svc.UpdateStatus(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), status, req.Notes)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.reconciled(ctx, sess, "Application status updated to "+string(status)), nil
}

func (h *RecruiterHandler) AddNotes(ctx *ginx.Context, req NotesReq, sess session.Session) (ginx.Result, error) {
	if req.Notes == "" {
		return codes.Invalid("Please enter a note"), nil
	}
	err := h.svc.AddNotes(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), req.Notes)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.reconciled(ctx, sess, "Note added successfully"), nil
}

// Resume 下载链接指向后端，浏览器直接下载
func (h *RecruiterHandler) Resume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Get(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	if a.ResumeID == "" {
		return codes.Invalid("This application has no resume attached"), nil
	}
	return ginx.Result{Data: ResumeLink{URL: h.resumeSvc.DownloadURL(a.ResumeID)}}, nil
}

// reconciled 不在本地修改状态，只刷新已经打开的列表
func (h *RecruiterHandler) reconciled(ctx *ginx.Context, sess session.Session, msg string) ginx.Result {
	var resp DecisionResp
	ssid := sess.Claims().SSID
	if ctrl, ok := viewstate.Peek[*applicationsController](h.registry, ssid, applicantsScreen); ok {
		ctrl.Refresh(ctx)
		list := toList(ctrl.Snapshot())
		resp.Applicants = &list
	}
	if ctrl, ok := viewstate.Peek[*applicationsController](h.registry, ssid, jobApplicationsScreen); ok {
		ctrl.Refresh(ctx)
		list := toList(ctrl.Snapshot())
		resp.JobApplications = &list
	}
	return resultx.OK(msg, resp)
}
