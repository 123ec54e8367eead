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
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	jobsScreen    = "jobs"
	dashboardPath = "/dashboard"
	// 投递页面最多列出这么多份简历
	resumeOptionsLimit = 100
)

type jobsController = pagination.Controller[domain.Job, string]

// Handler 所有登录用户都能看到的职位列表和详情，以及求职者的投递
type Handler struct {
	svc       service.JobService
	resumeSvc resume.Service
	client    *apiclient.Client
	registry  *viewstate.Registry
}

func NewHandler(svc service.JobService,
	resumeSvc resume.Service,
	client *apiclient.Client,
	registry *viewstate.Registry) *Handler {
	return &Handler{
		svc:       svc,
		resumeSvc: resumeSvc,
		client:    client,
		registry:  registry,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	seeker := middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleJobSeeker).Build()
	g := server.Group("/jobs")
	g.GET("", ginx.BS[ListReq](h.List))
	g.GET("/:id", ginx.S(h.Detail))
	g.GET("/:id/apply", seeker, ginx.S(h.ApplyPage))
	g.POST("/:id/apply", seeker, ginx.BS[ApplyReq](h.Apply))
	g.POST("/:id/self-match", seeker, ginx.S(h.SelfMatch))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	state := jobsControllerOf(h.svc, h.client, h.registry, sess, jobsScreen).Apply(ctx, req.Query, "")
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toJobList(state)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	j, err := h.svc.Get(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: newJob(j)}, nil
}

// ApplyPage 职位和简历并发加载，简历加载失败不影响职位的展示
func (h *Handler) ApplyPage(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	conn := sessionx.Conn(h.client, sess)
	var (
		eg         errgroup.Group
		j          domain.Job
		resumes    []resume.Resume
		resumesErr error
	)
	eg.Go(func() error {
		var err error
		j, err = h.svc.Get(ctx, conn, ctx.Context.Param("id"))
		return err
	})
	eg.Go(func() error {
		resumes, _, resumesErr = h.resumeSvc.List(ctx, conn, 1, resumeOptionsLimit)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return codes.Handle(ctx, err)
	}
	page := ApplyPage{Job: newJob(j)}
	if resumesErr != nil {
		page.Resumes = []ResumeOption{}
		page.ResumesError = "Failed to load your resumes"
		return ginx.Result{Data: page}, nil
	}
	page.Resumes = newResumeOptions(resumes)
	if len(page.Resumes) > 0 {
		page.SelectedResumeID = page.Resumes[0].ID
	}
	return ginx.Result{Data: page}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	if req.ResumeID == "" {
		return codes.Invalid("Please select a resume to apply with"), nil
	}
	err := h.svc.Apply(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), req.ResumeID)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Your application has been submitted successfully",
		RedirectVO{Redirect: dashboardPath}), nil
}

func (h *Handler) SelfMatch(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.SelfMatch(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: newMatch(m)}, nil
}

// jobsControllerOf 三个角色的职位列表都用同一个后端接口，按照 screen 区分状态
func jobsControllerOf(svc service.JobService,
	client *apiclient.Client,
	registry *viewstate.Registry,
	sess session.Session, screen string) *jobsController {
	conn := sessionx.Conn(client, sess)
	return viewstate.Load(registry, sess.Claims().SSID, screen, func() *jobsController {
		return pagination.NewController[domain.Job, string](
			func(ctx context.Context, page, pageSize int, _ string) (pagination.Page[domain.Job], error) {
				list, total, err := svc.List(ctx, conn, page, pageSize)
				return pagination.Page[domain.Job]{Results: list, Count: total}, err
			}, pagination.Options[string]{})
	})
}
