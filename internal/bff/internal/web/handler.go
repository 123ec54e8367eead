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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardPageSize        = 10
	recruiterDashboardScreen = "recruiter_dashboard"
)

type jobsController = pagination.Controller[job.Job, string]

// Handler 三种角色的首页，各个区块并发加载
type Handler struct {
	userSvc    user.Service
	resumeSvc  resume.Service
	jobSvc     job.Service
	appSvc     application.Service
	companySvc company.Service
	client     *apiclient.Client
	registry   *viewstate.Registry
	logger     *elog.Component
}

func NewHandler(userSvc user.Service,
	resumeSvc resume.Service,
	jobSvc job.Service,
	appSvc application.Service,
	companySvc company.Service,
	client *apiclient.Client,
	registry *viewstate.Registry) *Handler {
	return &Handler{
		userSvc:    userSvc,
		resumeSvc:  resumeSvc,
		jobSvc:     jobSvc,
		appSvc:     appSvc,
		companySvc: companySvc,
		client:     client,
		registry:   registry,
		logger:     elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/", ginx.W(h.Home))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/dashboard",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleJobSeeker).Build(),
		ginx.S(h.SeekerDashboard))
	server.GET("/recruiter/dashboard",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleRecruiter).Build(),
		ginx.BS[DashboardReq](h.RecruiterDashboard))
	server.GET("/admin/dashboard",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleAdmin).Build(),
		ginx.S(h.AdminDashboard))
}

// Home 登录了就去自己的首页，否则去登录
func (h *Handler) Home(ctx *ginx.Context) (ginx.Result, error) {
	target := middleware.LoginPath
	if u, ok := sessionx.UserFromGin(ctx.Context); ok {
		target = sessionx.HomePath(u.Role)
	}
	ctx.Redirect(http.StatusFound, target)
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) SeekerDashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, _ := sessionx.UserFromGin(ctx.Context)
	conn := sessionx.Conn(h.client, sess)
	var (
		eg      errgroup.Group
		res     = SeekerDashboard{User: newUser(u)}
		rErr    error
		appsErr error
	)
	eg.Go(func() error {
		rs, total, err := h.resumeSvc.List(ctx, conn, 1, dashboardPageSize)
		res.Resumes, res.ResumesTotal, rErr = newResumes(rs), total, err
		return nil
	})
	eg.Go(func() error {
		as, total, err := h.appSvc.List(ctx, conn, 1, dashboardPageSize, application.Filter{})
		res.Applications, res.ApplicationsTotal, appsErr = newApplications(as), total, err
		return nil
	})
	_ = eg.Wait()
	if expired(rErr, appsErr) {
		return codes.Handle(ctx, apiclient.ErrSessionExpired)
	}
	if rErr != nil {
		h.logger.Warn("加载简历失败", elog.FieldErr(rErr))
		res.ResumesError = sectionMsg(rErr, "Failed to fetch resumes")
	}
	if appsErr != nil {
		h.logger.Warn("加载投递记录失败", elog.FieldErr(appsErr))
		res.ApplicationsError = sectionMsg(appsErr, "Failed to fetch applications")
	}
	return ginx.Result{Data: res}, nil
}

// RecruiterDashboard 公司和投递数量加载失败的时候只是不展示
func (h *Handler) RecruiterDashboard(ctx *ginx.Context, req DashboardReq, sess session.Session) (ginx.Result, error) {
	u, _ := sessionx.UserFromGin(ctx.Context)
	conn := sessionx.Conn(h.client, sess)
	var (
		eg         errgroup.Group
		res        = RecruiterDashboard{User: newUser(u)}
		jobs       pagination.State[job.Job, string]
		companyErr error
		countErr   error
	)
	eg.Go(func() error {
		jobs = h.jobsController(sess).Apply(ctx, req.Query, "")
		return nil
	})
	eg.Go(func() error {
		c, err := h.companySvc.MyCompany(ctx, conn)
		if err == nil {
			res.Company = newCompany(c)
		}
		companyErr = err
		return nil
	})
	eg.Go(func() error {
		_, total, err := h.appSvc.List(ctx, conn, 1, 1, application.Filter{})
		res.ApplicationsCount, countErr = total, err
		return nil
	})
	_ = eg.Wait()
	if expired(jobs.Err, companyErr, countErr) {
		return codes.Handle(ctx, apiclient.ErrSessionExpired)
	}
	if companyErr != nil {
		h.logger.Debug("招聘者还没有公司", elog.FieldErr(companyErr))
	}
	if countErr != nil {
		h.logger.Warn("加载投递数量失败", elog.FieldErr(countErr))
	}
	res.Jobs = pagination.ToVO(jobs, func(idx int, src job.Job) Job {
		return newJob(src)
	})
	if jobs.Err != nil {
		res.JobsError = sectionMsg(jobs.Err, "Failed to fetch job listings")
	}
	return ginx.Result{Data: res}, nil
}

// AdminDashboard 只要总数，每个列表只拉一条
func (h *Handler) AdminDashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, _ := sessionx.UserFromGin(ctx.Context)
	conn := sessionx.Conn(h.client, sess)
	res := AdminDashboard{User: newUser(u)}
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		_, res.TotalUsers, err = h.userSvc.List(ctx, conn, 1, 1)
		return err
	})
	eg.Go(func() error {
		var err error
		_, res.TotalResumes, err = h.resumeSvc.List(ctx, conn, 1, 1)
		return err
	})
	eg.Go(func() error {
		var err error
		_, res.TotalJobs, err = h.jobSvc.List(ctx, conn, 1, 1)
		return err
	})
	eg.Go(func() error {
		var err error
		_, res.TotalCompanies, err = h.companySvc.List(ctx, conn, 1, 1)
		return err
	})
	if err := eg.Wait(); err != nil {
		return codes.HandleWithMsg(ctx, err, "Failed to load dashboard data. Please try again.")
	}
	return ginx.Result{Data: res}, nil
}

func (h *Handler) jobsController(sess session.Session) *jobsController {
	conn := sessionx.Conn(h.client, sess)
	return viewstate.Load(h.registry, sess.Claims().SSID, recruiterDashboardScreen, func() *jobsController {
		return pagination.NewController[job.Job, string](
			func(ctx context.Context, page, pageSize int, _ string) (pagination.Page[job.Job], error) {
				list, total, err := h.jobSvc.List(ctx, conn, page, pageSize)
				return pagination.Page[job.Job]{Results: list, Count: total}, err
			}, pagination.Options[string]{InitialPageSize: dashboardPageSize})
	})
}
