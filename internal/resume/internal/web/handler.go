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
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/upload"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/resume/internal/domain"
	"github.com/ecodeclub/jobboard/internal/resume/internal/errs"
	"github.com/ecodeclub/jobboard/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	resumesScreen = "resumes"
	dashboardPath = "/dashboard"
)

type resumesController = pagination.Controller[domain.Resume, string]

type Handler struct {
	svc       service.ResumeService
	client    *apiclient.Client
	validator *upload.Validator
	registry  *viewstate.Registry
}

func NewHandler(svc service.ResumeService,
	client *apiclient.Client,
	validator *upload.Validator,
	registry *viewstate.Registry) *Handler {
	return &Handler{
		svc:       svc,
		client:    client,
		validator: validator,
		registry:  registry,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	seeker := middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleJobSeeker).Build()
	server.POST("/upload", seeker, ginx.S(h.Upload))
	g := server.Group("/resumes", seeker)
	g.GET("", ginx.BS[ListReq](h.List))
	g.POST("/:id", ginx.BS[EditReq](h.Edit))
	g.POST("/:id/parse", ginx.S(h.Parse))
	g.POST("/:id/analyze", ginx.S(h.Analyze))

	// 招聘者也会查看投递的简历
	r := server.Group("/resume")
	r.GET("/:id/content", ginx.S(h.Content))
	r.GET("/:id/analysis", ginx.S(h.Analysis))
}

func (h *Handler) controller(sess session.Session) *resumesController {
	conn := sessionx.Conn(h.client, sess)
	return viewstate.Load(h.registry, sess.Claims().SSID, resumesScreen, func() *resumesController {
		return pagination.NewController[domain.Resume, string](
			func(ctx context.Context, page, pageSize int, _ string) (pagination.Page[domain.Resume], error) {
				list, total, err := h.svc.List(ctx, conn, page, pageSize)
				return pagination.Page[domain.Resume]{Results: list, Count: total}, err
			}, pagination.Options[string]{})
	})
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	state := h.controller(sess).Apply(ctx, req.Query, "")
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: h.toList(state)}, nil
}

// Upload 先在本地校验标题和文件，校验不通过不会请求后端
func (h *Handler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	title := ctx.PostForm("title")
	if title == "" {
		return codes.Invalid("Please enter a title for your resume"), nil
	}
	visibility := domain.Visibility(ctx.DefaultPostForm("visibility", string(domain.VisibilityPrivate)))
	if !visibility.Valid() {
		return codes.Invalid("Please select a valid visibility"), nil
	}
	fh, err := ctx.FormFile("file")
	if err != nil {
		return codes.Invalid("Please upload a resume file"), nil
	}
	file, err := h.validator.Validate("file", fh)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	r, err := h.svc.Upload(ctx, sessionx.Conn(h.client, sess), domain.Upload{
		Title:      title,
		Visibility: visibility,
		File:       file,
	})
	if err != nil {
		return codes.Handle(ctx, err)
	}
	h.controller(sess).Refresh(ctx)
	return resultx.OK("Resume uploaded successfully", UploadResp{
		Resume:   h.toVO(r),
		Redirect: dashboardPath,
	}), nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	visibility := domain.Visibility(req.Visibility)
	if req.Title == "" && visibility == "" {
		return codes.Invalid("Nothing to update"), nil
	}
	if visibility != "" && !visibility.Valid() {
		return codes.Invalid("Please select a valid visibility"), nil
	}
	r, err := h.svc.Update(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"), domain.Update{
		Title:      req.Title,
		Visibility: visibility,
	})
	if err != nil {
		return codes.Handle(ctx, err)
	}
	h.controller(sess).Refresh(ctx)
	msg := "Resume updated successfully"
	if visibility != "" {
		msg = "Resume visibility updated to " + string(visibility)
	}
	return resultx.OK(msg, h.toVO(r)), nil
}

func (h *Handler) Parse(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	_, err := h.svc.Parse(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.refreshed(ctx, sess, "Resume parsing started")
}

func (h *Handler) Analyze(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	_, err := h.svc.Analyze(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.refreshed(ctx, sess, "Resume analysis started")
}

// refreshed 操作成功之后重新拉取当前页
func (h *Handler) refreshed(ctx *ginx.Context, sess session.Session, msg string) (ginx.Result, error) {
	ctrl := h.controller(sess)
	ctrl.Refresh(ctx)
	return resultx.OK(msg, h.toList(ctrl.Snapshot())), nil
}

// Content 简历和内容并发加载，已经分析过的再加载分析结果
func (h *Handler) Content(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id := ctx.Context.Param("id")
	conn := sessionx.Conn(h.client, sess)
	var (
		eg      errgroup.Group
		r       domain.Resume
		content domain.Content
	)
	eg.Go(func() error {
		var err error
		r, err = h.svc.Get(ctx, conn, id)
		return err
	})
	eg.Go(func() error {
		var err error
		content, err = h.svc.Content(ctx, conn, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return codes.Handle(ctx, err)
	}
	page := ContentPage{
		Resume:  h.toVO(r),
		Content: newContent(content),
	}
	if r.Analyzed() {
		a, err := h.svc.Analysis(ctx, conn, id)
		if err != nil {
			page.AnalysisError = "Could not load resume analysis. Please try again."
		} else {
			vo := newAnalysis(a)
			page.Analysis = &vo
		}
	}
	return ginx.Result{Data: page}, nil
}

func (h *Handler) Analysis(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id := ctx.Context.Param("id")
	conn := sessionx.Conn(h.client, sess)
	r, err := h.svc.Get(ctx, conn, id)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	if !r.Analyzed() {
		return notAnalyzedResult, nil
	}
	a, err := h.svc.Analysis(ctx, conn, id)
	if be, ok := apiclient.AsBizError(err); ok {
		return ginx.Result{
			Code: errs.BackendError.Code,
			Msg:  "Failed to load resume analysis: " + be.Message,
		}, nil
	}
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: AnalysisPage{
		Resume:   h.toVO(r),
		Analysis: newAnalysis(a),
	}}, nil
}

func (h *Handler) toVO(r domain.Resume) Resume {
	return Resume{
		ID:          r.ID,
		Title:       r.Title,
		Status:      string(r.Status),
		Visibility:  string(r.Visibility),
		CreatedAt:   r.CreatedAt,
		Analyzed:    r.Analyzed(),
		DownloadURL: h.svc.DownloadURL(r.ID),
	}
}

func (h *Handler) toList(state pagination.State[domain.Resume, string]) ResumeList {
	return pagination.ToVO(state, func(idx int, src domain.Resume) Resume {
		return h.toVO(src)
	})
}
