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
	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/company/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/gin-gonic/gin"
)

const adminCompaniesScreen = "admin_companies"

type companiesController = pagination.Controller[domain.Company, string]

type AdminHandler struct {
	svc      service.CompanyService
	client   *apiclient.Client
	registry *viewstate.Registry
}

func NewAdminHandler(svc service.CompanyService,
	client *apiclient.Client,
	registry *viewstate.Registry) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		client:   client,
		registry: registry,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/companies",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleAdmin).Build())
	g.GET("", ginx.BS[ListReq](h.List))
	g.GET("/:id", ginx.S(h.Detail))
	g.POST("/:id/delete", ginx.BS[ConfirmReq](h.Delete))
	g.POST("/:id/recruiters", ginx.BS[AddRecruiterReq](h.AddRecruiter))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	state := h.controller(sess).Apply(ctx, req.Query, "")
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: toCompanyList(state)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Get(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: newCompany(c)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	if !req.Confirm {
		return confirmRequiredResult, nil
	}
	err := h.svc.Delete(ctx, sessionx.Conn(h.client, sess), ctx.Context.Param("id"))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	ctrl := h.controller(sess)
	ctrl.Refresh(ctx)
	return resultx.OK("Company deleted successfully", toCompanyList(ctrl.Snapshot())), nil
}

func (h *AdminHandler) AddRecruiter(ctx *ginx.Context, req AddRecruiterReq, sess session.Session) (ginx.Result, error) {
	if req.UserID <= 0 {
		return codes.Invalid("Please select a recruiter to add"), nil
	}
	conn := sessionx.Conn(h.client, sess)
	id := ctx.Context.Param("id")
	if err := h.svc.AddRecruiter(ctx, conn, id, req.UserID); err != nil {
		return codes.Handle(ctx, err)
	}
	c, err := h.svc.Get(ctx, conn, id)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Recruiter added successfully", newCompany(c)), nil
}

func (h *AdminHandler) controller(sess session.Session) *companiesController {
	conn := sessionx.Conn(h.client, sess)
	return viewstate.Load(h.registry, sess.Claims().SSID, adminCompaniesScreen, func() *companiesController {
		return pagination.NewController[domain.Company, string](
			func(ctx context.Context, page, pageSize int, _ string) (pagination.Page[domain.Company], error) {
				list, total, err := h.svc.List(ctx, conn, page, pageSize)
				return pagination.Page[domain.Company]{Results: list, Count: total}, err
			}, pagination.Options[string]{})
	})
}
