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
	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/company/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/upload"
	"github.com/gin-gonic/gin"
)

const logoField = "logo"

// RecruiterHandler 招聘者维护自己的公司
type RecruiterHandler struct {
	svc    service.CompanyService
	client *apiclient.Client
	images *upload.Validator
}

func NewRecruiterHandler(svc service.CompanyService, client *apiclient.Client) *RecruiterHandler {
	return &RecruiterHandler{
		svc:    svc,
		client: client,
		images: upload.NewImageValidator(upload.DefaultMaxSize),
	}
}

func (h *RecruiterHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/recruiter/company",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleRecruiter).Build())
	g.GET("", ginx.S(h.Profile))
	g.POST("", ginx.BS[ProfileReq](h.Save))
}

// Profile 加载失败的时候仍然返回空的页面，让招聘者可以直接创建
func (h *RecruiterHandler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.MyCompany(ctx, sessionx.Conn(h.client, sess))
	if err != nil {
		res, err := codes.HandleWithMsg(ctx, err,
			"Failed to load company information. You may need to create a company first.")
		res.Data = CompanyPage{}
		return res, err
	}
	vo := newCompany(c)
	return ginx.Result{Data: CompanyPage{Company: &vo}}, nil
}

func (h *RecruiterHandler) Save(ctx *ginx.Context, req ProfileReq, sess session.Session) (ginx.Result, error) {
	p := req.toDomain()
	if p.Name == "" {
		return codes.Invalid("Company name is required"), nil
	}
	var logo *apiclient.File
	if fh, err := ctx.FormFile(logoField); err == nil {
		f, err := h.images.Validate(logoField, fh)
		if err != nil {
			return codes.Handle(ctx, err)
		}
		logo = &f
	}
	conn := sessionx.Conn(h.client, sess)
	var (
		c   domain.Company
		err error
		msg string
	)
	if req.ID == "" {
		c, err = h.svc.Create(ctx, conn, p, logo)
		msg = "Company created successfully"
	} else {
		c, err = h.svc.Update(ctx, conn, req.ID, p, logo)
		msg = "Company information updated successfully"
	}
	if err != nil {
		return codes.Handle(ctx, err)
	}
	vo := newCompany(c)
	return resultx.OK(msg, CompanyPage{Company: &vo}), nil
}
