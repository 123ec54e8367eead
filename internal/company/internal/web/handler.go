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
	"github.com/ecodeclub/jobboard/internal/company/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/gin-gonic/gin"
)

// Handler 所有登录用户都能浏览的公司列表
type Handler struct {
	svc    service.CompanyService
	client *apiclient.Client
}

func NewHandler(svc service.CompanyService, client *apiclient.Client) *Handler {
	return &Handler{svc: svc, client: client}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/companies", ginx.S(h.List))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ls, err := h.svc.Listings(ctx, sessionx.Conn(h.client, sess))
	if err != nil {
		return codes.HandleWithMsg(ctx, err, "Failed to load companies. Please try again.")
	}
	return ginx.Result{Data: newListings(ls)}, nil
}
