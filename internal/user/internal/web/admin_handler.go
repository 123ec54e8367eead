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
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
	"github.com/ecodeclub/jobboard/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

const usersScreen = "admin_users"

type usersController = pagination.Controller[domain.User, string]

// AdminHandler 管理员管理用户
type AdminHandler struct {
	svc      service.UserService
	client   *apiclient.Client
	registry *viewstate.Registry
}

func NewAdminHandler(svc service.UserService,
	client *apiclient.Client,
	registry *viewstate.Registry) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		client:   client,
		registry: registry,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/users",
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleAdmin).Build())
	g.GET("", ginx.BS[UserListReq](h.List))
	g.GET("/:id", ginx.S(h.Detail))
	g.POST("/:id", ginx.BS[EditUserReq](h.Edit))
	g.POST("/:id/delete", ginx.BS[ConfirmReq](h.Delete))
}

// controller 每个会话一个，翻页状态在多次请求之间保留
func (h *AdminHandler) controller(sess session.Session) *usersController {
	conn := sessionx.Conn(h.client, sess)
	return viewstate.Load(h.registry, sess.Claims().SSID, usersScreen, func() *usersController {
		return pagination.NewController[domain.User, string](
			func(ctx context.Context, page, pageSize int, _ string) (pagination.Page[domain.User], error) {
				users, total, err := h.svc.List(ctx, conn, page, pageSize)
				return pagination.Page[domain.User]{Results: users, Count: total}, err
			}, pagination.Options[string]{})
	})
}

func (h *AdminHandler) List(ctx *ginx.Context, req UserListReq, sess session.Session) (ginx.Result, error) {
	state := h.controller(sess).Apply(ctx, req.Query, "")
	if state.Err != nil {
		return codes.Handle(ctx, state.Err)
	}
	return ginx.Result{Data: h.toList(state)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := userID(ctx)
	if err != nil {
		return codes.Invalid("Invalid user id"), nil
	}
	u, err := h.svc.Get(ctx, sessionx.Conn(h.client, sess), id)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *AdminHandler) Edit(ctx *ginx.Context, req EditUserReq, sess session.Session) (ginx.Result, error) {
	id, err := userID(ctx)
	if err != nil {
		return codes.Invalid("Invalid user id"), nil
	}
	role := sessionx.Role(req.Role)
	if req.Email == "" || !role.Valid() {
		return codes.Invalid("Please fill in all required fields"), nil
	}
	u, err := h.svc.Update(ctx, sessionx.Conn(h.client, sess), domain.User{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	})
	if err != nil {
		return codes.Handle(ctx, err)
	}
	h.controller(sess).Refresh(ctx)
	return resultx.OK("User has been updated successfully", newProfile(u)), nil
}

// Delete 必须确认，成功之后刷新列表
func (h *AdminHandler) Delete(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	id, err := userID(ctx)
	if err != nil {
		return codes.Invalid("Invalid user id"), nil
	}
	if !req.Confirm {
		return confirmRequiredResult, nil
	}
	err = h.svc.Delete(ctx, sessionx.Conn(h.client, sess), id)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	ctrl := h.controller(sess)
	ctrl.Refresh(ctx)
	return resultx.OK("User has been deleted successfully", h.toList(ctrl.Snapshot())), nil
}

func (h *AdminHandler) toList(state pagination.State[domain.User, string]) UserList {
	return pagination.ToVO(state, func(idx int, src domain.User) Profile {
		return newProfile(src)
	})
}

func userID(ctx *ginx.Context) (int64, error) {
	return strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
}
