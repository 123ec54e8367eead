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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const LoginPath = "/login"

// CheckLoginMiddlewareBuilder 没有登录的直接跳到登录页
// 必须放在 SessionResolverBuilder 之后
type CheckLoginMiddlewareBuilder struct {
	logger *elog.Component
}

func NewCheckLoginMiddlewareBuilder() *CheckLoginMiddlewareBuilder {
	return &CheckLoginMiddlewareBuilder{logger: elog.DefaultLogger}
}

func (c *CheckLoginMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := sessionx.UserFromGin(ctx); ok {
			return
		}
		c.logger.Debug("用户未登录", elog.String("path", ctx.Request.URL.Path))
		ctx.Redirect(http.StatusFound, LoginPath)
		ctx.Abort()
	}
}

// CheckRoleMiddlewareBuilder 角色不在允许范围内的跳到自己角色的首页
type CheckRoleMiddlewareBuilder struct {
	roles  []sessionx.Role
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(roles ...sessionx.Role) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		u, ok := sessionx.UserFromGin(ctx)
		if !ok {
			ctx.Redirect(http.StatusFound, LoginPath)
			ctx.Abort()
			return
		}
		if slice.Contains(c.roles, u.Role) {
			return
		}
		c.logger.Debug("用户角色不匹配",
			elog.Int64("uid", u.ID),
			elog.String("role", string(u.Role)),
			elog.String("path", ctx.Request.URL.Path))
		ctx.Redirect(http.StatusFound, sessionx.HomePath(u.Role))
		ctx.Abort()
	}
}
