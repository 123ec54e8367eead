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

package sessionx

import (
	"context"

	"github.com/gin-gonic/gin"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// HomePath 每个角色登录之后的首页
func HomePath(r Role) string {
	switch r {
	case RoleJobSeeker:
		return "/dashboard"
	case RoleRecruiter:
		return "/recruiter/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/"
	}
}

// User 会话里面缓存的当前用户
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Role          Role   `json:"role"`
	EmailVerified bool   `json:"is_email_verified"`
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type userCtxKeyType struct{}

var userCtxKey = userCtxKeyType{}

const ginUserKey = "_jobboard_user"

// SetUser 解析完会话之后放到 gin.Context 上，守卫只看这里
func SetUser(ctx *gin.Context, u User) {
	ctx.Set(ginUserKey, u)
	ctx.Request = ctx.Request.WithContext(context.WithValue(ctx.Request.Context(), userCtxKey, u))
}

func UserFromGin(ctx *gin.Context) (User, bool) {
	val, ok := ctx.Get(ginUserKey)
	if !ok {
		return User{}, false
	}
	u, ok := val.(User)
	return u, ok
}

func UserFromCtx(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userCtxKey).(User)
	return u, ok
}
