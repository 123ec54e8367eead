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
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/jobboard/internal/pkg/ectx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardedServer(user *sessionx.User, guard gin.HandlerFunc) *gin.Engine {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		if user != nil {
			sessionx.SetUser(ctx, *user)
		}
	})
	server.Use(guard)
	server.GET("/screen", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "rendered")
	})
	return server
}

func TestCheckLogin(t *testing.T) {
	testCases := []struct {
		name         string
		user         *sessionx.User
		wantCode     int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "未登录",
			wantCode:     http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:     "已登录",
			user:     &sessionx.User{ID: 1, Role: sessionx.RoleJobSeeker},
			wantCode: http.StatusOK,
			wantBody: "rendered",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newGuardedServer(tc.user, NewCheckLoginMiddlewareBuilder().Build())
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/screen", nil)
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, recorder.Body.String())
			} else {
				assert.NotContains(t, recorder.Body.String(), "rendered")
			}
		})
	}
}

func TestCheckRole(t *testing.T) {
	testCases := []struct {
		name         string
		user         *sessionx.User
		roles        []sessionx.Role
		wantCode     int
		wantLocation string
	}{
		{
			name:     "求职者访问求职者页面",
			user:     &sessionx.User{ID: 1, Role: sessionx.RoleJobSeeker},
			roles:    []sessionx.Role{sessionx.RoleJobSeeker},
			wantCode: http.StatusOK,
		},
		{
			name:         "招聘者访问管理员页面",
			user:         &sessionx.User{ID: 2, Role: sessionx.RoleRecruiter},
			roles:        []sessionx.Role{sessionx.RoleAdmin},
			wantCode:     http.StatusFound,
			wantLocation: "/recruiter/dashboard",
		},
		{
			name:         "管理员访问招聘者页面",
			user:         &sessionx.User{ID: 3, Role: sessionx.RoleAdmin},
			roles:        []sessionx.Role{sessionx.RoleRecruiter},
			wantCode:     http.StatusFound,
			wantLocation: "/admin/dashboard",
		},
		{
			name:         "求职者访问招聘者页面",
			user:         &sessionx.User{ID: 4, Role: sessionx.RoleJobSeeker},
			roles:        []sessionx.Role{sessionx.RoleRecruiter, sessionx.RoleAdmin},
			wantCode:     http.StatusFound,
			wantLocation: "/dashboard",
		},
		{
			name:     "多个角色",
			user:     &sessionx.User{ID: 5, Role: sessionx.RoleAdmin},
			roles:    []sessionx.Role{sessionx.RoleRecruiter, sessionx.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:         "未知角色",
			user:         &sessionx.User{ID: 6, Role: sessionx.Role("guest")},
			roles:        []sessionx.Role{sessionx.RoleJobSeeker},
			wantCode:     http.StatusFound,
			wantLocation: "/",
		},
		{
			name:         "未登录",
			roles:        []sessionx.Role{sessionx.RoleJobSeeker},
			wantCode:     http.StatusFound,
			wantLocation: "/login",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newGuardedServer(tc.user, NewCheckRoleMiddlewareBuilder(tc.roles...).Build())
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/screen", nil)
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, "rendered", recorder.Body.String())
			} else {
				// 重定向的时候不会渲染任何受保护的内容
				assert.NotContains(t, recorder.Body.String(), "rendered")
			}
		})
	}
}

func TestAddRequestID(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		check  func(t *testing.T, rid string)
	}{
		{
			name:   "沿用请求里面的 id",
			header: "rid-from-browser",
			check: func(t *testing.T, rid string) {
				assert.Equal(t, "rid-from-browser", rid)
			},
		},
		{
			name: "生成新的 id",
			check: func(t *testing.T, rid string) {
				assert.NotEmpty(t, rid)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/screen", nil)
			if tc.header != "" {
				c.Request.Header.Set(requestIDHeader, tc.header)
			}
			NewAddRequestIDBuilder().Build()(c)
			rid := c.Writer.Header().Get(requestIDHeader)
			tc.check(t, rid)
			assert.Equal(t, rid, ectx.RequestIDFromCtx(c.Request.Context()))
		})
	}
}
