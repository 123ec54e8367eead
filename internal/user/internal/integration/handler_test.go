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

package integration

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/ecodeclub/jobboard/internal/user/internal/errs"
	"github.com/ecodeclub/jobboard/internal/user/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const seekerPath = "/test/seeker"

type HandlerTestSuite struct {
	suite.Suite
	backend  *test.Backend
	server   *egin.Component
	registry *viewstate.Registry
}

func (s *HandlerTestSuite) SetupSuite() {
	s.backend = test.NewBackend()
	client := apiclient.NewClient(apiclient.Config{BaseURL: s.backend.URL})
	s.registry = viewstate.NewRegistry(time.Minute)
	module := user.InitModule(client, s.registry)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Engine.ContextWithFallback = true
	server.Use(middleware.NewSessionResolverBuilder(client, time.Minute).Build())
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	// 只有求职者能看到的页面
	server.GET(seekerPath,
		middleware.NewCheckRoleMiddlewareBuilder(sessionx.RoleJobSeeker).Build(),
		func(ctx *gin.Context) {
			ctx.String(http.StatusOK, "seeker content")
		})
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.backend.Close()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.backend.Reset()
}

func (s *HandlerTestSuite) TestLogin() {
	t := s.T()
	s.backend.Handle("POST /api/auth/token/{$}", func(w http.ResponseWriter, r *http.Request) {
		body := test.DecodeBody[map[string]string](r)
		if body["password"] != "secret" {
			test.WriteError(w, http.StatusUnauthorized,
				"No active account found with the given credentials", "authentication_failed")
			return
		}
		test.WriteData(w, http.StatusOK, map[string]any{
			"access":  "access-1",
			"refresh": "refresh-1",
			"user": map[string]any{
				"id":                7,
				"email":             body["email"],
				"first_name":        "Ada",
				"last_name":         "Lovelace",
				"role":              "job_seeker",
				"is_email_verified": true,
			},
		})
	})

	// 密码错误，展示后端的错误信息
	req, err := http.NewRequest(http.MethodPost, "/login",
		iox.NewJSONReader(web.LoginReq{Email: "ada@example.com", Password: "wrong"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SessionVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, errs.BackendError.Code, res.Code)
	assert.Equal(t, "No active account found with the given credentials", res.Msg)
	assert.Empty(t, recorder.Header().Get(test.SSIDHeader))

	// 登录成功
	req, err = http.NewRequest(http.MethodPost, "/login",
		iox.NewJSONReader(web.LoginReq{Email: "ada@example.com", Password: "secret"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.SessionVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	ssid := recorder.Header().Get(test.SSIDHeader)
	res = recorder.MustScan()
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "/dashboard", res.Data.Redirect)
	assert.Equal(t, "Ada Lovelace", res.Data.User.FullName)

	// 两个 token 和用户都在会话里面
	sess, ok := test.DefaultSessionProvider.Lookup(ssid)
	require.True(t, ok)
	store := sessionx.NewStore(sess)
	access, refresh := store.Tokens(context.Background())
	assert.Equal(t, "access-1", access)
	assert.Equal(t, "refresh-1", refresh)
	u, ok := store.User(context.Background())
	require.True(t, ok)
	assert.Equal(t, sessionx.RoleJobSeeker, u.Role)

	// 求职者页面直接展示，不需要跳转
	req, err = http.NewRequest(http.MethodGet, seekerPath, nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, ssid)
	rec := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "seeker content", rec.Body.String())

	// 登出之后再访问就跳到登录页
	req, err = http.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, ssid)
	rec = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	access, refresh = store.Tokens(context.Background())
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	req, err = http.NewRequest(http.MethodGet, seekerPath, nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, ssid)
	rec = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, middleware.LoginPath, rec.Header().Get("Location"))
}

func (s *HandlerTestSuite) TestRegister() {
	testCases := []struct {
		name      string
		req       web.RegisterReq
		wantCode  int
		wantMsg   string
		wantRedir string
		wantCalls int
	}{
		{
			name: "两次密码不一致",
			req: web.RegisterReq{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
				Password: "a", PasswordConfirm: "b"},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Passwords do not match",
		},
		{
			name: "角色非法",
			req: web.RegisterReq{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
				Password: "a", PasswordConfirm: "a", Role: "root"},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Please select a valid role",
		},
		{
			name: "注册招聘者",
			req: web.RegisterReq{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
				Password: "a", PasswordConfirm: "a", Role: "recruiter"},
			wantRedir: "/recruiter/dashboard",
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.backend.Reset()
			s.backend.Handle("POST /api/user/register/", func(w http.ResponseWriter, r *http.Request) {
				body := test.DecodeBody[map[string]string](r)
				test.WriteData(w, http.StatusCreated, map[string]any{
					"access":  "access-r",
					"refresh": "refresh-r",
					"user": map[string]any{
						"id":         21,
						"email":      body["email"],
						"first_name": body["first_name"],
						"last_name":  body["last_name"],
						"role":       body["role"],
					},
				})
			})
			req, err := http.NewRequest(http.MethodPost, "/register", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.SessionVO]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantRedir, res.Data.Redirect)
			assert.Equal(t, tc.wantCalls, s.backend.Calls(http.MethodPost, "/api/user/register/"))
		})
	}
}

func (s *HandlerTestSuite) TestResetPassword() {
	testCases := []struct {
		name      string
		req       web.ResetPasswordReq
		wantCode  int
		wantMsg   string
		wantCalls int
	}{
		{
			name:     "链接不完整",
			req:      web.ResetPasswordReq{Password: "a", PasswordConfirm: "a"},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Invalid password reset link. Please request a new one.",
		},
		{
			name:     "两次密码不一致",
			req:      web.ResetPasswordReq{UID: "MQ", Token: "tk", Password: "a", PasswordConfirm: "b"},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Passwords do not match",
		},
		{
			name:      "token 过期",
			req:       web.ResetPasswordReq{UID: "MQ", Token: "expired", Password: "a", PasswordConfirm: "a"},
			wantCode:  errs.BackendError.Code,
			wantMsg:   "Invalid or expired token",
			wantCalls: 1,
		},
		{
			name:      "重置成功",
			req:       web.ResetPasswordReq{UID: "MQ", Token: "tk", Password: "a", PasswordConfirm: "a"},
			wantMsg:   "Your password has been reset successfully.",
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.backend.Reset()
			s.backend.Handle("POST /api/user/reset-password/", func(w http.ResponseWriter, r *http.Request) {
				body := test.DecodeBody[map[string]string](r)
				if body["token"] == "expired" {
					test.WriteError(w, http.StatusBadRequest, "Invalid or expired token", "invalid_token")
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})
			req, err := http.NewRequest(http.MethodPost, "/reset-password", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantCalls, s.backend.Calls(http.MethodPost, "/api/user/reset-password/"))
		})
	}
}

func (s *HandlerTestSuite) TestEditProfile() {
	t := s.T()
	u := sessionx.User{ID: 8, Email: "ada@example.com", FirstName: "Ada", Role: sessionx.RoleJobSeeker}
	sess := test.NewUserSession(u, "access-8", "refresh-8")
	s.backend.Handle("PATCH /api/user/profile/update-me/", func(w http.ResponseWriter, r *http.Request) {
		body := test.DecodeBody[map[string]string](r)
		test.WriteData(w, http.StatusOK, map[string]any{
			"id":         8,
			"email":      "ada@example.com",
			"first_name": body["first_name"],
			"last_name":  body["last_name"],
			"role":       "job_seeker",
			"bio":        body["bio"],
		})
	})

	// 头像不是图片，不会请求后端
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("firstName", "Ada"))
	fw, err := mw.CreateFormFile("profilePicture", "avatar.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("definitely not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	req, err := http.NewRequest(http.MethodPost, "/profile", &buf)
	require.NoError(t, err)
	req.Header.Set("content-type", mw.FormDataContentType())
	req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
	assert.Equal(t, "Please upload a JPEG, PNG, GIF or WEBP image", res.Msg)
	assert.Equal(t, 0, s.backend.TotalCalls())

	// 没有头像的时候以 JSON 提交
	req, err = http.NewRequest(http.MethodPost, "/profile", iox.NewJSONReader(web.EditProfileReq{
		FirstName: "Augusta",
		LastName:  "King",
		Bio:       "analyst",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
	recorder = test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, "Your profile has been updated successfully.", res.Msg)
	assert.Equal(t, "Augusta King", res.Data.FullName)
	assert.Equal(t, "analyst", res.Data.Bio)
	// 会话里面的名字也更新了
	cached, ok := sessionx.NewStore(sess).User(context.Background())
	require.True(t, ok)
	assert.Equal(t, "Augusta", cached.FirstName)
}

func (s *HandlerTestSuite) TestChangePassword() {
	u := sessionx.User{ID: 9, Email: "ada@example.com", FirstName: "Ada", Role: sessionx.RoleRecruiter}
	sess := test.NewUserSession(u, "access-9", "refresh-9")
	testCases := []struct {
		name      string
		req       web.ChangePasswordReq
		wantCode  int
		wantMsg   string
		wantCalls int
	}{
		{
			name:     "两次密码不一致",
			req:      web.ChangePasswordReq{CurrentPassword: "old", NewPassword: "new1", ConfirmPassword: "new2"},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Passwords do not match",
		},
		{
			name:      "当前密码错误",
			req:       web.ChangePasswordReq{CurrentPassword: "bad", NewPassword: "new", ConfirmPassword: "new"},
			wantCode:  errs.BackendError.Code,
			wantMsg:   "Current password is incorrect",
			wantCalls: 1,
		},
		{
			name:      "修改成功",
			req:       web.ChangePasswordReq{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"},
			wantMsg:   "Your password has been updated successfully.",
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.backend.Reset()
			s.backend.Handle("POST /api/user/change-password/", func(w http.ResponseWriter, r *http.Request) {
				body := test.DecodeBody[map[string]string](r)
				if body["current_password"] != "old" {
					test.WriteError(w, http.StatusBadRequest, "Current password is incorrect", "invalid_password")
					return
				}
				test.WriteData(w, http.StatusOK, map[string]string{"detail": "ok"})
			})
			req, err := http.NewRequest(http.MethodPost, "/profile/password", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantCalls, s.backend.Calls(http.MethodPost, "/api/user/change-password/"))
		})
	}
}

// 招聘者访问管理员页面跳到自己的首页，也不会请求后端
func (s *HandlerTestSuite) TestAdminUsers_RecruiterRedirected() {
	t := s.T()
	u := sessionx.User{ID: 10, Email: "hr@example.com", FirstName: "Hedy", Role: sessionx.RoleRecruiter}
	sess := test.NewUserSession(u, "access-10", "refresh-10")
	req, err := http.NewRequest(http.MethodGet, "/admin/users", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/recruiter/dashboard", recorder.Header().Get("Location"))
	assert.NotContains(t, recorder.Body.String(), "list")
	assert.Equal(t, 0, s.backend.TotalCalls())
}

func (s *HandlerTestSuite) TestAdminUsers() {
	t := s.T()
	admin := sessionx.User{ID: 1, Email: "root@example.com", FirstName: "Root", Role: sessionx.RoleAdmin}
	sess := test.NewUserSession(admin, "access-1", "refresh-1")
	ssid := sess.Claims().SSID

	users := make([]map[string]any, 0, 12)
	for i := 1; i <= 12; i++ {
		users = append(users, map[string]any{
			"id":         100 + i,
			"email":      "user@example.com",
			"first_name": "User",
			"role":       "job_seeker",
		})
	}
	deleted := false
	s.backend.Handle("GET /api/user/{$}", func(w http.ResponseWriter, r *http.Request) {
		list := users
		if deleted {
			list = users[1:]
		}
		page, limit := r.URL.Query().Get("page"), r.URL.Query().Get("limit")
		start := 0
		if page == "2" {
			start = 10
		}
		end := min(start+10, len(list))
		if limit != "10" {
			end = len(list)
		}
		test.WritePage(w, len(list), list[start:end])
	})
	s.backend.Handle("DELETE /api/user/{id}/", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	doList := func(query string) test.Result[web.UserList] {
		req, err := http.NewRequest(http.MethodGet, "/admin/users"+query, nil)
		require.NoError(t, err)
		req.Header.Set(test.SSIDHeader, ssid)
		recorder := test.NewJSONResponseRecorder[web.UserList]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		return recorder.MustScan()
	}

	res := doList("")
	assert.Equal(t, 12, res.Data.Total)
	assert.Equal(t, 2, res.Data.TotalPages)
	assert.Len(t, res.Data.List, 10)

	res = doList("?page=2")
	assert.Equal(t, 2, res.Data.Page)
	assert.Len(t, res.Data.List, 2)

	// 没有确认不会删除
	req, err := http.NewRequest(http.MethodPost, "/admin/users/101/delete", iox.NewJSONReader(web.ConfirmReq{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(test.SSIDHeader, ssid)
	recorder := test.NewJSONResponseRecorder[web.UserList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.ConfirmRequired.Code, recorder.MustScan().Code)
	assert.Equal(t, 0, s.backend.Calls(http.MethodDelete, "/api/user/101/"))

	// 确认之后删除，并且刷新当前页
	req, err = http.NewRequest(http.MethodPost, "/admin/users/101/delete", iox.NewJSONReader(web.ConfirmReq{Confirm: true}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(test.SSIDHeader, ssid)
	recorder = test.NewJSONResponseRecorder[web.UserList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, "User has been deleted successfully", res.Msg)
	assert.Equal(t, 1, s.backend.Calls(http.MethodDelete, "/api/user/101/"))
	assert.Equal(t, 11, res.Data.Total)
	assert.Equal(t, 2, res.Data.Page)
	assert.Len(t, res.Data.List, 1)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
