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
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff"
	"github.com/ecodeclub/jobboard/internal/bff/internal/errs"
	"github.com/ecodeclub/jobboard/internal/bff/internal/web"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/upload"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DashboardTestSuite struct {
	suite.Suite
	backend *test.Backend
	server  *egin.Component
}

func (s *DashboardTestSuite) SetupSuite() {
	s.backend = test.NewBackend()
	client := apiclient.NewClient(apiclient.Config{BaseURL: s.backend.URL})
	registry := viewstate.NewRegistry(time.Minute)
	userModule := user.InitModule(client, registry)
	resumeModule := resume.InitModule(client, registry, upload.Config{})
	jobModule := job.InitModule(client, registry, resumeModule)
	appModule := application.InitModule(client, registry, resumeModule)
	companyModule := company.InitModule(client, registry, jobModule)
	module := bff.InitModule(client, registry, userModule, resumeModule, jobModule, appModule, companyModule)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Engine.ContextWithFallback = true
	server.Use(middleware.NewSessionResolverBuilder(client, time.Minute).Build())
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *DashboardTestSuite) TearDownSuite() {
	s.backend.Close()
}

func (s *DashboardTestSuite) TearDownTest() {
	s.backend.Reset()
}

func (s *DashboardTestSuite) TestHome() {
	testCases := []struct {
		name     string
		sess     session.Session
		wantPath string
	}{
		{
			name:     "未登录",
			wantPath: "/login",
		},
		{
			name:     "求职者",
			sess:     newSession(sessionx.RoleJobSeeker),
			wantPath: "/dashboard",
		},
		{
			name:     "招聘者",
			sess:     newSession(sessionx.RoleRecruiter),
			wantPath: "/recruiter/dashboard",
		},
		{
			name:     "管理员",
			sess:     newSession(sessionx.RoleAdmin),
			wantPath: "/admin/dashboard",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			if tc.sess != nil {
				req.Header.Set(test.SSIDHeader, tc.sess.Claims().SSID)
			}
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusFound, recorder.Code)
			assert.Equal(t, tc.wantPath, recorder.Header().Get("Location"))
		})
	}
}

// 投递记录加载失败不影响简历的展示
func (s *DashboardTestSuite) TestSeekerDashboard() {
	t := s.T()
	s.backend.Handle("GET /api/resumes/{$}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		test.WritePage(w, 11, []map[string]any{
			{"id": "r-1", "title": "Main", "status": "completed", "visibility": "public"},
			{"id": "r-2", "title": "Draft", "status": "uploaded", "visibility": "private"},
		})
	})
	s.backend.Handle("GET /api/jobs/applications/", func(w http.ResponseWriter, r *http.Request) {
		test.WriteError(w, http.StatusBadRequest, "Applications are temporarily unavailable", "unavailable")
	})

	sess := newSession(sessionx.RoleJobSeeker)
	res := get[web.SeekerDashboard](t, s.server, sess, "/dashboard")
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "job_seeker", res.Data.User.Role)
	assert.Equal(t, 11, res.Data.ResumesTotal)
	require.Len(t, res.Data.Resumes, 2)
	assert.True(t, res.Data.Resumes[0].Analyzed)
	assert.False(t, res.Data.Resumes[1].Analyzed)
	assert.Empty(t, res.Data.ResumesError)
	assert.Empty(t, res.Data.Applications)
	assert.Equal(t, "Applications are temporarily unavailable", res.Data.ApplicationsError)
}

// 刷新失败，整个页面跳转到登录页
func (s *DashboardTestSuite) TestSeekerDashboard_Expired() {
	t := s.T()
	s.backend.Handle("GET /api/resumes/{$}", func(w http.ResponseWriter, r *http.Request) {
		test.WriteError(w, http.StatusUnauthorized, "Token is invalid or expired", "token_not_valid")
	})
	s.backend.Handle("GET /api/jobs/applications/", func(w http.ResponseWriter, r *http.Request) {
		test.WritePage(w, 0, []map[string]any{})
	})
	s.backend.Handle("POST /api/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		test.WriteError(w, http.StatusUnauthorized, "Token is blacklisted", "token_not_valid")
	})

	sess := newSession(sessionx.RoleJobSeeker)
	req, err := http.NewRequest(http.MethodGet, "/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))
	assert.Equal(t, 1, s.backend.Calls(http.MethodPost, "/api/auth/token/refresh/"))
}

func (s *DashboardTestSuite) TestRecruiterDashboard() {
	t := s.T()
	s.backend.Handle("GET /api/jobs/job/{$}", func(w http.ResponseWriter, r *http.Request) {
		test.WritePage(w, 1, []map[string]any{
			{"id": "j-1", "title": "Go Engineer", "status": "pending", "location": nil},
		})
	})
	s.backend.Handle("GET /api/companies/my-company/", func(w http.ResponseWriter, r *http.Request) {
		test.WriteError(w, http.StatusNotFound, "No company found for this recruiter.", "not_found")
	})
	s.backend.Handle("GET /api/jobs/applications/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		test.WritePage(w, 7, []map[string]any{{"id": "a-1"}})
	})

	sess := newSession(sessionx.RoleRecruiter)
	res := get[web.RecruiterDashboard](t, s.server, sess, "/recruiter/dashboard")
	assert.Equal(t, 0, res.Code)
	assert.Nil(t, res.Data.Company)
	assert.Equal(t, 7, res.Data.ApplicationsCount)
	assert.Equal(t, 1, res.Data.Jobs.Total)
	require.Len(t, res.Data.Jobs.List, 1)
	assert.Equal(t, "pending", res.Data.Jobs.List[0].Status)
	assert.Empty(t, res.Data.JobsError)
}

func (s *DashboardTestSuite) TestAdminDashboard() {
	testCases := []struct {
		name   string
		before func(t *testing.T)

		wantCode int
		wantMsg  string
		wantResp web.AdminDashboard
	}{
		{
			name: "成功",
			before: func(t *testing.T) {
				s.count("GET /api/user/{$}", 40, map[string]any{"id": 1, "email": "a@example.com"})
				s.count("GET /api/resumes/{$}", 120, map[string]any{"id": "x"})
				s.count("GET /api/jobs/job/{$}", 15, map[string]any{"id": "x"})
				s.count("GET /api/companies/{$}", 6, map[string]any{"id": "x"})
			},
			wantResp: web.AdminDashboard{TotalUsers: 40, TotalResumes: 120, TotalJobs: 15, TotalCompanies: 6},
		},
		{
			name: "有一个失败",
			before: func(t *testing.T) {
				s.count("GET /api/user/{$}", 40, map[string]any{"id": 1, "email": "a@example.com"})
				s.count("GET /api/resumes/{$}", 120, map[string]any{"id": "x"})
				s.count("GET /api/jobs/job/{$}", 15, map[string]any{"id": "x"})
				s.backend.Handle("GET /api/companies/{$}", func(w http.ResponseWriter, r *http.Request) {
					test.WriteError(w, http.StatusInternalServerError, "boom", "server_error")
				})
			},
			wantCode: errs.BackendError.Code,
			wantMsg:  "Failed to load dashboard data. Please try again.",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.backend.Reset()
			tc.before(t)
			res := get[web.AdminDashboard](t, s.server, newSession(sessionx.RoleAdmin), "/admin/dashboard")
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			if tc.wantCode == 0 {
				res.Data.User = web.User{}
				assert.Equal(t, tc.wantResp, res.Data)
			}
		})
	}
}

// 求职者打开管理员首页被送回自己的首页
func (s *DashboardTestSuite) TestAdminDashboard_SeekerRedirected() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, newSession(sessionx.RoleJobSeeker).Claims().SSID)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
	assert.Equal(t, 0, s.backend.TotalCalls())
}

// count 每个列表返回一条和后端格式一致的记录，用户的 id 是数字
func (s *DashboardTestSuite) count(pattern string, total int, row map[string]any) {
	s.backend.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		test.WritePage(w, total, []map[string]any{row})
	})
}

func newSession(role sessionx.Role) session.Session {
	return test.NewUserSession(sessionx.User{ID: 9, Email: "u@example.com", Role: role}, "access-9", "refresh-9")
}

func get[T any](t *testing.T, server *egin.Component, sess session.Session, path string) test.Result[T] {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestDashboard(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
