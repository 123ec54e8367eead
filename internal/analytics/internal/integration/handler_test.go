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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/analytics"
	"github.com/ecodeclub/jobboard/internal/analytics/internal/errs"
	"github.com/ecodeclub/jobboard/internal/analytics/internal/web"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var logs = []map[string]any{
	{
		"id":          "l-1",
		"timestamp":   "2024-05-01T10:00:00Z",
		"level":       "error",
		"message":     "Resume parsing failed",
		"user_id":     12,
		"user_email":  "ada@example.com",
		"endpoint":    "/api/resumes/r-1/parse/",
		"method":      "POST",
		"status_code": 500,
	},
	{
		"id":          "l-2",
		"timestamp":   "2024-05-01T11:00:00Z",
		"action":      "apply",
		"object_type": "job",
		"message":     "Job application submitted",
		"user_id":     nil,
	},
}

type HandlerTestSuite struct {
	suite.Suite
	backend *test.Backend
	server  *egin.Component
	admin   session.Session
}

func (s *HandlerTestSuite) SetupSuite() {
	s.backend = test.NewBackend()
	client := apiclient.NewClient(apiclient.Config{BaseURL: s.backend.URL})
	module := analytics.InitModule(client, viewstate.NewRegistry(time.Minute))

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Engine.ContextWithFallback = true
	server.Use(middleware.NewSessionResolverBuilder(client, time.Minute).Build())
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

// 每个用例一个新的会话，列表状态互不影响
func (s *HandlerTestSuite) SetupTest() {
	s.admin = test.NewUserSession(sessionx.User{ID: 3, Role: sessionx.RoleAdmin}, "access-3", "refresh-3")
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.backend.Close()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.backend.Reset()
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	var levels []string
	s.backend.Handle("GET /api/analytics/logs/{$}", func(w http.ResponseWriter, r *http.Request) {
		levels = append(levels, r.URL.Query().Get("level"))
		test.WritePage(w, 2, logs)
	})

	res := s.get(t, "/admin/analytics")
	require.Equal(t, 0, res.Code)
	require.Len(t, res.Data.List, 2)
	assert.Equal(t, "error", res.Data.List[0].Level)
	assert.Equal(t, 500, res.Data.List[0].StatusCode)
	// 没有 level 的旧记录按照 info 展示
	assert.Equal(t, "info", res.Data.List[1].Level)
	assert.Equal(t, "apply", res.Data.List[1].Action)

	res = s.get(t, "/admin/analytics?level=error&search=ADA@")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "error", res.Data.Level)
	require.Len(t, res.Data.List, 1)
	assert.Equal(t, "l-1", res.Data.List[0].ID)
	assert.Equal(t, 1, res.Data.Page)

	// all 等于不过滤
	res = s.get(t, "/admin/analytics?level=all")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, []string{"", "error", ""}, levels)
}

func (s *HandlerTestSuite) TestList_InvalidLevel() {
	t := s.T()
	res := s.get(t, "/admin/analytics?level=debug")
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
	assert.Equal(t, "Please select a valid log level", res.Msg)
	assert.Equal(t, 0, s.backend.TotalCalls())
}

func (s *HandlerTestSuite) TestList_Failed() {
	t := s.T()
	s.backend.Handle("GET /api/analytics/logs/{$}", func(w http.ResponseWriter, r *http.Request) {
		test.WriteError(w, http.StatusForbidden, "You do not have permission to perform this action.", "permission_denied")
	})
	res := s.get(t, "/admin/analytics")
	assert.Equal(t, errs.BackendError.Code, res.Code)
	assert.Equal(t, "You do not have permission to perform this action.", res.Msg)
}

func (s *HandlerTestSuite) TestExport() {
	t := s.T()
	s.backend.Handle("GET /api/analytics/logs/{$}", func(w http.ResponseWriter, r *http.Request) {
		test.WritePage(w, 2, logs)
	})
	req, err := http.NewRequest(http.MethodGet, "/admin/analytics/export?search=parsing", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, s.admin.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(recorder.Header().Get("Content-Disposition"),
		`attachment; filename="system-logs-`))
	lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-05-01T10:00:00Z,error,Resume parsing failed,ada@example.com,/api/resumes/r-1/parse/,POST,500", lines[1])
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	s.backend.Handle("GET /api/analytics/logs/l-1/", func(w http.ResponseWriter, r *http.Request) {
		test.WriteData(w, http.StatusOK, logs[0])
	})
	req, err := http.NewRequest(http.MethodGet, "/admin/analytics/l-1", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, s.admin.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[web.Log]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, web.Log{
		ID:         "l-1",
		Timestamp:  "2024-05-01T10:00:00Z",
		Level:      "error",
		Message:    "Resume parsing failed",
		UserID:     12,
		UserEmail:  "ada@example.com",
		Endpoint:   "/api/resumes/r-1/parse/",
		Method:     "POST",
		StatusCode: 500,
	}, res.Data)
}

func (s *HandlerTestSuite) get(t *testing.T, path string) test.Result[web.LogList] {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, s.admin.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[web.LogList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestAnalyticsHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
