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
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/upload"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/resume/internal/errs"
	"github.com/ecodeclub/jobboard/internal/resume/internal/web"
	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var pdf = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

type HandlerTestSuite struct {
	suite.Suite
	backend *test.Backend
	server  *egin.Component
	sess    session.Session
}

func (s *HandlerTestSuite) SetupSuite() {
	s.backend = test.NewBackend()
	client := apiclient.NewClient(apiclient.Config{BaseURL: s.backend.URL})
	module := resume.InitModule(client, viewstate.NewRegistry(time.Minute),
		upload.Config{MaxSize: 1024 * 1024})

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Engine.ContextWithFallback = true
	server.Use(middleware.NewSessionResolverBuilder(client, time.Minute).Build())
	server.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.sess = test.NewUserSession(sessionx.User{
		ID:    3,
		Email: "seeker@example.com",
		Role:  sessionx.RoleJobSeeker,
	}, "access-3", "refresh-3")
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.backend.Close()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.backend.Reset()
}

func (s *HandlerTestSuite) TestUpload() {
	testCases := []struct {
		name     string
		title    string
		filename string
		content  []byte
		before   func(t *testing.T)

		wantCode  int
		wantMsg   string
		wantCalls int
	}{
		{
			name:     "没有标题",
			filename: "cv.pdf",
			content:  pdf,
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Please enter a title for your resume",
		},
		{
			name:     "没有文件",
			title:    "My CV",
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Please upload a resume file",
		},
		{
			name:     "文件类型不对",
			title:    "My CV",
			filename: "cv.pdf",
			content:  []byte("just some plain text pretending to be a pdf"),
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "Please upload a PDF or DOCX file",
		},
		{
			name:     "文件太大",
			title:    "My CV",
			filename: "cv.pdf",
			content:  append(bytes.Clone(pdf), make([]byte, 1024*1024)...),
			wantCode: errs.InvalidInput.Code,
			wantMsg:  "File size must be less than 1MB",
		},
		{
			name:     "后端拒绝",
			title:    "My CV",
			filename: "cv.pdf",
			content:  pdf,
			before: func(t *testing.T) {
				s.backend.Handle("POST /api/resumes/upload/", func(w http.ResponseWriter, r *http.Request) {
					test.WriteError(w, http.StatusBadRequest, "You can upload at most 5 resumes", "limit_exceeded")
				})
			},
			wantCode:  errs.BackendError.Code,
			wantMsg:   "You can upload at most 5 resumes",
			wantCalls: 1,
		},
		{
			name:     "上传成功",
			title:    "My CV",
			filename: "cv.pdf",
			content:  pdf,
			before: func(t *testing.T) {
				s.backend.Handle("POST /api/resumes/upload/", func(w http.ResponseWriter, r *http.Request) {
					f, fh, err := r.FormFile("file")
					require.NoError(t, err)
					defer f.Close()
					content, err := io.ReadAll(f)
					require.NoError(t, err)
					assert.Equal(t, pdf, content)
					assert.Equal(t, "cv.pdf", fh.Filename)
					assert.Equal(t, "private", r.FormValue("visibility"))
					test.WriteData(w, http.StatusCreated, map[string]any{
						"id":     "r-1",
						"title":  r.FormValue("title"),
						"status": "pending",
					})
				})
				s.backend.Handle("GET /api/resumes/{$}", func(w http.ResponseWriter, r *http.Request) {
					test.WritePage(w, 1, []map[string]any{{"id": "r-1", "title": "My CV", "status": "pending"}})
				})
			},
			wantMsg:   "Resume uploaded successfully",
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.backend.Reset()
			if tc.before != nil {
				tc.before(t)
			}
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			require.NoError(t, mw.WriteField("title", tc.title))
			if tc.filename != "" {
				fw, err := mw.CreateFormFile("file", tc.filename)
				require.NoError(t, err)
				_, err = fw.Write(tc.content)
				require.NoError(t, err)
			}
			require.NoError(t, mw.Close())
			req, err := http.NewRequest(http.MethodPost, "/upload", &buf)
			require.NoError(t, err)
			req.Header.Set("content-type", mw.FormDataContentType())
			req.Header.Set(test.SSIDHeader, s.sess.Claims().SSID)
			recorder := test.NewJSONResponseRecorder[web.UploadResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantCalls, s.backend.Calls(http.MethodPost, "/api/resumes/upload/"))
			if tc.wantCode == 0 {
				assert.Equal(t, "/dashboard", res.Data.Redirect)
				assert.Equal(t, "r-1", res.Data.Resume.ID)
			}
			// 本地校验失败的时候一个请求都不会发
			if tc.wantCode == errs.InvalidInput.Code {
				assert.Equal(t, 0, s.backend.TotalCalls())
			}
		})
	}
}

// 求职者以外的角色不能上传
func (s *HandlerTestSuite) TestUpload_Recruiter() {
	t := s.T()
	sess := test.NewUserSession(sessionx.User{ID: 4, Role: sessionx.RoleRecruiter}, "a", "r")
	req, err := http.NewRequest(http.MethodPost, "/upload", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/recruiter/dashboard", recorder.Header().Get("Location"))
	assert.Equal(t, 0, s.backend.TotalCalls())
}

func (s *HandlerTestSuite) TestAnalyze() {
	t := s.T()
	status := "parsed"
	s.backend.Handle("POST /api/resumes/{id}/analyze/", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "broken" {
			test.WriteError(w, http.StatusBadRequest, "Resume must be parsed first", "invalid_state")
			return
		}
		status = "processing"
		test.WriteData(w, http.StatusAccepted, map[string]any{"id": r.PathValue("id"), "status": status})
	})
	s.backend.Handle("GET /api/resumes/{$}", func(w http.ResponseWriter, r *http.Request) {
		test.WritePage(w, 1, []map[string]any{{"id": "r-1", "title": "My CV", "status": status}})
	})

	req, err := http.NewRequest(http.MethodPost, "/resumes/broken/analyze", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, s.sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[web.ResumeList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, errs.BackendError.Code, res.Code)
	assert.Equal(t, "Resume must be parsed first", res.Msg)

	req, err = http.NewRequest(http.MethodPost, "/resumes/r-1/analyze", nil)
	require.NoError(t, err)
	req.Header.Set(test.SSIDHeader, s.sess.Claims().SSID)
	recorder = test.NewJSONResponseRecorder[web.ResumeList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, "Resume analysis started", res.Msg)
	require.Len(t, res.Data.List, 1)
	assert.Equal(t, "processing", res.Data.List[0].Status)
}

func (s *HandlerTestSuite) TestEdit() {
	t := s.T()
	s.backend.Handle("PATCH /api/resumes/{id}/", func(w http.ResponseWriter, r *http.Request) {
		body := test.DecodeBody[map[string]string](r)
		assert.NotContains(t, body, "title")
		test.WriteData(w, http.StatusOK, map[string]any{
			"id": r.PathValue("id"), "title": "My CV", "status": "analyzed", "visibility": body["visibility"],
		})
	})
	s.backend.Handle("GET /api/resumes/{$}", func(w http.ResponseWriter, r *http.Request) {
		test.WritePage[map[string]any](w, 0, nil)
	})

	req, err := http.NewRequest(http.MethodPost, "/resumes/r-1", iox.NewJSONReader(web.EditReq{Visibility: "everyone"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(test.SSIDHeader, s.sess.Claims().SSID)
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)
	assert.Equal(t, 0, s.backend.TotalCalls())

	req, err = http.NewRequest(http.MethodPost, "/resumes/r-1", iox.NewJSONReader(web.EditReq{Visibility: "public"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(test.SSIDHeader, s.sess.Claims().SSID)
	recorder = test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	res := recorder.MustScan()
	assert.Equal(t, "Resume visibility updated to public", res.Msg)
	assert.Equal(t, "public", res.Data.Visibility)
	assert.True(t, res.Data.Analyzed)
	assert.Equal(t, s.backend.URL+"/api/resumes/r-1/download/", res.Data.DownloadURL)
}

func (s *HandlerTestSuite) TestAnalysis() {
	testCases := []struct {
		name       string
		status     string
		analysisOK bool
		wantCode   int
		wantMsg    string
		wantScore  float64
		wantLevel  string
	}{
		{
			name:     "还没有分析",
			status:   "parsed",
			wantCode: errs.NotAnalyzed.Code,
			wantMsg:  "This resume has not been analyzed yet.",
		},
		{
			name:     "分析结果加载失败",
			status:   "completed",
			wantCode: errs.BackendError.Code,
			wantMsg:  "Failed to load resume analysis: Analysis not found",
		},
		{
			name:       "成功",
			status:     "analyzed",
			analysisOK: true,
			wantScore:  7.5,
			wantLevel:  "good",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.backend.Reset()
			s.backend.Handle("GET /api/resumes/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
				test.WriteData(w, http.StatusOK, map[string]any{"id": "r-1", "title": "My CV", "status": tc.status})
			})
			s.backend.Handle("GET /api/resumes/{id}/analyze/", func(w http.ResponseWriter, r *http.Request) {
				if !tc.analysisOK {
					test.WriteError(w, http.StatusNotFound, "Analysis not found", "not_found")
					return
				}
				test.WriteData(w, http.StatusOK, map[string]any{
					"overall_score":           7.5,
					"content_score":           6,
					"formatting_score":        4.5,
					"ats_compatibility_score": 8,
					"strengths":               []string{"clear structure"},
					"weaknesses":              []string{"no metrics"},
					"improvement_suggestions": []string{"quantify impact"},
				})
			})
			req, err := http.NewRequest(http.MethodGet, "/resume/r-1/analysis", nil)
			require.NoError(t, err)
			req.Header.Set(test.SSIDHeader, s.sess.Claims().SSID)
			recorder := test.NewJSONResponseRecorder[web.AnalysisPage]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantScore, res.Data.Analysis.Overall.Value)
			assert.Equal(t, tc.wantLevel, res.Data.Analysis.Overall.Level)
		})
	}
}

func TestResumeHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
