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

package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/ectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// fakeBackend 只有 access token 为 valid 的时候 /api/user/profile/me/ 才返回 200
type fakeBackend struct {
	valid       atomic.Value
	refreshCnt  atomic.Int32
	profileCnt  atomic.Int32
	refreshCode int
	// 每次请求 profile 时看到的 Authorization
	mu    sync.Mutex
	auths []string
}

func newFakeBackend(valid string) *fakeBackend {
	b := &fakeBackend{refreshCode: http.StatusOK}
	b.valid.Store(valid)
	return b
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(RefreshPath, func(w http.ResponseWriter, r *http.Request) {
		b.refreshCnt.Add(1)
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if b.refreshCode != http.StatusOK || req["refresh"] != "refresh-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false, "data": nil,
				"error": map[string]any{"message": "Token is invalid or expired", "code": "token_not_valid"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true, "data": map[string]string{"access": b.valid.Load().(string)},
		})
	})
	mux.HandleFunc("/api/user/profile/me/", func(w http.ResponseWriter, r *http.Request) {
		b.profileCnt.Add(1)
		auth := r.Header.Get("Authorization")
		b.mu.Lock()
		b.auths = append(b.auths, auth)
		b.mu.Unlock()
		if auth != "Bearer "+b.valid.Load().(string) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false, "data": nil,
				"error": map[string]any{"message": "Authentication credentials were not provided.", "code": "not_authenticated"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true, "data": profile{ID: 1, Email: "a@b.com"},
		})
	})
	mux.HandleFunc("/api/jobs/job/1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/jobs/job/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false, "data": nil,
			"error": map[string]any{"message": "title is required", "code": "validation_error"},
		})
	})
	mux.HandleFunc("/api/resumes/upload/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.valid.Load().(string) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
			return
		}
		content, _ := io.ReadAll(f)
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data": map[string]string{
				"title":   r.FormValue("title"),
				"name":    hdr.Filename,
				"content": string(content),
			},
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, code int, val any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(val)
}

func TestConn_Do(t *testing.T) {
	testCases := []struct {
		name    string
		access  string
		refresh string
		// 后端认可的 access token
		valid       string
		refreshCode int

		wantErr        error
		wantData       profile
		wantRefreshCnt int32
		wantProfileCnt int32
		wantAccess     string
		wantCleared    bool
	}{
		{
			name:           "token 有效",
			access:         "access-1",
			refresh:        "refresh-1",
			valid:          "access-1",
			refreshCode:    http.StatusOK,
			wantData:       profile{ID: 1, Email: "a@b.com"},
			wantRefreshCnt: 0,
			wantProfileCnt: 1,
			wantAccess:     "access-1",
		},
		{
			name:           "token 过期_刷新一次_重试一次",
			access:         "access-1",
			refresh:        "refresh-1",
			valid:          "access-2",
			refreshCode:    http.StatusOK,
			wantData:       profile{ID: 1, Email: "a@b.com"},
			wantRefreshCnt: 1,
			wantProfileCnt: 2,
			wantAccess:     "access-2",
		},
		{
			name:           "刷新失败_清除 token",
			access:         "access-1",
			refresh:        "refresh-1",
			valid:          "access-2",
			refreshCode:    http.StatusUnauthorized,
			wantErr:        ErrSessionExpired,
			wantRefreshCnt: 1,
			wantProfileCnt: 1,
			wantCleared:    true,
		},
		{
			name:           "没有 refresh token",
			access:         "access-1",
			valid:          "access-2",
			refreshCode:    http.StatusOK,
			wantErr:        ErrSessionExpired,
			wantRefreshCnt: 0,
			wantProfileCnt: 1,
			wantCleared:    true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := newFakeBackend(tc.valid)
			backend.refreshCode = tc.refreshCode
			server := httptest.NewServer(backend.handler())
			defer server.Close()

			ts := NewMemoryTokenStore(tc.access, tc.refresh)
			conn := NewClient(Config{BaseURL: server.URL, Timeout: time.Second}).Bind(ts)
			data, err := Call[profile](context.Background(), conn, Get("/api/user/profile/me/"))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRefreshCnt, backend.refreshCnt.Load())
			assert.Equal(t, tc.wantProfileCnt, backend.profileCnt.Load())
			assert.Equal(t, tc.wantCleared, ts.Cleared())
			if err != nil {
				access, refresh := ts.Tokens(context.Background())
				assert.Empty(t, access)
				assert.Empty(t, refresh)
				return
			}
			assert.Equal(t, tc.wantData, data)
			access, _ := ts.Tokens(context.Background())
			assert.Equal(t, tc.wantAccess, access)
		})
	}
}

// 刷新成功，但是重试之后仍然是 401，不会再次刷新
func TestConn_Do_SecondUnauthorized(t *testing.T) {
	var refreshCnt, profileCnt atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc(RefreshPath, func(w http.ResponseWriter, r *http.Request) {
		refreshCnt.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]string{"access": "access-2"}})
	})
	mux.HandleFunc("/api/user/profile/me/", func(w http.ResponseWriter, r *http.Request) {
		profileCnt.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ts := NewMemoryTokenStore("access-1", "refresh-1")
	conn := NewClient(Config{BaseURL: server.URL}).Bind(ts)
	_, err := Call[profile](context.Background(), conn, Get("/api/user/profile/me/"))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), refreshCnt.Load())
	assert.Equal(t, int32(2), profileCnt.Load())
	assert.False(t, ts.Cleared())
}

func TestConn_Do_NoAuthorizationWithoutToken(t *testing.T) {
	backend := newFakeBackend("access-1")
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	conn := NewClient(Config{BaseURL: server.URL}).Anonymous()
	_, err := Call[profile](context.Background(), conn, Get("/api/user/profile/me/"))
	be, ok := AsBizError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, be.Status)
	assert.Equal(t, "Authentication credentials were not provided.", be.Message)
	assert.Equal(t, []string{""}, backend.auths)
	assert.Equal(t, int32(0), backend.refreshCnt.Load())
}

// 并发的多个 401 只会刷新一次
func TestConn_Do_ConcurrentRefresh(t *testing.T) {
	backend := newFakeBackend("access-2")
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	ts := NewMemoryTokenStore("access-1", "refresh-1")
	conn := NewClient(Config{BaseURL: server.URL}).Bind(ts)
	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = Call[profile](context.Background(), conn, Get("/api/user/profile/me/"))
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), backend.refreshCnt.Load())
}

func TestConn_Do_RetryMultipart(t *testing.T) {
	backend := newFakeBackend("access-2")
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	ts := NewMemoryTokenStore("access-1", "refresh-1")
	conn := NewClient(Config{BaseURL: server.URL}).Bind(ts)
	type uploadResp struct {
		Title   string `json:"title"`
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	res, err := Call[uploadResp](context.Background(), conn, Post("/api/resumes/upload/").
		WithForm(map[string]string{"title": "my cv"}, File{
			Field:       "file",
			Name:        "cv.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4 hello"),
		}))
	require.NoError(t, err)
	// 重发的时候文件内容还在
	assert.Equal(t, uploadResp{Title: "my cv", Name: "cv.pdf", Content: "%PDF-1.4 hello"}, res)
	assert.Equal(t, int32(1), backend.refreshCnt.Load())
}

func TestExec(t *testing.T) {
	backend := newFakeBackend("access-1")
	server := httptest.NewServer(backend.handler())
	defer server.Close()
	conn := NewClient(Config{BaseURL: server.URL}).Bind(NewMemoryTokenStore("access-1", "refresh-1"))

	err := Exec(context.Background(), conn, Delete("/api/jobs/job/1/"))
	assert.NoError(t, err)

	err = Exec(context.Background(), conn, Post("/api/jobs/job/").WithBody(map[string]string{}))
	be, ok := AsBizError(err)
	require.True(t, ok)
	assert.Equal(t, "title is required", be.Message)
	assert.Equal(t, "validation_error", be.Code)
	assert.Equal(t, http.StatusBadRequest, be.Status)
}

func TestConn_RequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(requestIDHeader)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": profile{ID: 2}})
	}))
	defer server.Close()
	conn := NewClient(Config{BaseURL: server.URL}).Anonymous()
	ctx := ectx.CtxWithRequestID(context.Background(), "rid-1")
	res, err := Call[profile](ctx, conn, Get("/api/user/profile/me/"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ID)
	assert.Equal(t, "rid-1", got)
}

func TestResult_Unwrap(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		status  int
		wantErr string
		wantVal profile
	}{
		{
			name:    "成功",
			status:  http.StatusOK,
			body:    `{"success":true,"data":{"id":3,"email":"x@y.z"},"error":null}`,
			wantVal: profile{ID: 3, Email: "x@y.z"},
		},
		{
			name:    "success 为 true 但是 data 为空",
			status:  http.StatusOK,
			body:    `{"success":true,"data":null,"error":null}`,
			wantErr: unknownErrorMsg,
		},
		{
			name:    "失败没有错误信息",
			status:  http.StatusOK,
			body:    `{"success":false,"data":null,"error":null}`,
			wantErr: unknownErrorMsg,
		},
		{
			name:    "非 JSON 的 500",
			status:  http.StatusInternalServerError,
			body:    `<html>oops</html>`,
			wantErr: unknownErrorMsg,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := decode[profile](tc.status, []byte(tc.body))
			if err == nil {
				var val profile
				val, err = res.Unwrap()
				if tc.wantErr == "" {
					require.NoError(t, err)
					assert.Equal(t, tc.wantVal, val)
					return
				}
			}
			var be *BizError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tc.wantErr, be.Message)
		})
	}
}
