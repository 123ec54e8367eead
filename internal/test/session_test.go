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

package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProvider_Destroy(t *testing.T) {
	testCases := []struct {
		name string
		// 怎么找到会话
		byHeader bool
	}{
		{name: "通过上下文"},
		{name: "通过 header", byHeader: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewSessionProvider()
			sess := session.NewMemorySession(session.Claims{Uid: 1, SSID: "ssid-" + tc.name})
			p.Put(sess)

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.byHeader {
				c.Request.Header.Set(SSIDHeader, sess.Claims().SSID)
			} else {
				c.Set("_session", sess)
			}
			ctx := &gctx.Context{Context: c}
			require.NoError(t, p.Destroy(ctx))
			_, ok := p.Lookup(sess.Claims().SSID)
			assert.False(t, ok)

			assert.ErrorIs(t, p.Destroy(ctx), ErrSessionNotFound)
		})
	}
}

func TestNewUserSession(t *testing.T) {
	sess := NewUserSession(sessionx.User{ID: 3, Email: "a@example.com", Role: sessionx.RoleAdmin}, "access", "refresh")
	got, ok := DefaultSessionProvider.Lookup(sess.Claims().SSID)
	require.True(t, ok)
	assert.Equal(t, sess, got)
	assert.Equal(t, string(sessionx.RoleAdmin), sess.Claims().Data[sessionx.RoleKey])
}
