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
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/lithammer/shortuuid/v4"
)

// SSIDHeader 测试里面用这个 header 代替 cookie 在多个请求之间保持会话
const SSIDHeader = "X-Test-SSID"

var ErrSessionNotFound = errors.New("session not found")

// 初始化一下 session
func init() {
	session.SetDefaultProvider(DefaultSessionProvider)
}

var DefaultSessionProvider = NewSessionProvider()

var _ session.Provider = &SessionProvider{}

type SessionProvider struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

func NewSessionProvider() *SessionProvider {
	return &SessionProvider{sessions: make(map[string]session.Session, 8)}
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	ssid := shortuuid.New()
	sess := session.NewMemorySession(session.Claims{Uid: uid, SSID: ssid, Data: jwtData})
	for k, v := range sessData {
		if err := sess.Set(ctx, k, v); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	s.sessions[ssid] = sess
	s.mu.Unlock()
	ctx.Set("_session", sess)
	ctx.Header(SSIDHeader, ssid)
	return sess, nil
}

// Get 优先使用测试直接放进去的 _session
func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	if val, ok := ctx.Get("_session"); ok {
		if sess, ok := val.(session.Session); ok {
			return sess, nil
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[ctx.GetHeader(SSIDHeader)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Destroy 从 provider 里面移除当前会话
func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	ssid := ctx.GetHeader(SSIDHeader)
	if val, ok := ctx.Get("_session"); ok {
		if sess, ok := val.(session.Session); ok {
			ssid = sess.Claims().SSID
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[ssid]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, ssid)
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// Put 测试准备数据的时候直接放一个会话进去
func (s *SessionProvider) Put(sess session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Claims().SSID] = sess
}

// NewUserSession 一个已经登录并且刚刚确认过的会话
func NewUserSession(u sessionx.User, access, refresh string) session.Session {
	sess := session.NewMemorySession(session.Claims{
		Uid:  u.ID,
		SSID: shortuuid.New(),
		Data: sessionx.JwtData(u),
	})
	data, err := sessionx.SessData(access, refresh, u, time.Now())
	if err != nil {
		panic(err)
	}
	for k, v := range data {
		if err = sess.Set(context.Background(), k, v); err != nil {
			panic(err)
		}
	}
	DefaultSessionProvider.Put(sess)
	return sess
}

// Lookup 根据登录接口返回的 SSIDHeader 找到会话
func (s *SessionProvider) Lookup(ssid string) (session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[ssid]
	return sess, ok
}
