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
	"encoding/json"
	"strconv"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
)

const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	UserKey         = "user"
	VerifiedAtKey   = "verifiedAt"

	// RoleKey 放在 jwt data 里面
	RoleKey = "role"
)

var _ apiclient.TokenStore = &Store{}

// Store 把后端的两个 token 和当前用户保存在浏览器会话里面
type Store struct {
	sess session.Session
}

func NewStore(sess session.Session) *Store {
	return &Store{sess: sess}
}

func (s *Store) Session() session.Session {
	return s.sess
}

func (s *Store) Tokens(ctx context.Context) (string, string) {
	access := s.sess.Get(ctx, AccessTokenKey).StringOrDefault("")
	refresh := s.sess.Get(ctx, RefreshTokenKey).StringOrDefault("")
	return access, refresh
}

func (s *Store) SaveAccessToken(ctx context.Context, access string) error {
	return s.sess.Set(ctx, AccessTokenKey, access)
}

// Clear 清空 token 和用户，然后销毁会话
func (s *Store) Clear(ctx context.Context) error {
	for _, key := range []string{AccessTokenKey, RefreshTokenKey, UserKey, VerifiedAtKey} {
		if err := s.sess.Set(ctx, key, ""); err != nil {
			return err
		}
	}
	return s.sess.Destroy(ctx)
}

// User 没有登录或者数据损坏的时候返回 false
func (s *Store) User(ctx context.Context) (User, bool) {
	raw := s.sess.Get(ctx, UserKey).StringOrDefault("")
	if raw == "" {
		return User{}, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false
	}
	return u, u.ID > 0
}

func (s *Store) SaveUser(ctx context.Context, u User) error {
	val, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.sess.Set(ctx, UserKey, string(val))
}

// VerifiedAt 最近一次向后端确认登录态的时间
func (s *Store) VerifiedAt(ctx context.Context) time.Time {
	raw := s.sess.Get(ctx, VerifiedAtKey).StringOrDefault("")
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func (s *Store) MarkVerified(ctx context.Context, t time.Time) error {
	return s.sess.Set(ctx, VerifiedAtKey, strconv.FormatInt(t.UnixMilli(), 10))
}

// Init 登录、注册成功之后写入 token 和当前用户
func (s *Store) Init(ctx context.Context, access, refresh string, u User, now time.Time) error {
	data, err := SessData(access, refresh, u, now)
	if err != nil {
		return err
	}
	for k, v := range data {
		if err = s.sess.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Conn 用这个会话里面的 token 访问后端
func Conn(client *apiclient.Client, sess session.Session) *apiclient.Conn {
	return client.Bind(NewStore(sess))
}

// DropViewState 登录态失效之后丢掉这个会话的所有页面状态
func DropViewState(registry *viewstate.Registry) func(ctx context.Context, ts apiclient.TokenStore) {
	return func(ctx context.Context, ts apiclient.TokenStore) {
		s, ok := ts.(*Store)
		if !ok {
			return
		}
		registry.Drop(s.sess.Claims().SSID)
	}
}

// SessData 登录的时候写入会话的数据
func SessData(access, refresh string, u User, now time.Time) (map[string]any, error) {
	val, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		AccessTokenKey:  access,
		RefreshTokenKey: refresh,
		UserKey:         string(val),
		VerifiedAtKey:   strconv.FormatInt(now.UnixMilli(), 10),
	}, nil
}

// JwtData 登录的时候写入 jwt 的数据
func JwtData(u User) map[string]string {
	return map[string]string{RoleKey: string(u.Role)}
}
