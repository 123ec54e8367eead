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
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gotomicro/ego/core/elog"
)

const ProfilePath = "/api/user/profile/me/"

// SessionResolverBuilder 解析浏览器会话，确认登录态之后把用户放到 gin.Context 上
// 守卫只看解析之后的结果，所以必须放在所有守卫之前
type SessionResolverBuilder struct {
	client *apiclient.Client
	sp     session.Provider
	// 距离上次确认超过这个时间才会重新向后端确认
	interval time.Duration
	logger   *elog.Component
	now      func() time.Time
}

func NewSessionResolverBuilder(client *apiclient.Client, interval time.Duration) *SessionResolverBuilder {
	return &SessionResolverBuilder{
		client:   client,
		interval: interval,
		logger:   elog.DefaultLogger,
		now:      time.Now,
	}
}

func (b *SessionResolverBuilder) Build() gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.sp.Get(gctx)
		if err != nil {
			// 没有会话，当作未登录
			return
		}
		u, ok := b.resolve(ctx.Request.Context(), sessionx.NewStore(sess))
		if ok {
			sessionx.SetUser(ctx, u)
		}
	}
}

// resolve 和浏览器端启动时的流程一致
// 校验 access token，不行就刷新一次，然后加载当前用户，都失败就清除
func (b *SessionResolverBuilder) resolve(ctx context.Context, store *sessionx.Store) (sessionx.User, bool) {
	access, refresh := store.Tokens(ctx)
	if access == "" && refresh == "" {
		return sessionx.User{}, false
	}
	cached, hasCached := store.User(ctx)
	now := b.now()
	if hasCached && now.Sub(store.VerifiedAt(ctx)) < b.interval {
		return cached, true
	}

	conn := b.client.Bind(store)
	if access == "" || b.expired(access, now) || !conn.VerifyToken(ctx, access) {
		_, err := conn.RefreshAccessToken(ctx)
		if err != nil {
			b.logger.Debug("登录态已失效", elog.FieldErr(err))
			return sessionx.User{}, false
		}
	}
	u, err := apiclient.Call[sessionx.User](ctx, conn, apiclient.Get(ProfilePath))
	switch {
	case errors.Is(err, apiclient.ErrSessionExpired):
		return sessionx.User{}, false
	case errors.Is(err, apiclient.ErrUnauthorized):
		// 刷新之后后端仍然拒绝，缓存的用户也不能再用
		_ = conn.Expire(ctx, err)
		return sessionx.User{}, false
	case err != nil:
		b.logger.Error("加载当前用户失败", elog.FieldErr(err))
		if _, ok := apiclient.AsBizError(err); ok || !hasCached {
			_ = conn.Expire(ctx, err)
			return sessionx.User{}, false
		}
		// 后端暂时不可用，继续用缓存的用户，下次请求再确认
		return cached, true
	}
	if err = store.SaveUser(ctx, u); err != nil {
		b.logger.Error("保存当前用户失败", elog.FieldErr(err))
	}
	if err = store.MarkVerified(ctx, now); err != nil {
		b.logger.Error("保存确认时间失败", elog.FieldErr(err))
	}
	return u, true
}

// expired 只看 exp，不校验签名，签名由后端校验
// 不是 JWT 的 token 交给后端判断
func (b *SessionResolverBuilder) expired(access string, now time.Time) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(access, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
