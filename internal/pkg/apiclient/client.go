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
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/ectx"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RefreshPath = "/api/auth/token/refresh/"
	VerifyPath  = "/api/auth/token/verify/"
	LoginPath   = "/api/auth/token/"

	requestIDHeader = "X-Request-Id"
)

var refreshCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobboard_token_refresh_total",
	Help: "access token 刷新次数",
}, []string{"result"})

type Config struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

// Client 访问后端 REST API 的客户端
// 本身不持有 token，通过 Bind 绑定到某个 TokenStore 上
type Client struct {
	client  *resty.Client
	baseURL string
	logger  *elog.Component
	// 登录态被清除之后调用
	onExpire []func(ctx context.Context, ts TokenStore)
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{
		client:  cli,
		baseURL: baseURL,
		logger:  elog.DefaultLogger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// OnExpire 注册登录态失效之后的回调，只能在启动的时候调用
func (c *Client) OnExpire(fn func(ctx context.Context, ts TokenStore)) {
	c.onExpire = append(c.onExpire, fn)
}

// Bind 每一个浏览器会话对应一个 TokenStore
func (c *Client) Bind(ts TokenStore) *Conn {
	return &Conn{client: c, ts: ts}
}

// Anonymous 不携带任何 token 的连接，登录、注册之类的接口使用
func (c *Client) Anonymous() *Conn {
	return &Conn{client: c}
}

// Ping 检测后端是否可达，任何 HTTP 响应都认为是可达
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.R().SetContext(ctx).Execute(http.MethodOptions, "/")
	return err
}

type Conn struct {
	client *Client
	ts     TokenStore
	// 同一个会话只允许一个刷新在进行
	mu sync.Mutex
}

// Do 发送请求，返回状态码和响应体
// 401 的时候用 refresh token 刷新一次，然后重发一次原请求
// 重发之后还是 401，就直接返回 ErrUnauthorized，不会再次刷新
func (c *Conn) Do(ctx context.Context, req Request) (int, []byte, error) {
	access := c.accessToken(ctx, req)
	resp, err := c.send(ctx, req, access)
	if err != nil {
		return 0, nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized || req.anonymous || c.ts == nil {
		return resp.StatusCode(), resp.Body(), nil
	}
	access, err = c.refresh(ctx, access)
	if err != nil {
		return 0, nil, err
	}
	resp, err = c.send(ctx, req, access)
	if err != nil {
		return 0, nil, err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		c.client.logger.Warn("刷新之后请求仍然未授权",
			elog.String("method", req.Method), elog.String("path", req.Path))
		return 0, nil, ErrUnauthorized
	}
	return resp.StatusCode(), resp.Body(), nil
}

func (c *Conn) accessToken(ctx context.Context, req Request) string {
	if req.anonymous || c.ts == nil {
		return ""
	}
	access, _ := c.ts.Tokens(ctx)
	return access
}

func (c *Conn) send(ctx context.Context, req Request, access string) (*resty.Response, error) {
	r := c.client.client.R().SetContext(ctx)
	if access != "" {
		r.SetAuthToken(access)
	}
	if rid := ectx.RequestIDFromCtx(ctx); rid != "" {
		r.SetHeader(requestIDHeader, rid)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	switch {
	case req.multipart:
		r.SetMultipartFormData(req.Form)
		for _, f := range req.Files {
			r.SetMultipartField(f.Field, f.Name, f.ContentType, f.Reader())
		}
	case req.Body != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		c.client.logger.Error("请求后端失败",
			elog.String("method", req.Method),
			elog.String("path", req.Path),
			elog.FieldCost(time.Since(start)),
			elog.FieldErr(err))
		return nil, errors.Wrapf(err, "请求后端失败 %s %s", req.Method, req.Path)
	}
	return resp, nil
}

type refreshResp struct {
	Access string `json:"access"`
}

// refresh stale 是发出请求时使用的 access token
// 如果拿到锁之后发现 token 已经被别的请求刷新过了，就直接用新的
func (c *Conn) refresh(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	access, refresh := c.ts.Tokens(ctx)
	if access != "" && access != stale {
		return access, nil
	}
	if refresh == "" {
		refreshCounter.WithLabelValues("no_token").Inc()
		return "", c.expire(ctx, errors.New("没有 refresh token"))
	}
	status, body, err := c.Do(ctx, NewRequest(http.MethodPost, RefreshPath).
		WithBody(map[string]string{"refresh": refresh}).
		Anonymous())
	if err != nil {
		refreshCounter.WithLabelValues("fail").Inc()
		return "", c.expire(ctx, err)
	}
	res, err := decode[refreshResp](status, body)
	if err != nil {
		refreshCounter.WithLabelValues("fail").Inc()
		return "", c.expire(ctx, err)
	}
	data, err := res.Unwrap()
	if err != nil || data.Access == "" {
		refreshCounter.WithLabelValues("fail").Inc()
		return "", c.expire(ctx, errors.New("刷新响应中没有 access token"))
	}
	if err = c.ts.SaveAccessToken(ctx, data.Access); err != nil {
		return "", errors.Wrap(err, "保存 access token 失败")
	}
	refreshCounter.WithLabelValues("ok").Inc()
	return data.Access, nil
}

// expire 清除两个 token，之后这个会话不会再发出带认证的请求
func (c *Conn) expire(ctx context.Context, cause error) error {
	c.client.logger.Warn("登录态失效，清除 token", elog.FieldErr(cause))
	if err := c.ts.Clear(ctx); err != nil {
		c.client.logger.Error("清除 token 失败", elog.FieldErr(err))
	}
	for _, fn := range c.client.onExpire {
		fn(ctx, c.ts)
	}
	return errors.Wrap(ErrSessionExpired, cause.Error())
}

// Expire 调用方确认登录态已经不可用的时候主动清除
func (c *Conn) Expire(ctx context.Context, cause error) error {
	if c.ts == nil {
		return ErrSessionExpired
	}
	return c.expire(ctx, cause)
}

// VerifyToken 后端认为 token 有效的时候返回 true
func (c *Conn) VerifyToken(ctx context.Context, token string) bool {
	status, body, err := c.Do(ctx, NewRequest(http.MethodPost, VerifyPath).
		WithBody(map[string]string{"token": token}).
		Anonymous())
	if err != nil {
		return false
	}
	res, err := decode[json.RawMessage](status, body)
	return err == nil && res.Success
}

// RefreshAccessToken 主动刷新，应用启动校验登录态的时候使用
func (c *Conn) RefreshAccessToken(ctx context.Context) (string, error) {
	if c.ts == nil {
		return "", ErrSessionExpired
	}
	access, _ := c.ts.Tokens(ctx)
	return c.refresh(ctx, access)
}
