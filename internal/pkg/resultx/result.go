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

package resultx

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/upload"
)

const LoginPath = "/login"

const unauthorizedMsg = "You are not authorized to perform this action"

// Codes 每个模块自己的错误码
type Codes struct {
	System       int
	SystemMsg    string
	Backend      int
	InvalidInput int
}

// Handle 把错误转换成页面上能看到的三种结果
// 登录过期：重定向到登录页
// 校验失败、后端业务错误：Code + Msg
// 其它：系统错误
func (c Codes) Handle(ctx *ginx.Context, err error) (ginx.Result, error) {
	if errors.Is(err, apiclient.ErrSessionExpired) {
		ctx.Redirect(http.StatusFound, LoginPath)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	var ve *upload.ValidationError
	if errors.As(err, &ve) {
		return c.Invalid(ve.Msg), nil
	}
	if be, ok := apiclient.AsBizError(err); ok {
		return ginx.Result{Code: c.Backend, Msg: be.Message}, nil
	}
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return ginx.Result{Code: c.Backend, Msg: unauthorizedMsg}, nil
	}
	return c.SystemError(), err
}

// HandleWithMsg 后端业务错误统一展示成 msg，其它错误和 Handle 一样
func (c Codes) HandleWithMsg(ctx *ginx.Context, err error, msg string) (ginx.Result, error) {
	if _, ok := apiclient.AsBizError(err); ok {
		return ginx.Result{Code: c.Backend, Msg: msg}, nil
	}
	return c.Handle(ctx, err)
}

func (c Codes) SystemError() ginx.Result {
	return ginx.Result{Code: c.System, Msg: c.SystemMsg}
}

// Invalid 本地校验失败，不会请求后端
func (c Codes) Invalid(msg string) ginx.Result {
	return ginx.Result{Code: c.InvalidInput, Msg: msg}
}

// OK 成功的提示
func OK(msg string, data any) ginx.Result {
	return ginx.Result{Msg: msg, Data: data}
}
