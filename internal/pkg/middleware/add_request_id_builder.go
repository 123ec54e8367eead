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
	"github.com/ecodeclub/jobboard/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

const requestIDHeader = "X-Request-Id"

// AddRequestIDBuilder 给每个请求分配一个 request id，调用后端的时候会带上
type AddRequestIDBuilder struct {
}

func NewAddRequestIDBuilder() *AddRequestIDBuilder {
	return &AddRequestIDBuilder{}
}

func (a *AddRequestIDBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > 64 {
			rid = shortuuid.New()
		}
		ctx.Header(requestIDHeader, rid)
		newCtx := ectx.CtxWithRequestID(ctx.Request.Context(), rid)
		ctx.Request = ctx.Request.WithContext(newCtx)
	}
}
