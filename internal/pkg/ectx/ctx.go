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

package ectx

import "context"

type requestIDContextType string

var (
	requestIDCtxKey requestIDContextType = "request_id"
)

// RequestIDFromCtx 不存在的时候返回空字符串
func RequestIDFromCtx(ctx context.Context) string {
	val := ctx.Value(requestIDCtxKey)
	if val == nil {
		return ""
	}
	v, _ := val.(string)
	return v
}

func CtxWithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, rid)
}
