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
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSessionExpired 刷新失败或者没有 refresh token，两个 token 都已经被清除
	ErrSessionExpired = errors.New("登录已过期")
	// ErrUnauthorized 刷新并重试之后仍然是 401
	ErrUnauthorized = errors.New("未授权")
)

// BizError 后端返回的业务错误
type BizError struct {
	Status  int
	Code    string
	Message string
	Details json.RawMessage
}

func (e *BizError) Error() string {
	return fmt.Sprintf("后端业务错误 status: %d, code: %s, msg: %s", e.Status, e.Code, e.Message)
}

// AsBizError 从错误链里面找出 BizError
func AsBizError(err error) (*BizError, bool) {
	var be *BizError
	ok := errors.As(err, &be)
	return be, ok
}
