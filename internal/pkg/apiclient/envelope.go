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
	"net/http"

	"github.com/pkg/errors"
)

const unknownErrorMsg = "An unknown error occurred"

// Result 后端统一的响应格式
// {success, data, error{message, code, details}}
type Result[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data"`
	Error   *ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details,omitempty"`
}

// PageData 分页数据，对应后端的 {count, next, previous, results}
type PageData[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Unwrap 成功并且 data 不为空的时候返回 data，否则返回 BizError
func (r Result[T]) Unwrap() (T, error) {
	var t T
	if r.Success && r.Data != nil {
		return *r.Data, nil
	}
	return t, r.bizError(http.StatusOK)
}

func (r Result[T]) bizError(status int) *BizError {
	be := &BizError{Status: status, Message: unknownErrorMsg}
	if r.Error != nil {
		if r.Error.Message != "" {
			be.Message = r.Error.Message
		}
		be.Code = r.Error.Code
		be.Details = r.Error.Details
	}
	return be
}

// decode 解析响应体
// 2xx 之外的响应，优先用响应体里面的错误信息
func decode[T any](status int, body []byte) (Result[T], error) {
	var res Result[T]
	if status == http.StatusNoContent || len(body) == 0 {
		if status >= 200 && status < 300 {
			return Result[T]{Success: true}, nil
		}
		return res, &BizError{Status: status, Message: unknownErrorMsg}
	}
	err := json.Unmarshal(body, &res)
	if err != nil {
		if status >= 200 && status < 300 {
			return res, errors.Wrap(err, "解析后端响应失败")
		}
		return res, &BizError{Status: status, Message: unknownErrorMsg}
	}
	if status < 200 || status >= 300 {
		return res, res.bizError(status)
	}
	return res, nil
}
