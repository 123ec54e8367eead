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

package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "系统错误"}
	BackendError    = ErrorCode{Code: 504002, Msg: "后端服务错误"}
	InvalidInput    = ErrorCode{Code: 504003, Msg: "参数错误"}
	ConfirmRequired = ErrorCode{Code: 504004, Msg: "Please confirm this action"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
