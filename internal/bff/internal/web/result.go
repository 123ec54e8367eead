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

package web

import (
	"errors"

	"github.com/ecodeclub/jobboard/internal/bff/internal/errs"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
)

var codes = resultx.Codes{
	System:       errs.SystemError.Code,
	SystemMsg:    errs.SystemError.Msg,
	Backend:      errs.BackendError.Code,
	InvalidInput: errs.InvalidInput.Code,
}

// sectionMsg 一个区块加载失败只在这个区块上提示
func sectionMsg(err error, fallback string) string {
	if be, ok := apiclient.AsBizError(err); ok && be.Message != "" {
		return be.Message
	}
	return fallback
}

// expired 任何一个区块发现登录过期，整个页面都要跳转到登录页
func expired(errList ...error) bool {
	for _, err := range errList {
		if errors.Is(err, apiclient.ErrSessionExpired) {
			return true
		}
	}
	return false
}
