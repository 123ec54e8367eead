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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/analytics/internal/errs"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
)

var codes = resultx.Codes{
	System:       errs.SystemError.Code,
	SystemMsg:    errs.SystemError.Msg,
	Backend:      errs.BackendError.Code,
	InvalidInput: errs.InvalidInput.Code,
}

var invalidLevelResult = ginx.Result{
	Code: errs.InvalidInput.Code,
	Msg:  "Please select a valid log level",
}
