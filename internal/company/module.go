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

package company

import (
	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/company/internal/service"
	"github.com/ecodeclub/jobboard/internal/company/internal/web"
)

type (
	Handler          = web.Handler
	RecruiterHandler = web.RecruiterHandler
	AdminHandler     = web.AdminHandler
	Service          = service.CompanyService
	Company          = domain.Company
)

type Module struct {
	Hdl          *Handler
	RecruiterHdl *RecruiterHandler
	AdminHdl     *AdminHandler
	Svc          Service
}
