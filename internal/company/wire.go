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

//go:build wireinject

package company

import (
	"github.com/ecodeclub/jobboard/internal/company/internal/service"
	"github.com/ecodeclub/jobboard/internal/company/internal/web"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	service.NewCompanyService,
	web.NewHandler,
	web.NewRecruiterHandler,
	web.NewAdminHandler,
)

func InitModule(client *apiclient.Client,
	registry *viewstate.Registry,
	jobModule *job.Module) *Module {
	wire.Build(HandlerSet,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module)
}
