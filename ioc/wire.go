//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/analytics"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitRedis, InitSession, InitBackendClient, InitViewStateRegistry)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		InitResumeModule,
		job.InitModule,
		application.InitModule,
		company.InitModule,
		analytics.InitModule,
		bff.InitModule,
		initCronJobs,
		initGinxServer)
	return new(App), nil
}
