package ioc

import (
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/analytics"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff"
	"github.com/ecodeclub/jobboard/internal/company"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/resume"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	client *apiclient.Client,
	userModule *user.Module,
	resumeModule *resume.Module,
	jobModule *job.Module,
	appModule *application.Module,
	companyModule *company.Module,
	analyticsModule *analytics.Module,
	bffModule *bff.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	// 超时控制依赖 request 的 context
	res.ContextWithFallback = true
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "X-Request-Id"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	verifyInterval := econf.GetDuration("session.verifyInterval")
	if verifyInterval <= 0 {
		verifyInterval = time.Minute
	}
	res.Use(middleware.NewAddRequestIDBuilder().Build(),
		middleware.NewMetricsBuilder("jobboard", "web").Build(),
		// 必须在所有守卫之前
		middleware.NewSessionResolverBuilder(client, verifyInterval).Build())

	userModule.Hdl.PublicRoutes(res.Engine)
	bffModule.Hdl.PublicRoutes(res.Engine)

	// 登录校验
	res.Use(middleware.NewCheckLoginMiddlewareBuilder().Build())
	userModule.Hdl.PrivateRoutes(res.Engine)
	userModule.AdminHdl.PrivateRoutes(res.Engine)
	resumeModule.Hdl.PrivateRoutes(res.Engine)
	jobModule.Hdl.PrivateRoutes(res.Engine)
	jobModule.RecruiterHdl.PrivateRoutes(res.Engine)
	jobModule.AdminHdl.PrivateRoutes(res.Engine)
	appModule.Hdl.PrivateRoutes(res.Engine)
	appModule.RecruiterHdl.PrivateRoutes(res.Engine)
	companyModule.Hdl.PrivateRoutes(res.Engine)
	companyModule.RecruiterHdl.PrivateRoutes(res.Engine)
	companyModule.AdminHdl.PrivateRoutes(res.Engine)
	analyticsModule.AdminHdl.PrivateRoutes(res.Engine)
	bffModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
