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
package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobboard/config"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitBackendClient() *apiclient.Client {
	var cfg config.BackendConfig
	err := econf.UnmarshalKey("backend", &cfg)
	if err != nil {
		panic(err)
	}
	cfg.ApplyEnv()
	if cfg.BaseURL == "" {
		panic("没有配置后端地址 backend.baseURL")
	}
	client := apiclient.NewClient(apiclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if cfg.WaitForSetup {
		WaitForBackendSetup(client)
	}
	return client
}

// WaitForBackendSetup 后端没有启动的时候按照指数退避重试
func WaitForBackendSetup(client *apiclient.Client) {
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = client.Ping(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForBackendSetup 重试失败......")
		}
		elog.DefaultLogger.Warn("后端还不可用",
			elog.String("baseURL", client.BaseURL()),
			elog.FieldErr(err))
		time.Sleep(next)
	}
}
