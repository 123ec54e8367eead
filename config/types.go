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
package config

import (
	"os"
	"strings"
	"time"
)

// BackendURLEnv 优先级高于配置文件里面的 backend.baseURL
const BackendURLEnv = "JOBBOARD_BACKEND_URL"

// BackendConfig 后端 REST API
type BackendConfig struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
	// 启动的时候是否等待后端可用
	WaitForSetup bool `yaml:"waitForSetup"`
}

// ApplyEnv 用环境变量覆盖配置文件
func (c *BackendConfig) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(BackendURLEnv)); v != "" {
		c.BaseURL = v
	}
}

type ViewStateConfig struct {
	// 超过这个时间没有访问的页面状态会被清理
	IdleTimeout time.Duration `yaml:"idleTimeout"`
}

type SessionConfig struct {
	SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration          time.Duration `yaml:"expiration"`
	// 距离上次确认登录态超过这个时间才会重新向后端确认
	VerifyInterval time.Duration `yaml:"verifyInterval"`
	Cookie         struct {
		Domain string `yaml:"domain"`
		Secure bool   `yaml:"secure"`
	} `yaml:"cookie"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}
