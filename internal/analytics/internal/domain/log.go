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

package domain

import "strings"

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError:
		return true
	default:
		return false
	}
}

// LogEntry 只读的审计记录
type LogEntry struct {
	ID        string
	Timestamp string
	Level     Level
	Message   string
	// 下面都是可选的请求信息
	UserID     int64
	UserEmail  string
	Endpoint   string
	Method     string
	StatusCode int
	// Action 后端记录的动作，例如 upload、apply
	Action     string
	ObjectType string
	ObjectID   string
}

// Matches 在消息、用户邮箱和接口里面查找，忽略大小写
func (e LogEntry) Matches(keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	for _, s := range []string{e.Message, e.UserEmail, e.Endpoint} {
		if strings.Contains(strings.ToLower(s), keyword) {
			return true
		}
	}
	return false
}
