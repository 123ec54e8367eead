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
	"github.com/ecodeclub/jobboard/internal/analytics/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
)

const allLevels = "all"

type ListReq struct {
	pagination.Query
	Level string `form:"level"`
	// Search 只在当前页里面查找
	Search string `form:"search"`
}

// parseLevel 空字符串和 all 表示不过滤
func parseLevel(s string) (domain.Level, bool) {
	if s == "" || s == allLevels {
		return "", true
	}
	l := domain.Level(s)
	return l, l.Valid()
}

type Log struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	UserID     int64  `json:"userId,omitempty"`
	UserEmail  string `json:"userEmail,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"`
	Method     string `json:"method,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Action     string `json:"action,omitempty"`
	ObjectType string `json:"objectType,omitempty"`
	ObjectID   string `json:"objectId,omitempty"`
}

type LogList struct {
	pagination.PageVO[Log]
	Level  string `json:"level"`
	Search string `json:"search"`
}

func newLog(l domain.LogEntry) Log {
	return Log{
		ID:         l.ID,
		Timestamp:  l.Timestamp,
		Level:      string(l.Level),
		Message:    l.Message,
		UserID:     l.UserID,
		UserEmail:  l.UserEmail,
		Endpoint:   l.Endpoint,
		Method:     l.Method,
		StatusCode: l.StatusCode,
		Action:     l.Action,
		ObjectType: l.ObjectType,
		ObjectID:   l.ObjectID,
	}
}
