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

package service

import "github.com/ecodeclub/jobboard/internal/analytics/internal/domain"

type logDTO struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"timestamp"`
	Level      string  `json:"level"`
	Message    string  `json:"message"`
	UserID     *int64  `json:"user_id"`
	UserEmail  *string `json:"user_email"`
	Endpoint   *string `json:"endpoint"`
	Method     *string `json:"method"`
	StatusCode *int    `json:"status_code"`
	Action     string  `json:"action"`
	ObjectType string  `json:"object_type"`
	ObjectID   *string `json:"object_id"`
}

func (l logDTO) toDomain() domain.LogEntry {
	res := domain.LogEntry{
		ID:         l.ID,
		Timestamp:  l.Timestamp,
		Level:      l.level(),
		Message:    l.Message,
		UserEmail:  deref(l.UserEmail),
		Endpoint:   deref(l.Endpoint),
		Method:     deref(l.Method),
		Action:     l.Action,
		ObjectType: l.ObjectType,
		ObjectID:   deref(l.ObjectID),
	}
	if l.UserID != nil {
		res.UserID = *l.UserID
	}
	if l.StatusCode != nil {
		res.StatusCode = *l.StatusCode
	}
	return res
}

// level 旧的记录没有 level，只有 action
func (l logDTO) level() domain.Level {
	if lv := domain.Level(l.Level); lv.Valid() {
		return lv
	}
	if l.Action == "error" {
		return domain.LevelError
	}
	return domain.LevelInfo
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
