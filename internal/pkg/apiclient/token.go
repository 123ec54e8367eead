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

package apiclient

import (
	"context"
	"sync"
)

// TokenStore 保存后端签发的 access token 和 refresh token
// 只有登录、注册、刷新、登出会写
type TokenStore interface {
	Tokens(ctx context.Context) (access string, refresh string)
	SaveAccessToken(ctx context.Context, access string) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore 内存实现，测试和登录过程中使用
type MemoryTokenStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
	cleared bool
}

func NewMemoryTokenStore(access, refresh string) *MemoryTokenStore {
	return &MemoryTokenStore{access: access, refresh: refresh}
}

func (m *MemoryTokenStore) Tokens(_ context.Context) (string, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access, m.refresh
}

func (m *MemoryTokenStore) SaveAccessToken(_ context.Context, access string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
	return nil
}

func (m *MemoryTokenStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	m.refresh = ""
	m.cleared = true
	return nil
}

// Cleared 是否被清除过
func (m *MemoryTokenStore) Cleared() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cleared
}
