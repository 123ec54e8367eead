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

package viewstate

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/core/elog"
)

const sep = "|"

// Registry 按照 浏览器会话 + 页面 保存页面状态（主要是分页控制器）
// 这样翻页、每页数量、过滤条件在多次请求之间能够保持
type Registry struct {
	entries syncx.Map[string, *entry]
	idle    time.Duration
	now     func() time.Time
	logger  *elog.Component
}

type entry struct {
	val any
	// 毫秒
	lastUsed atomic.Int64
}

func NewRegistry(idle time.Duration) *Registry {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &Registry{
		idle:   idle,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

// Load 不存在或者类型不对的时候用 create 创建一个新的
func Load[V any](r *Registry, ssid, screen string, create func() V) V {
	key := ssid + sep + screen
	now := r.now().UnixMilli()
	if e, ok := r.entries.Load(key); ok {
		if v, ok := e.val.(V); ok {
			e.lastUsed.Store(now)
			return v
		}
	}
	e := &entry{val: create()}
	e.lastUsed.Store(now)
	actual, loaded := r.entries.LoadOrStore(key, e)
	if loaded {
		if v, ok := actual.val.(V); ok {
			actual.lastUsed.Store(now)
			return v
		}
		r.entries.Store(key, e)
	}
	return e.val.(V)
}

// Peek 只读取已经存在的页面状态，不会创建
func Peek[V any](r *Registry, ssid, screen string) (V, bool) {
	var zero V
	e, ok := r.entries.Load(ssid + sep + screen)
	if !ok {
		return zero, false
	}
	v, ok := e.val.(V)
	if !ok {
		return zero, false
	}
	e.lastUsed.Store(r.now().UnixMilli())
	return v, true
}

// Drop 登出的时候清理这个会话的所有页面状态
func (r *Registry) Drop(ssid string) int {
	prefix := ssid + sep
	var keys []string
	r.entries.Range(func(key string, _ *entry) bool {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return true
	})
	for _, key := range keys {
		r.entries.Delete(key)
	}
	return len(keys)
}

// Sweep 清理长时间没有访问的页面状态
func (r *Registry) Sweep(ctx context.Context) int {
	deadline := r.now().Add(-r.idle).UnixMilli()
	var keys []string
	r.entries.Range(func(key string, e *entry) bool {
		if e.lastUsed.Load() < deadline {
			keys = append(keys, key)
		}
		return ctx.Err() == nil
	})
	for _, key := range keys {
		r.entries.Delete(key)
	}
	return len(keys)
}

func (r *Registry) Len() int {
	cnt := 0
	r.entries.Range(func(_ string, _ *entry) bool {
		cnt++
		return true
	})
	return cnt
}

// SweepJob 定时清理
type SweepJob struct {
	r *Registry
}

func NewSweepJob(r *Registry) *SweepJob {
	return &SweepJob{r: r}
}

func (s *SweepJob) Name() string {
	return "viewstate_sweep"
}

func (s *SweepJob) Run(ctx context.Context) error {
	cnt := s.r.Sweep(ctx)
	s.r.logger.Debug("清理页面状态", elog.Int("count", cnt))
	return ctx.Err()
}
