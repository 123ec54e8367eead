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

package pagination

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	page     int
	pageSize int
	params   string
}

// recorder 模拟一个一共有 total 条记录的列表
type recorder struct {
	mu    sync.Mutex
	total int
	calls []call
	err   error
}

func (r *recorder) fetch(_ context.Context, page, pageSize int, params string) (Page[int], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{page: page, pageSize: pageSize, params: params})
	if r.err != nil {
		return Page[int]{}, r.err
	}
	var res []int
	for i := (page - 1) * pageSize; i < min(page*pageSize, r.total); i++ {
		res = append(res, i)
	}
	return Page[int]{Results: res, Count: r.total}, nil
}

func (r *recorder) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newStarted(t *testing.T, r *recorder, opts Options[string]) *Controller[int, string] {
	t.Helper()
	opts.AutoFetch = true
	c := NewController[int, string](r.fetch, opts)
	c.Start(context.Background())
	return c
}

func TestController_Start(t *testing.T) {
	r := &recorder{total: 45}
	c := NewController[int, string](r.fetch, Options[string]{})
	c.Start(context.Background())
	assert.Equal(t, 0, r.callCount())
	state := c.Snapshot()
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, DefaultPageSize, state.PageSize)

	c = newStarted(t, r, Options[string]{InitialPageSize: 20, Params: "pending"})
	require.Equal(t, 1, r.callCount())
	assert.Equal(t, call{page: 1, pageSize: 20, params: "pending"}, r.calls[0])
	state = c.Snapshot()
	assert.Equal(t, 45, state.Total)
	assert.Equal(t, 3, state.TotalPages)
	assert.Len(t, state.Data, 20)
	assert.False(t, state.Loading)
}

func TestController_GoToPage(t *testing.T) {
	testCases := []struct {
		name      string
		startPage int
		target    int
		wantPage  int
		wantFetch bool
	}{
		{name: "正常跳转", startPage: 1, target: 3, wantPage: 3, wantFetch: true},
		{name: "超过最大页", startPage: 1, target: 9, wantPage: 5, wantFetch: true},
		{name: "小于 1", startPage: 4, target: -2, wantPage: 1, wantFetch: true},
		{name: "当前页", startPage: 2, target: 2, wantPage: 2, wantFetch: false},
		{name: "在最后一页继续往后", startPage: 5, target: 6, wantPage: 5, wantFetch: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{total: 45}
			c := newStarted(t, r, Options[string]{InitialPage: tc.startPage})
			before := r.callCount()
			c.GoToPage(context.Background(), tc.target)
			assert.Equal(t, tc.wantPage, c.Snapshot().Page)
			assert.Equal(t, tc.wantFetch, r.callCount() > before)
		})
	}
}

func TestController_NextPrev(t *testing.T) {
	r := &recorder{total: 25}
	c := newStarted(t, r, Options[string]{})

	// 第一页往前不会拉取
	c.PrevPage(context.Background())
	assert.Equal(t, 1, r.callCount())
	assert.Equal(t, 1, c.Snapshot().Page)

	c.NextPage(context.Background())
	c.NextPage(context.Background())
	assert.Equal(t, 3, c.Snapshot().Page)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, c.Snapshot().Data)
	assert.Equal(t, 3, r.callCount())

	// 最后一页往后不会拉取
	c.NextPage(context.Background())
	assert.Equal(t, 3, r.callCount())
	assert.Equal(t, 3, c.Snapshot().Page)

	c.PrevPage(context.Background())
	assert.Equal(t, 2, c.Snapshot().Page)
}

// 空列表的时候最大页是 1
func TestController_GoToPage_Empty(t *testing.T) {
	r := &recorder{total: 0}
	c := newStarted(t, r, Options[string]{})
	c.GoToPage(context.Background(), 3)
	assert.Equal(t, 1, c.Snapshot().Page)
	assert.Equal(t, 0, c.Snapshot().TotalPages)
	assert.Equal(t, 1, r.callCount())
}

func TestController_ChangePageSize(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		size     int
		newSize  int
		wantPage int
	}{
		{name: "变大", page: 3, size: 10, newSize: 25, wantPage: 1},
		{name: "翻倍", page: 5, size: 10, newSize: 20, wantPage: 3},
		{name: "变小", page: 2, size: 20, newSize: 5, wantPage: 5},
		{name: "第一页", page: 1, size: 10, newSize: 50, wantPage: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{total: 100}
			c := newStarted(t, r, Options[string]{InitialPage: tc.page, InitialPageSize: tc.size})
			err := c.ChangePageSize(context.Background(), tc.newSize)
			require.NoError(t, err)
			state := c.Snapshot()
			assert.Equal(t, tc.wantPage, state.Page)
			assert.Equal(t, tc.newSize, state.PageSize)
			assert.Equal(t, call{page: tc.wantPage, pageSize: tc.newSize}, r.calls[len(r.calls)-1])
		})
	}
}

func TestController_ChangePageSize_Invalid(t *testing.T) {
	r := &recorder{total: 100}
	c := newStarted(t, r, Options[string]{})
	err := c.ChangePageSize(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
	assert.Equal(t, DefaultPageSize, c.Snapshot().PageSize)
	assert.Equal(t, 1, r.callCount())
}

func TestController_SetParams(t *testing.T) {
	r := &recorder{total: 100}
	c := newStarted(t, r, Options[string]{InitialPage: 4})
	c.SetParams(context.Background(), "approved")
	state := c.Snapshot()
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, "approved", state.Params)
	assert.Equal(t, call{page: 1, pageSize: DefaultPageSize, params: "approved"}, r.calls[len(r.calls)-1])
}

// 失败的时候保留之前的数据
func TestController_FetchError(t *testing.T) {
	r := &recorder{total: 30}
	c := newStarted(t, r, Options[string]{})
	prev := c.Snapshot().Data

	r.mu.Lock()
	r.err = errors.New("network down")
	r.mu.Unlock()
	c.Refresh(context.Background())
	state := c.Snapshot()
	assert.Equal(t, prev, state.Data)
	assert.EqualError(t, state.Err, "network down")
	assert.False(t, state.Loading)

	r.mu.Lock()
	r.err = nil
	r.mu.Unlock()
	c.Refresh(context.Background())
	assert.NoError(t, c.Snapshot().Err)
}

// 先发出的请求后返回，结果会被丢弃
func TestController_StaleResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, page, pageSize int, params string) (Page[int], error) {
		if page == 2 {
			close(started)
			<-release
			return Page[int]{Results: []int{200}, Count: 50}, nil
		}
		return Page[int]{Results: []int{page * 100}, Count: 50}, nil
	}
	c := NewController[int, string](fetch, Options[string]{AutoFetch: true})
	c.Start(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.GoToPage(context.Background(), 2)
	}()
	<-started
	c.GoToPage(context.Background(), 3)
	state := c.Snapshot()
	assert.Equal(t, 3, state.Page)
	assert.Equal(t, []int{300}, state.Data)

	close(release)
	<-done
	state = c.Snapshot()
	assert.Equal(t, 3, state.Page)
	assert.Equal(t, []int{300}, state.Data)
	assert.False(t, state.Loading)
}

// 旧请求的失败也会被丢弃
func TestController_StaleError(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, page, pageSize int, params string) (Page[int], error) {
		if params == "slow" {
			close(started)
			<-release
			return Page[int]{}, errors.New("timeout")
		}
		return Page[int]{Results: []int{1}, Count: 1}, nil
	}
	c := NewController[int, string](fetch, Options[string]{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.SetParams(context.Background(), "slow")
	}()
	<-started
	c.SetParams(context.Background(), "fast")
	close(release)
	<-done
	state := c.Snapshot()
	assert.NoError(t, state.Err)
	assert.Equal(t, []int{1}, state.Data)
	assert.Equal(t, "fast", state.Params)
}

func TestController_Apply(t *testing.T) {
	testCases := []struct {
		name      string
		before    func(t *testing.T, c *Controller[int, string])
		query     Query
		params    string
		wantPage  int
		wantSize  int
		wantCalls []call
	}{
		{
			name:      "第一次访问直接跳页",
			query:     Query{Page: 3},
			wantPage:  3,
			wantSize:  10,
			wantCalls: []call{{page: 3, pageSize: 10}},
		},
		{
			name:     "第一次访问就带着过滤条件",
			query:    Query{PageSize: 20},
			params:   "approved",
			wantPage: 1,
			wantSize: 20,
			wantCalls: []call{
				{page: 1, pageSize: 20, params: "approved"},
			},
		},
		{
			name:      "第一次访问",
			wantPage:  1,
			wantSize:  10,
			wantCalls: []call{{page: 1, pageSize: 10}},
		},
		{
			name: "再次访问刷新当前页",
			before: func(t *testing.T, c *Controller[int, string]) {
				c.Apply(context.Background(), Query{Page: 2}, "")
			},
			wantPage: 2,
			wantSize: 10,
			wantCalls: []call{
				{page: 2, pageSize: 10},
				{page: 2, pageSize: 10},
			},
		},
		{
			name: "修改过滤条件回到第一页",
			before: func(t *testing.T, c *Controller[int, string]) {
				c.Apply(context.Background(), Query{Page: 4}, "")
			},
			query:    Query{Page: 4, PageSize: 20},
			params:   "reviewed",
			wantPage: 1,
			wantSize: 20,
			wantCalls: []call{
				{page: 4, pageSize: 10},
				{page: 1, pageSize: 20, params: "reviewed"},
			},
		},
		{
			name: "修改每页数量",
			before: func(t *testing.T, c *Controller[int, string]) {
				c.Apply(context.Background(), Query{Page: 5}, "")
			},
			query:    Query{PageSize: 25},
			wantPage: 2,
			wantSize: 25,
			wantCalls: []call{
				{page: 5, pageSize: 10},
				{page: 2, pageSize: 25},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{total: 100}
			c := NewController[int, string](r.fetch, Options[string]{})
			if tc.before != nil {
				tc.before(t, c)
			}
			state := c.Apply(context.Background(), tc.query, tc.params)
			assert.Equal(t, tc.wantPage, state.Page)
			assert.Equal(t, tc.wantSize, state.PageSize)
			assert.Equal(t, tc.params, state.Params)
			assert.Equal(t, tc.wantCalls, r.calls)
		})
	}
}
