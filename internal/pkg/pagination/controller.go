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
)

const DefaultPageSize = 10

var ErrInvalidPageSize = errors.New("每页数量必须大于 0")

// Page 一次拉取的结果
type Page[T any] struct {
	Results []T
	Count   int
}

// FetchFunc 拉取第 page 页的数据
type FetchFunc[T any, P comparable] func(ctx context.Context, page, pageSize int, params P) (Page[T], error)

type Options[P any] struct {
	InitialPage     int
	InitialPageSize int
	Params          P
	AutoFetch       bool
}

// State 对外暴露的状态快照
type State[T any, P comparable] struct {
	Data       []T  `json:"data"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	Loading    bool `json:"loading"`
	// Err 最近一次拉取失败的原因，成功之后会被清空
	Err    error `json:"-"`
	Params P     `json:"params"`
}

// Controller 分页控制器
// 每次拉取都会拿到一个递增的序号，只有最新的那一次拉取的结果会被采用
type Controller[T any, P comparable] struct {
	fetch FetchFunc[T, P]
	opts  Options[P]

	mu       sync.Mutex
	page     int
	pageSize int
	params   P
	data     []T
	total    int
	loading  bool
	err      error
	// 已经发出去的最大序号
	seq uint64
}

func NewController[T any, P comparable](fetch FetchFunc[T, P], opts Options[P]) *Controller[T, P] {
	page := opts.InitialPage
	if page < 1 {
		page = 1
	}
	size := opts.InitialPageSize
	if size < 1 {
		size = DefaultPageSize
	}
	return &Controller[T, P]{
		fetch:    fetch,
		opts:     opts,
		page:     page,
		pageSize: size,
		params:   opts.Params,
	}
}

// Query 页面上的一次翻页请求，零值表示不变
type Query struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// Apply 过滤条件变了回到第一页，每页数量变了保持位置，否则跳到指定页
// 什么都没有变的时候重新拉取当前页
// 第一次调用直接按照请求里面的状态拉取一次
func (c *Controller[T, P]) Apply(ctx context.Context, q Query, params P) State[T, P] {
	c.mu.Lock()
	if c.seq == 0 {
		c.params = params
		if q.PageSize > 0 {
			c.pageSize = q.PageSize
		}
		if q.Page > 0 {
			c.page = q.Page
		}
		seq, page, size, p := c.begin()
		c.mu.Unlock()
		c.load(ctx, seq, page, size, p)
		return c.Snapshot()
	}
	paramsChanged := params != c.params
	sizeChanged := q.PageSize > 0 && q.PageSize != c.pageSize
	pageChanged := q.Page > 0 && q.Page != c.page
	if paramsChanged && sizeChanged {
		c.pageSize = q.PageSize
	}
	c.mu.Unlock()
	switch {
	case paramsChanged:
		c.SetParams(ctx, params)
	case sizeChanged:
		_ = c.ChangePageSize(ctx, q.PageSize)
	case pageChanged:
		c.GoToPage(ctx, q.Page)
	default:
		c.Refresh(ctx)
	}
	return c.Snapshot()
}

// Start 只有打开了 AutoFetch 才会在创建之后拉取第一页
func (c *Controller[T, P]) Start(ctx context.Context) {
	if c.opts.AutoFetch {
		c.Refresh(ctx)
	}
}

func (c *Controller[T, P]) NextPage(ctx context.Context) {
	c.mu.Lock()
	target := c.page + 1
	c.mu.Unlock()
	c.GoToPage(ctx, target)
}

func (c *Controller[T, P]) PrevPage(ctx context.Context) {
	c.mu.Lock()
	target := c.page - 1
	c.mu.Unlock()
	c.GoToPage(ctx, target)
}

// GoToPage 目标页会被限制在 [1, max(totalPages, 1)]，和当前页相同的时候什么也不做
func (c *Controller[T, P]) GoToPage(ctx context.Context, n int) {
	c.mu.Lock()
	n = max(1, min(n, max(c.totalPages(), 1)))
	if n == c.page {
		c.mu.Unlock()
		return
	}
	c.page = n
	seq, page, size, params := c.begin()
	c.mu.Unlock()
	c.load(ctx, seq, page, size, params)
}

// ChangePageSize 保持当前页第一条记录的位置不变
// newPage = (page-1)*old/new + 1
func (c *Controller[T, P]) ChangePageSize(ctx context.Context, size int) error {
	if size <= 0 {
		return ErrInvalidPageSize
	}
	c.mu.Lock()
	c.page = (c.page-1)*c.pageSize/size + 1
	c.pageSize = size
	seq, page, pageSize, params := c.begin()
	c.mu.Unlock()
	c.load(ctx, seq, page, pageSize, params)
	return nil
}

// SetParams 修改过滤条件，回到第一页
func (c *Controller[T, P]) SetParams(ctx context.Context, params P) {
	c.mu.Lock()
	c.params = params
	c.page = 1
	seq, page, size, p := c.begin()
	c.mu.Unlock()
	c.load(ctx, seq, page, size, p)
}

// Refresh 用当前的状态重新拉取
func (c *Controller[T, P]) Refresh(ctx context.Context) {
	c.mu.Lock()
	seq, page, size, params := c.begin()
	c.mu.Unlock()
	c.load(ctx, seq, page, size, params)
}

func (c *Controller[T, P]) Snapshot() State[T, P] {
	c.mu.Lock()
	defer c.mu.Unlock()
	data := make([]T, len(c.data))
	copy(data, c.data)
	return State[T, P]{
		Data:       data,
		Page:       c.page,
		PageSize:   c.pageSize,
		Total:      c.total,
		TotalPages: c.totalPages(),
		Loading:    c.loading,
		Err:        c.err,
		Params:     c.params,
	}
}

// begin 必须持有锁
func (c *Controller[T, P]) begin() (uint64, int, int, P) {
	c.seq++
	c.loading = true
	return c.seq, c.page, c.pageSize, c.params
}

// load 拉取的过程中不持有锁
func (c *Controller[T, P]) load(ctx context.Context, seq uint64, page, size int, params P) {
	res, err := c.fetch(ctx, page, size, params)
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// 已经有更新的请求了，丢弃
		return
	}
	c.loading = false
	if err != nil {
		// 保留之前的数据
		c.err = err
		return
	}
	c.err = nil
	c.data = res.Results
	c.total = res.Count
}

// totalPages 必须持有锁
func (c *Controller[T, P]) totalPages() int {
	if c.pageSize <= 0 {
		return 0
	}
	return (c.total + c.pageSize - 1) / c.pageSize
}
