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

import "github.com/ecodeclub/ekit/slice"

// PageVO 列表页面上展示的一页
type PageVO[V any] struct {
	List       []V  `json:"list"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	Loading    bool `json:"loading"`
}

func ToVO[T any, V any, P comparable](s State[T, P], fn func(idx int, src T) V) PageVO[V] {
	return PageVO[V]{
		List:       slice.Map(s.Data, fn),
		Page:       s.Page,
		PageSize:   s.PageSize,
		Total:      s.Total,
		TotalPages: s.TotalPages,
		Loading:    s.Loading,
	}
}
