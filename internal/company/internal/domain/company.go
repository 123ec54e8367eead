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

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

type Recruiter struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

func (r Recruiter) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

type Company struct {
	ID          string
	Name        string
	Description string
	Website     string
	Logo        string
	Recruiters  []Recruiter
	CreatedAt   string
	UpdatedAt   string
}

// Profile 创建、修改公司的时候提交的内容
type Profile struct {
	Name        string
	Description string
	Website     string
}

func (p Profile) Normalize() Profile {
	return Profile{
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Website:     strings.TrimSpace(p.Website),
	}
}

// Opening 公司名下一个已经审核通过的职位
type Opening struct {
	ID       string
	Title    string
	Location string
	IsRemote bool
}

// Listing 公司列表页上的一家公司
type Listing struct {
	Company  Company
	Openings []Opening
}

// Posted 一个带着公司信息的职位
type Posted struct {
	Company Company
	Opening Opening
}

// GroupByCompany 按照公司去重，保持公司第一次出现的顺序
func GroupByCompany(posts []Posted) []Listing {
	res := make([]Listing, 0, len(posts))
	index := make(map[string]int, len(posts))
	for _, p := range posts {
		if p.Company.ID == "" {
			continue
		}
		idx, ok := index[p.Company.ID]
		if !ok {
			idx = len(res)
			index[p.Company.ID] = idx
			res = append(res, Listing{Company: p.Company})
		}
		res[idx].Openings = append(res[idx].Openings, p.Opening)
	}
	return res
}

// RecruiterEmails 给管理员页面展示
func (c Company) RecruiterEmails() []string {
	return slice.Map(c.Recruiters, func(idx int, src Recruiter) string {
		return src.Email
	})
}
