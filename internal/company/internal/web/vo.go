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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
)

type ListReq struct {
	pagination.Query
}

type ConfirmReq struct {
	Confirm bool `json:"confirm"`
}

// ProfileReq multipart 表单，logo 单独读取
// ID 为空的时候创建公司
type ProfileReq struct {
	ID          string `json:"id" form:"id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Website     string `json:"website" form:"website"`
}

func (r ProfileReq) toDomain() domain.Profile {
	return domain.Profile{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
	}.Normalize()
}

type AddRecruiterReq struct {
	UserID int64 `json:"userId"`
}

type Recruiter struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type Company struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Website     string      `json:"website"`
	Logo        string      `json:"logo"`
	Recruiters  []Recruiter `json:"recruiters"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

// CompanyPage 招聘者的公司页面，还没有公司的时候 Company 为空，页面展示创建表单
type CompanyPage struct {
	Company *Company `json:"company"`
}

type Opening struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	IsRemote bool   `json:"isRemote"`
}

type Listing struct {
	Company  Company   `json:"company"`
	Openings []Opening `json:"openings"`
}

type CompanyList = pagination.PageVO[Company]

func newCompany(c domain.Company) Company {
	return Company{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Logo:        c.Logo,
		Recruiters: slice.Map(c.Recruiters, func(idx int, src domain.Recruiter) Recruiter {
			return Recruiter{ID: src.ID, Email: src.Email, FullName: src.FullName()}
		}),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func newListings(ls []domain.Listing) []Listing {
	return slice.Map(ls, func(idx int, src domain.Listing) Listing {
		return Listing{
			Company: newCompany(src.Company),
			Openings: slice.Map(src.Openings, func(idx int, o domain.Opening) Opening {
				return Opening{ID: o.ID, Title: o.Title, Location: o.Location, IsRemote: o.IsRemote}
			}),
		}
	})
}

func toCompanyList(state pagination.State[domain.Company, string]) CompanyList {
	return pagination.ToVO(state, func(idx int, src domain.Company) Company {
		return newCompany(src)
	})
}
