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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/company/internal/domain"
)

type recruiterDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type companyDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Website     *string        `json:"website"`
	Logo        *string        `json:"logo"`
	Recruiters  []recruiterDTO `json:"recruiters"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

func (c companyDTO) toDomain() domain.Company {
	return domain.Company{
		ID:          c.ID,
		Name:        c.Name,
		Description: deref(c.Description),
		Website:     deref(c.Website),
		Logo:        deref(c.Logo),
		Recruiters: slice.Map(c.Recruiters, func(idx int, src recruiterDTO) domain.Recruiter {
			return domain.Recruiter{
				ID:        src.ID,
				Email:     src.Email,
				FirstName: src.FirstName,
				LastName:  src.LastName,
			}
		}),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// profileForm 后端只接受 multipart，空的字段不提交
func profileForm(p domain.Profile) map[string]string {
	form := map[string]string{"name": p.Name}
	if p.Description != "" {
		form["description"] = p.Description
	}
	if p.Website != "" {
		form["website"] = p.Website
	}
	return form
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
