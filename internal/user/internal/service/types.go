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
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
)

// userDTO 后端返回的用户，可选字段可能是 null
type userDTO struct {
	ID              int64   `json:"id"`
	Email           string  `json:"email"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Role            string  `json:"role"`
	IsEmailVerified bool    `json:"is_email_verified"`
	Bio             *string `json:"bio"`
	Location        *string `json:"location"`
	PhoneNumber     *string `json:"phone_number"`
	Website         *string `json:"website"`
	LinkedinURL     *string `json:"linkedin_url"`
	GithubURL       *string `json:"github_url"`
	ProfilePicture  *string `json:"profile_picture"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func (u userDTO) toDomain() domain.User {
	return domain.User{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           sessionx.Role(u.Role),
		EmailVerified:  u.IsEmailVerified,
		Bio:            deref(u.Bio),
		Location:       deref(u.Location),
		PhoneNumber:    deref(u.PhoneNumber),
		Website:        deref(u.Website),
		LinkedinURL:    deref(u.LinkedinURL),
		GithubURL:      deref(u.GithubURL),
		ProfilePicture: deref(u.ProfilePicture),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

type authDTO struct {
	Access  string  `json:"access"`
	Refresh string  `json:"refresh"`
	User    userDTO `json:"user"`
}

func (a authDTO) toDomain() domain.Auth {
	return domain.Auth{
		User:    a.User.toDomain(),
		Access:  a.Access,
		Refresh: a.Refresh,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
