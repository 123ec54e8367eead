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
	"github.com/ecodeclub/jobboard/internal/pkg/pagination"
	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
)

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterReq struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Role            string `json:"role"`
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	UID             string `json:"uid"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// EditProfileReq 带头像的时候以 multipart 提交，头像字段是 profilePicture
type EditProfileReq struct {
	FirstName   string `json:"firstName" form:"firstName"`
	LastName    string `json:"lastName" form:"lastName"`
	Bio         string `json:"bio" form:"bio"`
	Location    string `json:"location" form:"location"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Website     string `json:"website" form:"website"`
	LinkedinURL string `json:"linkedinUrl" form:"linkedinUrl"`
	GithubURL   string `json:"githubUrl" form:"githubUrl"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type EditUserReq struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// ConfirmReq 删除之类的操作必须带上 confirm
type ConfirmReq struct {
	Confirm bool `json:"confirm"`
}

type UserListReq struct {
	pagination.Query
}

type Profile struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FullName       string `json:"fullName"`
	Role           string `json:"role"`
	EmailVerified  bool   `json:"emailVerified"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Website        string `json:"website,omitempty"`
	LinkedinURL    string `json:"linkedinUrl,omitempty"`
	GithubURL      string `json:"githubUrl,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Role:           string(u.Role),
		EmailVerified:  u.EmailVerified,
		Bio:            u.Bio,
		Location:       u.Location,
		PhoneNumber:    u.PhoneNumber,
		Website:        u.Website,
		LinkedinURL:    u.LinkedinURL,
		GithubURL:      u.GithubURL,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// SessionVO 登录、注册之后前端根据 redirect 跳转
type SessionVO struct {
	User     Profile `json:"user"`
	Redirect string  `json:"redirect"`
}

type RedirectVO struct {
	Redirect string `json:"redirect"`
}

type UserList = pagination.PageVO[Profile]
