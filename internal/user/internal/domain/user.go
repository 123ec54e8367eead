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

import "github.com/ecodeclub/jobboard/internal/pkg/sessionx"

type User struct {
	ID             int64
	Email          string
	FirstName      string
	LastName       string
	Role           sessionx.Role
	EmailVerified  bool
	Bio            string
	Location       string
	PhoneNumber    string
	Website        string
	LinkedinURL    string
	GithubURL      string
	ProfilePicture string
	CreatedAt      string
	UpdatedAt      string
}

func (u User) FullName() string {
	return u.SessionUser().FullName()
}

// SessionUser 会话里面只缓存这几个字段
func (u User) SessionUser() sessionx.User {
	return sessionx.User{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
	}
}

// Auth 登录或者注册成功之后后端返回的 token 和用户
type Auth struct {
	User    User
	Access  string
	Refresh string
}

type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	PasswordConfirm string
	Role            sessionx.Role
}

// PasswordReset 重置密码链接里面带着 uid 和 token
type PasswordReset struct {
	UID             string
	Token           string
	Password        string
	PasswordConfirm string
}

type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// ProfileUpdate 个人资料里面允许用户自己修改的部分
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	Bio         string
	Location    string
	PhoneNumber string
	Website     string
	LinkedinURL string
	GithubURL   string
}
