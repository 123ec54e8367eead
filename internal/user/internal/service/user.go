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
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
)

const profilePath = "/api/user/profile/me/"

//go:generate mockgen -source=./user.go -package=svcmocks -destination=./mocks/user.mock.go -typed UserService
type UserService interface {
	// Profile 当前登录用户的完整资料
	Profile(ctx context.Context, conn *apiclient.Conn) (domain.User, error)
	// UpdateProfile picture 为 nil 的时候以 JSON 提交，否则以 multipart 提交
	UpdateProfile(ctx context.Context, conn *apiclient.Conn, p domain.ProfileUpdate, picture *apiclient.File) (domain.User, error)
	ChangePassword(ctx context.Context, conn *apiclient.Conn, c domain.PasswordChange) error
	ResendVerification(ctx context.Context, conn *apiclient.Conn) error

	// 下面是管理员使用的

	List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.User, int, error)
	Get(ctx context.Context, conn *apiclient.Conn, id int64) (domain.User, error)
	Update(ctx context.Context, conn *apiclient.Conn, u domain.User) (domain.User, error)
	Delete(ctx context.Context, conn *apiclient.Conn, id int64) error
}

type userService struct{}

func NewUserService() UserService {
	return &userService{}
}

func (s *userService) Profile(ctx context.Context, conn *apiclient.Conn) (domain.User, error) {
	u, err := apiclient.Call[userDTO](ctx, conn, apiclient.Get(profilePath))
	if err != nil {
		return domain.User{}, err
	}
	return u.toDomain(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, conn *apiclient.Conn,
	p domain.ProfileUpdate, picture *apiclient.File) (domain.User, error) {
	fields := map[string]string{
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"bio":          p.Bio,
		"location":     p.Location,
		"phone_number": p.PhoneNumber,
		"website":      p.Website,
		"linkedin_url": p.LinkedinURL,
		"github_url":   p.GithubURL,
	}
	req := apiclient.Patch("/api/user/profile/update-me/")
	if picture != nil {
		req = req.WithForm(fields, *picture)
	} else {
		req = req.WithBody(fields)
	}
	u, err := apiclient.Call[userDTO](ctx, conn, req)
	if err != nil {
		return domain.User{}, err
	}
	return u.toDomain(), nil
}

func (s *userService) ChangePassword(ctx context.Context, conn *apiclient.Conn, c domain.PasswordChange) error {
	return apiclient.Exec(ctx, conn, apiclient.Post("/api/user/change-password/").
		WithBody(map[string]string{
			"current_password":     c.Current,
			"new_password":         c.New,
			"new_password_confirm": c.Confirm,
		}))
}

func (s *userService) ResendVerification(ctx context.Context, conn *apiclient.Conn) error {
	return apiclient.Exec(ctx, conn, apiclient.Post("/api/user/resend-verification-email/"))
}

func (s *userService) List(ctx context.Context, conn *apiclient.Conn, page, limit int) ([]domain.User, int, error) {
	res, err := apiclient.CallPage[userDTO](ctx, conn,
		apiclient.Get("/api/user/").WithQuery(apiclient.PageQuery(page, limit)))
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(res.Results, func(idx int, src userDTO) domain.User {
		return src.toDomain()
	}), res.Count, nil
}

func (s *userService) Get(ctx context.Context, conn *apiclient.Conn, id int64) (domain.User, error) {
	u, err := apiclient.Call[userDTO](ctx, conn, apiclient.Get(userPath(id)))
	if err != nil {
		return domain.User{}, err
	}
	return u.toDomain(), nil
}

func (s *userService) Update(ctx context.Context, conn *apiclient.Conn, u domain.User) (domain.User, error) {
	res, err := apiclient.Call[userDTO](ctx, conn, apiclient.Patch(userPath(u.ID)).
		WithBody(map[string]string{
			"email":      u.Email,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"role":       string(u.Role),
		}))
	if err != nil {
		return domain.User{}, err
	}
	return res.toDomain(), nil
}

func (s *userService) Delete(ctx context.Context, conn *apiclient.Conn, id int64) error {
	return apiclient.Exec(ctx, conn, apiclient.Delete(userPath(id)))
}

func userPath(id int64) string {
	return fmt.Sprintf("/api/user/%d/", id)
}
