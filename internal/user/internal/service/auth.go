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

	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
)

//go:generate mockgen -source=./auth.go -package=svcmocks -destination=./mocks/auth.mock.go -typed AuthService
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Auth, error)
	Register(ctx context.Context, r domain.Registration) (domain.Auth, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, r domain.PasswordReset) error
	VerifyEmail(ctx context.Context, uid, token string) error
}

// authService 这些接口都不需要登录，401 也不会触发刷新
type authService struct {
	client *apiclient.Client
}

func NewAuthService(client *apiclient.Client) AuthService {
	return &authService{client: client}
}

func (s *authService) Login(ctx context.Context, email, password string) (domain.Auth, error) {
	res, err := apiclient.Call[authDTO](ctx, s.client.Anonymous(),
		apiclient.Post(apiclient.LoginPath).
			WithBody(map[string]string{
				"email":    email,
				"password": password,
			}).Anonymous())
	if err != nil {
		return domain.Auth{}, err
	}
	return res.toDomain(), nil
}

func (s *authService) Register(ctx context.Context, r domain.Registration) (domain.Auth, error) {
	res, err := apiclient.Call[authDTO](ctx, s.client.Anonymous(),
		apiclient.Post("/api/user/register/").
			WithBody(map[string]string{
				"first_name":       r.FirstName,
				"last_name":        r.LastName,
				"email":            r.Email,
				"password":         r.Password,
				"password_confirm": r.PasswordConfirm,
				"role":             string(r.Role),
			}).Anonymous())
	if err != nil {
		return domain.Auth{}, err
	}
	return res.toDomain(), nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return apiclient.Exec(ctx, s.client.Anonymous(),
		apiclient.Post("/api/user/request-password-reset/").
			WithBody(map[string]string{"email": email}).Anonymous())
}

func (s *authService) ResetPassword(ctx context.Context, r domain.PasswordReset) error {
	return apiclient.Exec(ctx, s.client.Anonymous(),
		apiclient.Post("/api/user/reset-password/").
			WithBody(map[string]string{
				"token":            r.Token,
				"uid":              r.UID,
				"password":         r.Password,
				"password_confirm": r.PasswordConfirm,
			}).Anonymous())
}

func (s *authService) VerifyEmail(ctx context.Context, uid, token string) error {
	return apiclient.Exec(ctx, s.client.Anonymous(),
		apiclient.Post("/api/user/verify-email/").
			WithBody(map[string]string{
				"token": token,
				"uid":   uid,
			}).Anonymous())
}
