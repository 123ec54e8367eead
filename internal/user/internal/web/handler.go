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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/pkg/resultx"
	"github.com/ecodeclub/jobboard/internal/pkg/sessionx"
	"github.com/ecodeclub/jobboard/internal/pkg/upload"
	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
	"github.com/ecodeclub/jobboard/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// Handler 登录注册和个人资料
type Handler struct {
	authSvc  service.AuthService
	userSvc  service.UserService
	client   *apiclient.Client
	images   *upload.Validator
	registry *viewstate.Registry
	logger   *elog.Component
}

func NewHandler(authSvc service.AuthService,
	userSvc service.UserService,
	client *apiclient.Client,
	registry *viewstate.Registry) *Handler {
	return &Handler{
		authSvc:  authSvc,
		userSvc:  userSvc,
		client:   client,
		images:   upload.NewImageValidator(upload.DefaultMaxSize),
		registry: registry,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/login", ginx.B[LoginReq](h.Login))
	server.POST("/register", ginx.B[RegisterReq](h.Register))
	server.POST("/forgot-password", ginx.B[ForgotPasswordReq](h.ForgotPassword))
	server.POST("/reset-password", ginx.B[ResetPasswordReq](h.ResetPassword))
	server.POST("/verify-email/:uid/:token", ginx.W(h.VerifyEmail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/logout", ginx.S(h.Logout))
	server.GET("/session", ginx.W(h.Session))
	g := server.Group("/profile")
	g.GET("", ginx.S(h.Profile))
	g.POST("", ginx.BS[EditProfileReq](h.EditProfile))
	g.POST("/password", ginx.BS[ChangePasswordReq](h.ChangePassword))
	g.POST("/resend-verification", ginx.S(h.ResendVerification))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	if req.Email == "" || req.Password == "" {
		return codes.Invalid("Please enter your email and password"), nil
	}
	auth, err := h.authSvc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.startSession(ctx, auth)
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return codes.Invalid("Please fill in all required fields"), nil
	}
	if req.Password != req.PasswordConfirm {
		return codes.Invalid("Passwords do not match"), nil
	}
	role := sessionx.RoleJobSeeker
	if req.Role != "" {
		role = sessionx.Role(req.Role)
	}
	if !role.Valid() {
		return codes.Invalid("Please select a valid role"), nil
	}
	auth, err := h.authSvc.Register(ctx, domain.Registration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Role:            role,
	})
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return h.startSession(ctx, auth)
}

// startSession 把两个 token 和用户写进新的会话
func (h *Handler) startSession(ctx *ginx.Context, auth domain.Auth) (ginx.Result, error) {
	u := auth.User.SessionUser()
	sess, err := session.NewSessionBuilder(ctx, u.ID).
		SetJwtData(sessionx.JwtData(u)).Build()
	if err != nil {
		return systemErrorResult, err
	}
	err = sessionx.NewStore(sess).Init(ctx, auth.Access, auth.Refresh, u, time.Now())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SessionVO{
			User:     newProfile(auth.User),
			Redirect: sessionx.HomePath(u.Role),
		},
	}, nil
}

// Logout 清空 token，顺便清理这个会话的页面状态
func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ssid := sess.Claims().SSID
	if err := sessionx.NewStore(sess).Clear(ctx); err != nil {
		return systemErrorResult, err
	}
	cnt := h.registry.Drop(ssid)
	h.logger.Debug("用户登出", elog.Int64("uid", sess.Claims().Uid), elog.Int("views", cnt))
	return ginx.Result{
		Msg:  "OK",
		Data: RedirectVO{Redirect: middleware.LoginPath},
	}, nil
}

// Session 当前登录的用户，用的是中间件确认过的结果
func (h *Handler) Session(ctx *ginx.Context) (ginx.Result, error) {
	u, ok := sessionx.UserFromGin(ctx.Context)
	if !ok {
		return ginx.Result{Data: RedirectVO{Redirect: middleware.LoginPath}}, nil
	}
	return ginx.Result{
		Data: SessionVO{
			User: Profile{
				ID:            u.ID,
				Email:         u.Email,
				FirstName:     u.FirstName,
				LastName:      u.LastName,
				FullName:      u.FullName(),
				Role:          string(u.Role),
				EmailVerified: u.EmailVerified,
			},
			Redirect: sessionx.HomePath(u.Role),
		},
	}, nil
}

func (h *Handler) ForgotPassword(ctx *ginx.Context, req ForgotPasswordReq) (ginx.Result, error) {
	if req.Email == "" {
		return codes.Invalid("Please enter your email address"), nil
	}
	if err := h.authSvc.RequestPasswordReset(ctx, req.Email); err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Password reset link has been sent to your email address.", nil), nil
}

func (h *Handler) ResetPassword(ctx *ginx.Context, req ResetPasswordReq) (ginx.Result, error) {
	if req.UID == "" || req.Token == "" {
		return codes.Invalid("Invalid password reset link. Please request a new one."), nil
	}
	if req.Password != req.PasswordConfirm {
		return codes.Invalid("Passwords do not match"), nil
	}
	err := h.authSvc.ResetPassword(ctx, domain.PasswordReset{
		UID:             req.UID,
		Token:           req.Token,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Your password has been reset successfully.",
		RedirectVO{Redirect: middleware.LoginPath}), nil
}

func (h *Handler) VerifyEmail(ctx *ginx.Context) (ginx.Result, error) {
	uid, token := ctx.Context.Param("uid"), ctx.Context.Param("token")
	if uid == "" || token == "" {
		return codes.Invalid("Invalid verification link. Please request a new one."), nil
	}
	if err := h.authSvc.VerifyEmail(ctx, uid, token); err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Your email has been verified successfully.",
		RedirectVO{Redirect: middleware.LoginPath}), nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sessionx.Conn(h.client, sess))
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) EditProfile(ctx *ginx.Context, req EditProfileReq, sess session.Session) (ginx.Result, error) {
	var picture *apiclient.File
	if fh, err := ctx.FormFile("profilePicture"); err == nil {
		f, err := h.images.Validate("profile_picture", fh)
		if err != nil {
			return codes.Handle(ctx, err)
		}
		picture = &f
	}
	store := sessionx.NewStore(sess)
	u, err := h.userSvc.UpdateProfile(ctx, h.client.Bind(store), domain.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		Website:     req.Website,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
	}, picture)
	if err != nil {
		return codes.Handle(ctx, err)
	}
	// 名字可能变了
	if err = store.SaveUser(ctx, u.SessionUser()); err != nil {
		h.logger.Error("更新会话中的用户失败", elog.FieldErr(err))
	}
	return resultx.OK("Your profile has been updated successfully.", newProfile(u)), nil
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return codes.Invalid("Please fill in all required fields"), nil
	}
	if req.NewPassword != req.ConfirmPassword {
		return codes.Invalid("Passwords do not match"), nil
	}
	err := h.userSvc.ChangePassword(ctx, sessionx.Conn(h.client, sess), domain.PasswordChange{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
		Confirm: req.ConfirmPassword,
	})
	if err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Your password has been updated successfully.", nil), nil
}

func (h *Handler) ResendVerification(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.userSvc.ResendVerification(ctx, sessionx.Conn(h.client, sess)); err != nil {
		return codes.Handle(ctx, err)
	}
	return resultx.OK("Verification email has been sent. Please check your email.", nil), nil
}
