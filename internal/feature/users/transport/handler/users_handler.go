// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"places_backend/internal/api"
	"places_backend/internal/feature/users/domain/entity"
	"places_backend/internal/feature/users/transport/http/dto"
	"places_backend/internal/feature/users/usecase"
)

// UsersUsecase はユーザーアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UsersUsecase interface {
	// Signup は指定された情報で新規ユーザーを登録し、JWTトークンを発行します。
	Signup(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// List はすべてのユーザーを取得します。
	List(ctx context.Context) ([]entity.User, error)
}

// UsersHandler はユーザーアカウント操作のHTTPリクエストを処理します。
// UsersUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler はUsersHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUsersUsecaseを注入します。
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// List はユーザー一覧APIエンドポイントを処理します。
// パスワードハッシュを除いたユーザー投影の一覧を返します。
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("fetching users failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Fetching users failed, please try again later.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	out := make([]dto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserRes(&users[i]))
	}
	c.JSON(http.StatusOK, dto.UsersRes{Users: out})
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド、バリデーションエラー時は422を返却
// - メールアドレス重複時は422を返却
// - その他の失敗時は500を返却
// - 成功時はユーザー投影とトークン付きで201を返却
func (h *UsersHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{
			Message: "Invalid inputs passed, please check your data.",
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}
	user, token, err := h.users.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected, email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{
				Message: "This email already exists, please log in instead.",
				Code:    http.StatusUnprocessableEntity,
			})
			return
		}
		slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Signing up failed, please try again later.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{User: dto.NewUserRes(user), Token: token})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド、バリデーションエラー時は422を返却
// - 認証失敗時は401を返却（メール不明とパスワード不一致は区別しない）
// - 認証成功時はユーザー投影とJWTトークン付きで200を返却
func (h *UsersHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{
			Message: "Invalid inputs passed, please check your data.",
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}
	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際の失敗理由を公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{
				Message: "Invalid credentials, could not log you in.",
				Code:    http.StatusUnauthorized,
			})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Logging in failed, please try again later.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		User:    dto.NewUserRes(user),
		Token:   token,
		Message: "Successfully logged in.",
	})
}
