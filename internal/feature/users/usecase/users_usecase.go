// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"places_backend/internal/feature/users/domain/entity"
)

// defaultUserImage は新規ユーザーに割り当てるプレースホルダー画像のURLです。
// 画像アップロード機能は対象外のため、固定URLを使用します。
const defaultUserImage = "https://live.staticflickr.com/7631/26849088292_36fc52ee90_b.jpg"

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// Compareが常に呼ばれることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll はすべてのユーザーを作成順で取得します。
	FindAll(ctx context.Context) ([]entity.User, error)
}

// TokenIssuer はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// PasswordHasher はパスワードのハッシュ化と検証のインターフェースを定義します。
type PasswordHasher interface {
	// Hash は平文パスワードのソルト付きダイジェストを返します。
	Hash(password string) (string, error)
	// Compare は平文パスワードをダイジェストと照合します。一致時はnilを返します。
	Compare(hashed, password string) error
}

// usersUsecase はユーザーアカウントのビジネスロジックを実装します。
type usersUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewUsersUsecase はusersUsecaseの新しいインスタンスを生成します。
func NewUsersUsecase(users UserRepository, tokens TokenIssuer, hasher PasswordHasher) *usersUsecase {
	return &usersUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、JWTトークンを発行します。
// メールアドレスが既に使用されている場合、ErrEmailAlreadyExistsを返します。
// 永続化前のステップが失敗した場合、ユーザーは作成されません。
func (u *usersUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	// メールアドレスの重複を事前チェック
	// 同時リクエストの競合はDBのユニーク制約が最終的に防ぐ（adaptersを参照）
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Image:    defaultUserImage,
		PlaceIDs: []uint{},
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ比較を実行します。
func (u *usersUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := u.hasher.Compare(passwordHash, password)

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return user, token, nil
}

// List はすべてのユーザーを取得します。
// パスワードハッシュの除外はトランスポート層のDTOが行います。
func (u *usersUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}
