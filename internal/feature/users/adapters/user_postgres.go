// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"places_backend/internal/feature/users/domain/entity"
	"places_backend/internal/feature/users/usecase"
)

// pgUniqueViolation はPostgreSQLのユニーク制約違反のエラーコードです。
const pgUniqueViolation = "23505"

// userPostgres はUserRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
// ユニーク制約がusecase層のチェックとすり抜けた同時リクエストの競合を最終的に防ぎます。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	if err := r.loadPlaceIDs(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	if err := r.loadPlaceIDs(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAll はすべてのユーザーを作成順で取得します。
func (r *userPostgres) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	// 所有place一覧を1クエリで取得してユーザーごとに振り分ける
	type ownership struct {
		ID        uint
		CreatorID uint
	}
	var rows []ownership
	if err := r.db.WithContext(ctx).Table("places").
		Select("id", "creator_id").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	byCreator := make(map[uint][]uint, len(users))
	for _, row := range rows {
		byCreator[row.CreatorID] = append(byCreator[row.CreatorID], row.ID)
	}
	for i := range users {
		ids := byCreator[users[i].ID]
		if ids == nil {
			ids = []uint{}
		}
		users[i].PlaceIDs = ids
	}
	return users, nil
}

// Exists は指定されたIDのユーザーが存在するかを返します。
// placesフィーチャーの作成者チェックで使用されます。
func (r *userPostgres) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// loadPlaceIDs はユーザーが所有するplaceのIDを作成順で取得します。
// placesテーブルのcreator_idがユーザーを逆参照しているため、
// 所有リストとplaceレコードが食い違うことはありません。
func (r *userPostgres) loadPlaceIDs(ctx context.Context, u *entity.User) error {
	ids := []uint{}
	if err := r.db.WithContext(ctx).Table("places").
		Where("creator_id = ?", u.ID).Order("id").Pluck("id", &ids).Error; err != nil {
		return err
	}
	u.PlaceIDs = ids
	return nil
}

// isUniqueViolation はユニーク制約違反かどうかをドライバー横断で判定します。
func isUniqueViolation(err error) bool {
	// GORMが変換したエラー
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// PostgreSQLエラー23505: ユニークキーの重複エントリ
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	// テストで使用するSQLiteドライバーのエラー
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
