// Package adapters はplacesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"places_backend/internal/feature/places/domain/entity"
	"places_backend/internal/feature/places/usecase"
)

// placePostgres はPlaceRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
//
// ユーザーの所有リストはplacesテーブルのcreator_idから導出されるため、
// placeの挿入・削除がそのまま所有リストへの追加・除去になります。
// 同一ユーザーへの同時createはそれぞれ独立した行の挿入であり、
// どちらの追加も失われません。
type placePostgres struct {
	db *gorm.DB
}

// placePostgresがPlaceRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PlaceRepository = (*placePostgres)(nil)

// NewPlacePostgres は指定されたgorm.DB接続でplacePostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewPlacePostgres(db *gorm.DB) *placePostgres {
	return &placePostgres{db: db}
}

// FindByID はIDでplaceを取得します。
// placeが存在しない場合、usecase.ErrPlaceNotFoundを返します。
func (r *placePostgres) FindByID(ctx context.Context, id uint) (*entity.Place, error) {
	var p entity.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlaceNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByCreator は指定されたユーザーが作成したplaceを作成順で取得します。
func (r *placePostgres) FindByCreator(ctx context.Context, creatorID uint) ([]entity.Place, error) {
	places := []entity.Place{}
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).Order("id").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// Create はplaceを保存し、作成者の所有リストに結び付けます。
// 作成者の存在確認と挿入を1トランザクションで行うため、
// 所有リストだけが欠けた中途半端な状態は発生しません。
func (r *placePostgres) Create(ctx context.Context, p *entity.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("users").Where("id = ?", p.CreatorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return usecase.ErrUserNotFound
		}
		return tx.Create(p).Error
	})
}

// Update はtitleとdescriptionのみを上書きします。
// Selectで更新対象カラムを固定し、address・location・creatorの不変性を保証します。
func (r *placePostgres) Update(ctx context.Context, p *entity.Place) error {
	res := r.db.WithContext(ctx).Model(&entity.Place{}).
		Where("id = ?", p.ID).
		Select("title", "description").
		Updates(entity.Place{Title: p.Title, Description: p.Description})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPlaceNotFound
	}
	return nil
}

// Delete はplaceを削除します。行の削除がそのまま作成者の所有リストからの
// 除去になるため、両者は常に同時に成立します。
// placeが存在しない場合、usecase.ErrPlaceNotFoundを返します。
func (r *placePostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p entity.Place
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrPlaceNotFound
			}
			return err
		}
		return tx.Delete(&p).Error
	})
}
