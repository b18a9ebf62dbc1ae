// Package usecase はplacesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"places_backend/internal/feature/places/domain/entity"
)

// defaultPlaceImage は新規placeに割り当てるプレースホルダー画像のURLです。
// 画像アップロード機能は対象外のため、固定URLを使用します。
const defaultPlaceImage = "https://upload.wikimedia.org/wikipedia/commons/thumb/1/10/Empire_State_Building_%28aerial_view%29.jpg/400px-Empire_State_Building_%28aerial_view%29.jpg"

// PlaceRepository はplaceエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PlaceRepository interface {
	// FindByID は指定されたIDに一致するplaceを取得します。
	// placeが存在しない場合、ErrPlaceNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Place, error)

	// FindByCreator は指定されたユーザーが作成したplaceを作成順で取得します。
	FindByCreator(ctx context.Context, creatorID uint) ([]entity.Place, error)

	// Create はplaceの保存と作成者の所有リストへの追加を1トランザクションで行います。
	// 作成者が存在しない場合、ErrUserNotFoundを返します。
	Create(ctx context.Context, place *entity.Place) error

	// Update はtitleとdescriptionのみを上書きします。
	// placeが存在しない場合、ErrPlaceNotFoundを返します。
	Update(ctx context.Context, place *entity.Place) error

	// Delete はplaceの削除と作成者の所有リストからの除去を1トランザクションで行います。
	// placeが存在しない場合、ErrPlaceNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// UserChecker は作成者の存在確認のインターフェースを定義します。
// usersフィーチャーのリポジトリが実装します。
type UserChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// placesUsecase はplace所有権のビジネスロジックを実装します。
type placesUsecase struct {
	places PlaceRepository
	users  UserChecker
}

// NewPlacesUsecase はplacesUsecaseの新しいインスタンスを生成します。
func NewPlacesUsecase(places PlaceRepository, users UserChecker) *placesUsecase {
	return &placesUsecase{
		places: places,
		users:  users,
	}
}

// GetByID は指定されたIDのplaceを取得します。
func (u *placesUsecase) GetByID(ctx context.Context, id uint) (*entity.Place, error) {
	return u.places.FindByID(ctx, id)
}

// GetByCreator は指定されたユーザーが作成したplaceの一覧を作成順で取得します。
// ユーザー自体が存在しない場合、ErrUserNotFoundを返します。
func (u *placesUsecase) GetByCreator(ctx context.Context, creatorID uint) ([]entity.Place, error) {
	exists, err := u.users.Exists(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return u.places.FindByCreator(ctx, creatorID)
}

// Create は新しいplaceを作成し、作成者の所有リストに結び付けます。
// 作成者の存在を確認してから永続化します。保存と所有リストへの追加は
// リポジトリ側で1トランザクションとして実行されます。
func (u *placesUsecase) Create(ctx context.Context, title, description, address string, lat, lng float64, creatorID uint) (*entity.Place, error) {
	exists, err := u.users.Exists(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check creator: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	place := &entity.Place{
		Title:       title,
		Description: description,
		Address:     address,
		Lat:         lat,
		Lng:         lng,
		Image:       defaultPlaceImage,
		CreatorID:   creatorID,
	}
	if err := u.places.Create(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// Update は指定されたplaceのtitleとdescriptionを上書きします。
// address、location、creatorは作成後に変更できません。
func (u *placesUsecase) Update(ctx context.Context, id uint, title, description string) (*entity.Place, error) {
	place, err := u.places.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	place.Title = title
	place.Description = description
	if err := u.places.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// Delete は指定されたplaceを削除し、作成者の所有リストから除去します。
func (u *placesUsecase) Delete(ctx context.Context, id uint) error {
	return u.places.Delete(ctx, id)
}
