package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"places_backend/internal/feature/places/domain/entity"
	"places_backend/internal/feature/places/usecase"
	userentity "places_backend/internal/feature/users/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create User and Place tables
	err = db.AutoMigrate(&userentity.User{}, &entity.Place{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createTestUser inserts a user row and returns it.
func createTestUser(t *testing.T, db *gorm.DB, email string) *userentity.User {
	t.Helper()

	u := &userentity.User{Name: "Ana", Email: email, Password: "hash"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestPlacePostgres_Create(t *testing.T) {
	t.Run("successful creation links owner", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)
		ana := createTestUser(t, db, "ana@x.com")

		place := &entity.Place{
			Title:       "Tower",
			Description: "Tall building",
			Address:     "20 W 34th St.",
			Lat:         40.7484405,
			Lng:         -73.9878531,
			CreatorID:   ana.ID,
		}

		err := repo.Create(context.Background(), place)

		require.NoError(t, err)
		assert.NotZero(t, place.ID, "ID is not set")

		// 所有リストに反映されている
		owned, err := repo.FindByCreator(context.Background(), ana.ID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, place.ID, owned[0].ID)
	})

	t.Run("unknown creator", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)

		place := &entity.Place{
			Title:       "Tower",
			Description: "d",
			Address:     "a",
			CreatorID:   999,
		}

		err := repo.Create(context.Background(), place)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
		assert.Zero(t, place.ID, "place must not be persisted")
	})
}

func TestPlacePostgres_FindByID(t *testing.T) {
	t.Run("existing place", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)
		ana := createTestUser(t, db, "ana@x.com")

		created := &entity.Place{Title: "Tower", Description: "d", Address: "a", CreatorID: ana.ID}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "Tower", found.Title)
		assert.Equal(t, ana.ID, found.CreatorID)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrPlaceNotFound)
	})
}

func TestPlacePostgres_FindByCreator(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlacePostgres(db)
	ana := createTestUser(t, db, "ana@x.com")
	bob := createTestUser(t, db, "bob@x.com")

	p1 := &entity.Place{Title: "Tower", Description: "d", Address: "a", CreatorID: ana.ID}
	p2 := &entity.Place{Title: "Bridge", Description: "d", Address: "a", CreatorID: ana.ID}
	other := &entity.Place{Title: "Park", Description: "d", Address: "a", CreatorID: bob.ID}
	require.NoError(t, repo.Create(context.Background(), p1))
	require.NoError(t, repo.Create(context.Background(), other))
	require.NoError(t, repo.Create(context.Background(), p2))

	owned, err := repo.FindByCreator(context.Background(), ana.ID)

	require.NoError(t, err)
	require.Len(t, owned, 2)
	// 作成順（ID順）で返る
	assert.Equal(t, p1.ID, owned[0].ID)
	assert.Equal(t, p2.ID, owned[1].ID)

	empty, err := repo.FindByCreator(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPlacePostgres_Update(t *testing.T) {
	t.Run("only title and description change", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)
		ana := createTestUser(t, db, "ana@x.com")

		created := &entity.Place{
			Title:       "Old title",
			Description: "Old description",
			Address:     "20 W 34th St.",
			Lat:         40.7484405,
			Lng:         -73.9878531,
			CreatorID:   ana.ID,
		}
		require.NoError(t, repo.Create(context.Background(), created))

		// 不変フィールドの変更を試みても無視される
		err := repo.Update(context.Background(), &entity.Place{
			ID:          created.ID,
			Title:       "New title",
			Description: "New description",
			Address:     "tampered address",
			Lat:         0,
			Lng:         0,
			CreatorID:   999,
		})
		require.NoError(t, err)

		stored, err := repo.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New title", stored.Title)
		assert.Equal(t, "New description", stored.Description)
		assert.Equal(t, "20 W 34th St.", stored.Address)
		assert.Equal(t, 40.7484405, stored.Lat)
		assert.Equal(t, -73.9878531, stored.Lng)
		assert.Equal(t, ana.ID, stored.CreatorID)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)

		err := repo.Update(context.Background(), &entity.Place{ID: 999, Title: "x", Description: "y"})

		assert.ErrorIs(t, err, usecase.ErrPlaceNotFound)
	})
}

func TestPlacePostgres_Delete(t *testing.T) {
	t.Run("delete detaches owner", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)
		ana := createTestUser(t, db, "ana@x.com")

		created := &entity.Place{Title: "Tower", Description: "d", Address: "a", CreatorID: ana.ID}
		require.NoError(t, repo.Create(context.Background(), created))

		err := repo.Delete(context.Background(), created.ID)
		require.NoError(t, err)

		_, err = repo.FindByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, usecase.ErrPlaceNotFound)

		owned, err := repo.FindByCreator(context.Background(), ana.ID)
		require.NoError(t, err)
		assert.Empty(t, owned, "owner list no longer references the place")
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPlacePostgres(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrPlaceNotFound)
	})
}

// TestPlacePostgres_OwnershipLifecycle はcreate→所有確認→delete→空リストの一連の流れを検証します。
func TestPlacePostgres_OwnershipLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlacePostgres(db)
	ana := createTestUser(t, db, "ana@x.com")

	place := &entity.Place{Title: "Tower", Description: "d", Address: "a", CreatorID: ana.ID}
	require.NoError(t, repo.Create(context.Background(), place))

	// placeが存在する間、所有リストは必ずそのIDを含む
	ids := []uint{}
	require.NoError(t, db.Table("places").Where("creator_id = ?", ana.ID).Order("id").Pluck("id", &ids).Error)
	assert.Equal(t, []uint{place.ID}, ids)

	require.NoError(t, repo.Delete(context.Background(), place.ID))

	// 削除後、所有リストからも消えている
	ids = []uint{}
	require.NoError(t, db.Table("places").Where("creator_id = ?", ana.ID).Order("id").Pluck("id", &ids).Error)
	assert.Empty(t, ids)
}
