// Package handler はplacesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"places_backend/internal/api"
	"places_backend/internal/feature/places/domain/entity"
	"places_backend/internal/feature/places/transport/http/dto"
	"places_backend/internal/feature/places/usecase"
)

// PlacesUsecase はplace所有権操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PlacesUsecase interface {
	GetByID(ctx context.Context, id uint) (*entity.Place, error)
	GetByCreator(ctx context.Context, creatorID uint) ([]entity.Place, error)
	Create(ctx context.Context, title, description, address string, lat, lng float64, creatorID uint) (*entity.Place, error)
	Update(ctx context.Context, id uint, title, description string) (*entity.Place, error)
	Delete(ctx context.Context, id uint) error
}

// PlacesHandler はplace操作のHTTPリクエストを処理します。
type PlacesHandler struct {
	places PlacesUsecase
}

// NewPlacesHandler はPlacesHandlerの新しいインスタンスを生成します。
func NewPlacesHandler(places PlacesUsecase) *PlacesHandler {
	return &PlacesHandler{places: places}
}

// parseID はパスパラメータのIDを数値に変換します。
// 数値でないIDに一致するレコードは存在しないため、呼び出し側は404として扱います。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetByID はplace取得APIエンドポイントを処理します。
// GET /places/:id
func (h *PlacesHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Message: "Could not find place for the provided id.",
			Code:    http.StatusNotFound,
		})
		return
	}
	place, err := h.places.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{
				Message: "Could not find place for the provided id.",
				Code:    http.StatusNotFound,
			})
			return
		}
		slog.Error("fetching place failed", "error", err, "place_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Something went wrong, could not find a place.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, dto.PlaceEnvelope{Place: dto.NewPlaceRes(place)})
}

// ListByUser はユーザーが作成したplace一覧APIエンドポイントを処理します。
// GET /users/:id/places
func (h *PlacesHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Message: "Could not find user for the provided id.",
			Code:    http.StatusNotFound,
		})
		return
	}
	places, err := h.places.GetByCreator(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{
				Message: "Could not find user for the provided id.",
				Code:    http.StatusNotFound,
			})
			return
		}
		slog.Error("fetching user places failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Fetching places failed, please try again later.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	out := make([]dto.PlaceRes, 0, len(places))
	for i := range places {
		out = append(out, dto.NewPlaceRes(&places[i]))
	}
	c.JSON(http.StatusOK, dto.PlacesEnvelope{Places: out})
}

// Create はplace作成APIエンドポイントを処理します。
// POST /places（要認証）
// - バリデーションエラー時は422を返却
// - 作成者が存在しない場合は404を返却
// - 成功時は201を返却
func (h *PlacesHandler) Create(c *gin.Context) {
	var req dto.CreatePlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create place validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{
			Message: "Invalid inputs passed, please check your data.",
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}
	place, err := h.places.Create(c.Request.Context(),
		req.Title, req.Description, req.Address, req.Location.Lat, req.Location.Lng, req.Creator)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{
				Message: "Could not find user for the provided id.",
				Code:    http.StatusNotFound,
			})
			return
		}
		slog.Error("creating place failed", "error", err, "creator_id", req.Creator)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Creating place failed, please try again.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	slog.Info("place created", "place_id", place.ID, "creator_id", place.CreatorID)
	c.JSON(http.StatusCreated, dto.PlaceEnvelope{Place: dto.NewPlaceRes(place)})
}

// Update はplace更新APIエンドポイントを処理します。
// PATCH /places/:id（要認証）
// titleとdescription以外のフィールドは変更されません。
func (h *PlacesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Message: "Could not find place for the provided id.",
			Code:    http.StatusNotFound,
		})
		return
	}
	var req dto.UpdatePlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update place validation failed", "error", err, "place_id", id)
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{
			Message: "Invalid inputs passed, please check your data.",
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}
	place, err := h.places.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{
				Message: "Could not find place for the provided id.",
				Code:    http.StatusNotFound,
			})
			return
		}
		slog.Error("updating place failed", "error", err, "place_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Something went wrong, could not update place.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, dto.PlaceEnvelope{Place: dto.NewPlaceRes(place)})
}

// Delete はplace削除APIエンドポイントを処理します。
// DELETE /places/:id（要認証）
// 削除と作成者の所有リストからの除去は1トランザクションで行われます。
func (h *PlacesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Message: "Could not find place for this id.",
			Code:    http.StatusNotFound,
		})
		return
	}
	if err := h.places.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{
				Message: "Could not find place for this id.",
				Code:    http.StatusNotFound,
			})
			return
		}
		slog.Error("deleting place failed", "error", err, "place_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: "Something went wrong, could not delete place.",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	slog.Info("place deleted", "place_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Deleted place."})
}
