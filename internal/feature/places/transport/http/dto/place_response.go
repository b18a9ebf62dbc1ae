package dto

import "places_backend/internal/feature/places/domain/entity"

// PlaceRes is the outbound projection of a place.
type PlaceRes struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Location    Location `json:"location"`
	Image       string   `json:"image"`
	Creator     uint     `json:"creator"`
}

// PlaceEnvelope wraps a single place response.
type PlaceEnvelope struct {
	Place PlaceRes `json:"place"`
}

// PlacesEnvelope wraps a place listing response.
type PlacesEnvelope struct {
	Places []PlaceRes `json:"places"`
}

// NewPlaceRes converts a place entity into its outbound projection.
func NewPlaceRes(p *entity.Place) PlaceRes {
	return PlaceRes{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    Location{Lat: p.Lat, Lng: p.Lng},
		Image:       p.Image,
		Creator:     p.CreatorID,
	}
}
