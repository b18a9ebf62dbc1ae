// Package dto defines data transfer objects for the places feature's HTTP transport layer.
package dto

// Location is the (latitude, longitude) pair carried in place payloads.
// Zero is a valid coordinate, so the fields carry no "required" tag.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreatePlaceReq represents the request body for the POST /places endpoint.
type CreatePlaceReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Creator     uint     `json:"creator" binding:"required"`
	Location    Location `json:"location"`
}
