package dto

import "places_backend/internal/feature/users/domain/entity"

// UserRes is the outbound projection of a user.
// The password hash is deliberately absent.
type UserRes struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image"`
	Places []uint `json:"places"`
}

// UsersRes wraps the user listing response.
type UsersRes struct {
	Users []UserRes `json:"users"`
}

// AuthRes is the response for successful signup and login.
type AuthRes struct {
	User    UserRes `json:"user"`
	Token   string  `json:"token"`
	Message string  `json:"message,omitempty"`
}

// NewUserRes converts a user entity into its outbound projection.
func NewUserRes(u *entity.User) UserRes {
	places := u.PlaceIDs
	if places == nil {
		places = []uint{}
	}
	return UserRes{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Places: places,
	}
}
