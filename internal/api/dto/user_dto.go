package dto

import (
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"
)

// RegisterUserDTO used for POST /api/users
type RegisterUserDTO struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (d RegisterUserDTO) ToInput() service.RegisterInput {
	return service.RegisterInput{
		Email:     d.Email,
		Username:  d.Username,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Password:  d.Password,
	}
}

// UserResponse DTO for responses; IsSubscribed is relative to the
// requesting user and always false for anonymous requests.
type UserResponse struct {
	Email        string `json:"email"`
	ID           string `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func FromUser(u models.User, isSubscribed bool) UserResponse {
	return UserResponse{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
