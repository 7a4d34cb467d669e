package dto

import (
	"time"

	"shop/internal/models"
)

type CreateUserRequest struct {
	UserName      string       `json:"userName" validate:"required,max=100,personname"`
	UserGender    string       `json:"userGender" validate:"required,gender"`
	UserBirthDate *models.Date `json:"userBirthDate" validate:"omitempty,past"`
	UserAddress   string       `json:"userAddress" validate:"max=200"`
	UserPhone     string       `json:"userPhone" validate:"required,phone"`
	UserAccount   string       `json:"userAccount" validate:"required,min=3,max=50"`
	UserPassword  string       `json:"userPassword" validate:"required,min=6"`
	UserRole      string       `json:"userRole" validate:"required,role"`
}

// UpdateUserRequest keeps the current password when UserPassword is empty.
type UpdateUserRequest struct {
	UserName      string       `json:"userName" validate:"required,max=100,personname"`
	UserGender    string       `json:"userGender" validate:"required,gender"`
	UserBirthDate *models.Date `json:"userBirthDate" validate:"omitempty,past"`
	UserAddress   string       `json:"userAddress" validate:"max=200"`
	UserPhone     string       `json:"userPhone" validate:"required,phone"`
	UserAccount   string       `json:"userAccount" validate:"required,min=3,max=50"`
	UserPassword  string       `json:"userPassword" validate:"omitempty,min=6"`
	UserRole      string       `json:"userRole" validate:"required,role"`
}

type UserResponse struct {
	UserID        uint         `json:"userId"`
	UserCode      string       `json:"userCode"`
	UserName      string       `json:"userName"`
	UserGender    string       `json:"userGender"`
	UserBirthDate *models.Date `json:"userBirthDate,omitempty"`
	UserAddress   string       `json:"userAddress,omitempty"`
	UserPhone     string       `json:"userPhone"`
	UserAccount   string       `json:"userAccount"`
	UserRole      string       `json:"userRole"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		UserCode:      u.UserCode,
		UserName:      u.UserName,
		UserGender:    u.UserGender.DisplayName(),
		UserBirthDate: u.UserBirthDate,
		UserAddress:   u.UserAddress,
		UserPhone:     u.UserPhone,
		UserAccount:   u.UserAccount,
		UserRole:      u.UserRole.DisplayName(),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// ExistsResponse answers the account and phone availability checks.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
