package dto

import "shop/internal/models"

// RegisterRequest creates a customer account.
type RegisterRequest struct {
	UserName      string       `json:"userName" validate:"required,max=100,personname"`
	UserGender    string       `json:"userGender" validate:"required,gender"`
	UserBirthDate *models.Date `json:"userBirthDate" validate:"omitempty,past"`
	UserAddress   string       `json:"userAddress" validate:"max=200"`
	UserPhone     string       `json:"userPhone" validate:"required,phone"`
	UserAccount   string       `json:"userAccount" validate:"required,min=3,max=50"`
	UserPassword  string       `json:"userPassword" validate:"required,min=6"`
}

type LoginRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}
