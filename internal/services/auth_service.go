package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/models"
	"shop/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID  uint
	Account string
	Role    models.Role
}

// AuthService handles registration, login and token validation.
type AuthService struct {
	users     *UserService
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     NewUserService(userRepo),
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) TokenTTL() time.Duration { return s.tokenTTL }

// Register creates a customer account.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	gender, err := models.ParseGender(req.UserGender)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	user := &models.User{
		UserName:      strings.TrimSpace(req.UserName),
		UserGender:    gender,
		UserBirthDate: req.UserBirthDate,
		UserAddress:   req.UserAddress,
		UserPhone:     req.UserPhone,
		UserAccount:   req.UserAccount,
		UserRole:      models.RoleCustomer,
	}
	if err := s.users.register(ctx, user, req.UserPassword); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an account and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, account, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByAccount(ctx, account)
	if err != nil {
		if isNotFound(err) {
			return "", nil, apperrors.Unauthorized("invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return "", nil, apperrors.Unauthorized("invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.UserID,
		"account": user.UserAccount,
		"role":    string(user.UserRole),
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, user, nil
}

// ValidateToken parses and validates a JWT and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, apperrors.Unauthorized("Token is missing the user id")
	}
	account, _ := mapClaims["account"].(string)
	roleName, _ := mapClaims["role"].(string)
	role, err := models.ParseRole(roleName)
	if err != nil {
		return nil, apperrors.Unauthorized("Token carries an unknown role")
	}

	return &Claims{UserID: uint(userID), Account: account, Role: role}, nil
}

// CurrentUser loads the user a token was issued for.
func (s *AuthService) CurrentUser(ctx context.Context, claims *Claims) (*models.User, error) {
	return s.userRepo.FindByID(ctx, claims.UserID)
}
