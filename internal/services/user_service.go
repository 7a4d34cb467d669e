package services

import (
	"context"
	"fmt"
	"strings"

	"shop/internal/apperrors"
	"shop/internal/dto"
	"shop/internal/models"
	"shop/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByAccount(ctx context.Context, account string) (*models.User, error) {
	return s.repo.FindByAccount(ctx, account)
}

func (s *UserService) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	return s.repo.ExistsByAccount(ctx, account)
}

func (s *UserService) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return s.repo.ExistsByPhone(ctx, phone)
}

// CreateAs creates an account on behalf of actor. Only admins may create
// admin accounts.
func (s *UserService) CreateAs(ctx context.Context, actor models.Role, req dto.CreateUserRequest) (*models.User, error) {
	role, err := models.ParseRole(req.UserRole)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	if !canManage(actor, role) {
		return nil, errAdminGrant
	}
	return s.Create(ctx, req)
}

// Create stores a new account without checking who asks for it. The seeder
// and registration use it directly.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	gender, err := models.ParseGender(req.UserGender)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	role, err := models.ParseRole(req.UserRole)
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
		UserRole:      role,
	}
	if err := s.register(ctx, user, req.UserPassword); err != nil {
		return nil, err
	}
	return user, nil
}

// register checks account and phone uniqueness, hashes the password and
// stores the user.
func (s *UserService) register(ctx context.Context, user *models.User, password string) error {
	if err := s.ensureUnique(ctx, user.UserAccount, user.UserPhone, 0, true); err != nil {
		return err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.UserPassword = hashed
	return s.repo.Create(ctx, user)
}

// Update edits an account on behalf of actor. Admin accounts and the Admin
// role are reserved to admins.
func (s *UserService) Update(ctx context.Context, actor models.Role, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, user.UserRole) {
		return nil, apperrors.Forbidden("Only an admin may edit an admin account")
	}
	gender, err := models.ParseGender(req.UserGender)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	role, err := models.ParseRole(req.UserRole)
	if err != nil {
		return nil, apperrors.BadRequest("%s", err.Error())
	}
	if !canManage(actor, role) {
		return nil, errAdminGrant
	}
	if err := s.ensureUnique(ctx, req.UserAccount, req.UserPhone, id, req.UserPhone != user.UserPhone); err != nil {
		return nil, err
	}

	user.UserName = strings.TrimSpace(req.UserName)
	user.UserGender = gender
	user.UserBirthDate = req.UserBirthDate
	user.UserAddress = req.UserAddress
	user.UserPhone = req.UserPhone
	user.UserAccount = req.UserAccount
	user.UserRole = role
	if req.UserPassword != "" {
		hashed, err := hashPassword(req.UserPassword)
		if err != nil {
			return nil, err
		}
		user.UserPassword = hashed
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user who has never placed an order.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	orders, err := s.repo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if orders > 0 {
		return apperrors.BadRequest("Cannot delete user who has placed orders")
	}
	return s.repo.Delete(ctx, id)
}

// ensureUnique rejects an account already used by a user other than selfID
// and, when checkPhone is set, a phone number that is already taken.
func (s *UserService) ensureUnique(ctx context.Context, account, phone string, selfID uint, checkPhone bool) error {
	if existing, err := s.repo.FindByAccount(ctx, account); err == nil {
		if existing.UserID != selfID {
			return apperrors.BadRequest("Account already exists: %s", account)
		}
	} else if !isNotFound(err) {
		return err
	}

	if !checkPhone {
		return nil
	}
	taken, err := s.repo.ExistsByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.BadRequest("Phone number already exists: %s", phone)
	}
	return nil
}

var errAdminGrant = apperrors.Forbidden("Only an admin may grant the Admin role")

// canManage reports whether actor may create or edit an account with role.
func canManage(actor, role models.Role) bool {
	return actor == models.RoleAdmin || role != models.RoleAdmin
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
