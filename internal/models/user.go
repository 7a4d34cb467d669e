package models

import (
	"fmt"
	"time"

	"shop/internal/codegen"

	"gorm.io/gorm"
)

// User is a shop account. The role decides the code prefix.
type User struct {
	UserID        uint   `gorm:"primaryKey"`
	UserCode      string `gorm:"size:10;uniqueIndex;not null"`
	UserName      string `gorm:"size:100;not null"`
	UserGender    Gender `gorm:"size:10;not null"`
	UserBirthDate *Date  `gorm:"type:date"`
	UserAddress   string `gorm:"size:200"`
	UserPhone     string `gorm:"size:11;uniqueIndex;not null"`
	UserAccount   string `gorm:"size:50;uniqueIndex;not null"`
	UserPassword  string `gorm:"size:255;not null"`
	UserRole      Role   `gorm:"size:20;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserCode != "" {
		return nil
	}
	prefix, err := u.UserRole.CodePrefix()
	if err != nil {
		return err
	}
	code, err := codegen.Unique(tx, prefix, &User{}, "user_code")
	if err != nil {
		return err
	}
	u.UserCode = code
	return nil
}

func (r Role) CodePrefix() (string, error) {
	switch r {
	case RoleAdmin:
		return codegen.PrefixAdmin, nil
	case RoleStaff:
		return codegen.PrefixStaff, nil
	case RoleCustomer:
		return codegen.PrefixCustomer, nil
	}
	return "", fmt.Errorf("no code prefix for role %q", string(r))
}

// Roles lists the fixed roles. A role's ID is its 1-based position.
func Roles() []Role {
	return append([]Role(nil), roles...)
}

// RoleByID returns the role with the given 1-based ID.
func RoleByID(id uint) (Role, bool) {
	if id == 0 || id > uint(len(roles)) {
		return "", false
	}
	return roles[id-1], true
}

// RoleByCode matches a role by its code prefix, e.g. "NV".
func RoleByCode(code string) (Role, bool) {
	for _, r := range roles {
		if prefix, _ := r.CodePrefix(); prefix == code {
			return r, true
		}
	}
	return "", false
}
