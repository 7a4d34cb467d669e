// Package codegen issues the human-readable entity codes such as TH12345678.
package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"gorm.io/gorm"
)

const (
	PrefixBrand    = "TH"
	PrefixProduct  = "SP"
	PrefixOrder    = "DH"
	PrefixAdmin    = "AD"
	PrefixStaff    = "NV"
	PrefixCustomer = "KH"

	digits      = 8
	maxAttempts = 20
)

var upperBound = big.NewInt(100_000_000)

// Generate returns prefix followed by eight random digits.
func Generate(prefix string) (string, error) {
	n, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return "", fmt.Errorf("failed to read random digits: %w", err)
	}
	return fmt.Sprintf("%s%0*d", prefix, digits, n.Int64()), nil
}

// Unique generates codes until one is not present in column of model's table.
// tx may be a transaction; the lookup runs on the same connection.
func Unique(tx *gorm.DB, prefix string, model any, column string) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code, err := Generate(prefix)
		if err != nil {
			return "", err
		}
		var count int64
		err = tx.Session(&gorm.Session{NewDB: true}).
			Model(model).
			Where(column+" = ?", code).
			Count(&count).Error
		if err != nil {
			return "", fmt.Errorf("failed to check %s uniqueness: %w", column, err)
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique %s code after %d attempts", prefix, maxAttempts)
}
