package services

import (
	"errors"

	"shop/internal/apperrors"
)

func isNotFound(err error) bool {
	var nf *apperrors.NotFoundError
	return errors.As(err, &nf)
}
