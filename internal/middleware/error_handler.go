package middleware

import (
	"errors"
	"log"

	"shop/internal/apperrors"
	"shop/internal/response"

	"github.com/gofiber/fiber/v2"
)

const (
	MessageValidationFailed = "Validation failed"
	MessageAuthFailed       = "Authentication failed"
	MessageAccessDenied     = "Access denied"
	MessageUnexpected       = "An unexpected error occurred"
)

// ErrorHandler turns every error returned by a handler, including recovered
// panics, into a response envelope. Install it through fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		notFound     *apperrors.NotFoundError
		badRequest   *apperrors.BadRequestError
		validation   *apperrors.ValidationError
		unauthorized *apperrors.UnauthorizedError
		forbidden    *apperrors.ForbiddenError
		fiberErr     *fiber.Error
	)

	switch {
	case errors.As(err, &notFound):
		return response.Send(c, fiber.StatusNotFound, response.Error(fiber.StatusNotFound, notFound.Error()))
	case errors.As(err, &validation):
		return response.Send(c, fiber.StatusBadRequest,
			response.ErrorDetail(fiber.StatusBadRequest, MessageValidationFailed, validation.Error()))
	case errors.As(err, &badRequest):
		return response.Send(c, fiber.StatusBadRequest, response.Error(fiber.StatusBadRequest, badRequest.Error()))
	case errors.As(err, &unauthorized):
		return response.Send(c, fiber.StatusUnauthorized,
			response.ErrorDetail(fiber.StatusUnauthorized, MessageAuthFailed, unauthorized.Error()))
	case errors.As(err, &forbidden):
		return response.Send(c, fiber.StatusForbidden,
			response.ErrorDetail(fiber.StatusForbidden, MessageAccessDenied, forbidden.Error()))
	case errors.As(err, &fiberErr):
		return response.Send(c, fiberErr.Code, response.Error(fiberErr.Code, fiberErr.Message))
	}

	log.Printf("[%s] %s %s failed: %v", c.GetRespHeader(fiber.HeaderXRequestID), c.Method(), c.Path(), err)
	return response.Send(c, fiber.StatusInternalServerError,
		response.ErrorDetail(fiber.StatusInternalServerError, MessageUnexpected, err.Error()))
}
