// Package response holds the envelope every endpoint answers with.
package response

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
)

const MessageSuccess = "Success"

// Envelope is the uniform body of every API response. Data and Error are
// omitted from the JSON output when absent.
type Envelope struct {
	Status  int    `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
	Data    any    `json:"data,omitempty" yaml:"data,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func Success(data any) Envelope {
	return SuccessMessage(MessageSuccess, data)
}

func SuccessMessage(message string, data any) Envelope {
	return Envelope{Status: fiber.StatusOK, Message: message, Data: normalize(data)}
}

// Error builds a failure envelope whose message doubles as the error detail.
func Error(status int, message string) Envelope {
	return Envelope{Status: status, Message: message, Error: message}
}

func ErrorDetail(status int, message, detail string) Envelope {
	return Envelope{Status: status, Message: message, Error: detail}
}

// Send writes env with the given transport status.
func Send(c *fiber.Ctx, httpStatus int, env Envelope) error {
	return c.Status(httpStatus).JSON(env)
}

func OK(c *fiber.Ctx, data any) error {
	return Send(c, fiber.StatusOK, Success(data))
}

func Created(c *fiber.Ctx, message string, data any) error {
	return Send(c, fiber.StatusCreated, SuccessMessage(message, data))
}

// normalize turns typed nils into an untyped nil so omitempty drops them.
func normalize(data any) any {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return data
}
