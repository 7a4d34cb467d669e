package handlers

import (
	"log"
	"strconv"
	"strings"

	"shop/internal/apperrors"
	"shop/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// parseID reads a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequest("Invalid %s: %s", name, raw)
	}
	return uint(id), nil
}

// bindBody decodes the JSON body into out and validates it.
func bindBody(c *fiber.Ctx, v *validation.Validator, out any) error {
	if err := c.BodyParser(out); err != nil {
		log.Printf("Error parsing request body on %s %s: %v", c.Method(), c.Path(), err)
		return apperrors.BadRequest("Invalid request body")
	}
	return v.Struct(out)
}

func queryDecimal(c *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid %s: %s", name, raw)
	}
	return &d, nil
}

func queryInt(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.BadRequest("Invalid %s: %s", name, raw)
	}
	return n, nil
}

// queryList splits a comma separated query value such as "1,2,3". Repeated
// keys (productIds=1&productIds=2) are accepted as well.
func queryList(c *fiber.Ctx, name string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(name) {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func requiredQuery(c *fiber.Ctx, name string) (string, error) {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return "", apperrors.BadRequest("Query parameter '%s' is required", name)
	}
	return value, nil
}
