package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"ems-portal/internal/adapters/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind parses the JSON body into dst and validates it
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return check(dst)
}

// check validates dst and turns the first failure into a 400
func check(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, describe(verrs[0]))
	}
	return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return field + " must be a YYYY-MM-DD date"
	default:
		return field + " is invalid"
	}
}

// paramID reads a positive numeric route parameter
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// currentID returns the record id of the logged in identity
func currentID(c *fiber.Ctx) (uint, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return identity.ID, nil
}
