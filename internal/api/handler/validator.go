package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator with the marketplace tags registered:
//
//	role         Buyer, Seller or Admin
//	signup_role  a role a user may pick for themselves (Buyer or Seller)
//	objectid     a Mongo ObjectID hex string
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(requestFieldName)

	for tag, fn := range map[string]validator.Func{
		"role":        validRole,
		"signup_role": validSignupRole,
		"objectid":    validObjectID,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func validRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}

func validSignupRole(fl validator.FieldLevel) bool {
	r, err := domain.ParseRole(fl.Field().String())
	return err == nil && r != domain.RoleAdmin
}

func validObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// requestFieldName reports fields by the name the client sent them under.
func requestFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "objectid":
		return field + " must be a valid identifier"
	case "role":
		return field + " must be one of: Buyer Seller Admin"
	case "signup_role":
		return field + " must be one of: Buyer Seller"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
