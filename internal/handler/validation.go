package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// в сообщениях об ошибках - имена полей из JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest сводит ошибки валидатора в одну ошибку VALIDATION_ERROR
func (h *Handler) validateRequest(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domain.NewValidationError("%s", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fieldPath(fe.Namespace())
		param := fe.Param()

		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "min":
			if fe.Kind() == reflect.Slice {
				messages = append(messages, field+" must contain at least "+param+" item(s)")
			} else {
				messages = append(messages, field+" must be at least "+param+" characters")
			}
		case "max":
			messages = append(messages, field+" must be at most "+param+" characters")
		case "gt":
			messages = append(messages, field+" must be greater than "+param)
		case "gte":
			messages = append(messages, field+" must be at least "+param)
		case "lte":
			messages = append(messages, field+" must be at most "+param)
		case "email":
			messages = append(messages, field+" must be a valid email")
		case "datetime":
			messages = append(messages, field+" must be a date in format "+param)
		case "oneof":
			messages = append(messages, field+" must be one of "+param)
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return domain.NewValidationError("%s", strings.Join(messages, ", "))
}

// fieldPath убирает имя структуры запроса: "OrderRequest.items[0].quantity" -> "items[0].quantity"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
