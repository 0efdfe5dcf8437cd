package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeRestricted    = "RESTRICTED"
)

var (
	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrAlreadyExists - нарушение уникальности
	ErrAlreadyExists = &DomainError{
		Code:    CodeAlreadyExists,
		Message: "resource already exists",
	}

	// ErrRestricted - удаление запрещено, на запись есть ссылки
	ErrRestricted = &DomainError{
		Code:    CodeRestricted,
		Message: "resource is still referenced",
	}

	// ErrSettingsExists - настройки магазина существуют в единственном экземпляре
	ErrSettingsExists = &DomainError{
		Code:    CodeAlreadyExists,
		Message: "settings already exist, only one instance is allowed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с описанием поля
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewAlreadyExistsError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeAlreadyExists,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewRestrictedError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeRestricted,
		Message: fmt.Sprintf(format, args...),
	}
}
