package services

import (
	"errors"
	"fmt"
)

// Общие ошибки сервисного слоя.
// Обработчики сопоставляют их с HTTP-статусами: ErrNotOwned -> 401,
// Err*NotFound -> 404, ValidationError -> 400, остальное -> 500.
var (
	ErrVehicleNotFound = errors.New("транспортное средство не найдено")
	ErrExpenseNotFound = errors.New("расход не найден")
	ErrReceiptNotFound = errors.New("чек не найден")
	ErrNotOwned        = errors.New("запись принадлежит другому пользователю")
)

// ValidationError описывает ошибку валидации конкретного поля запроса.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError создает ошибку валидации для поля.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
