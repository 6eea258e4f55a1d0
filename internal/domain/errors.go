package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Ошибки каталога
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCourtNotFound   = errors.New("court not found")
	ErrCourtClosed     = errors.New("court is closed")
)

// Ошибки заказов и бронирований
var (
	ErrValidation        = errors.New("validation failed")
	ErrPriceMismatch     = errors.New("total amount does not match item prices")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSlotConflict      = errors.New("time slot already booked")
	ErrPurchaseNotFound  = errors.New("purchase not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Ошибки кошелька
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Ошибки сверки
var (
	ErrIncidentNotFound   = errors.New("incident not found")
	ErrIncidentNotOpen    = errors.New("incident is not open")
	ErrCompensationFailed = errors.New("compensation failed")
)

// ValidationError описывает некорректное поле запроса
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientStockError сообщает, какого товара не хватило
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	name := e.Name
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// CompensationError возвращается, когда откат уже выполненных шагов не удался.
// Состояние хранилища при этом рассогласовано до ручной или фоновой сверки.
type CompensationError struct {
	Ref      string
	Cause    error
	Failures []error
}

func (e *CompensationError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("compensation failed for %s after %v: %s", e.Ref, e.Cause, strings.Join(msgs, "; "))
}

func (e *CompensationError) Unwrap() []error {
	return []error{ErrCompensationFailed, e.Cause}
}

// clientErrors ошибки, вызванные клиентом (4xx, без автоматических повторов)
var clientErrors = []error{
	ErrValidation,
	ErrPriceMismatch,
	ErrInsufficientFunds,
	ErrInsufficientStock,
	ErrSlotConflict,
	ErrCourtClosed,
	ErrInvalidTransition,
	ErrForbidden,
	ErrUserExists,
	ErrInvalidCredentials,
	ErrUserNotFound,
	ErrProductNotFound,
	ErrCourtNotFound,
	ErrPurchaseNotFound,
	ErrBookingNotFound,
}

// IsClientError сообщает, вызвана ли ошибка некорректным запросом клиента.
// Провал компенсации всегда считается серверной ошибкой.
func IsClientError(err error) bool {
	if err == nil || errors.Is(err, ErrCompensationFailed) {
		return false
	}
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
