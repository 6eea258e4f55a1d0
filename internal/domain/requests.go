package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// checkAmount требует положительную сумму не точнее копейки, как NUMERIC(14,2)
func checkAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewValidationError(field, "must be greater than 0")
	}
	if !amount.Equal(amount.Round(2)) {
		return NewValidationError(field, "must have at most 2 decimal places")
	}
	return nil
}

// PurchaseLine позиция заказа в том виде, в котором ее прислал клиент
type PurchaseLine struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// PurchaseRequest входные данные покупки
type PurchaseRequest struct {
	Items       []PurchaseLine  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Validate проверяет структуру запроса до любых изменений в хранилище
func (r *PurchaseRequest) Validate() error {
	if len(r.Items) == 0 {
		return NewValidationError("items", "must contain at least one item")
	}
	if err := checkAmount("totalAmount", r.TotalAmount); err != nil {
		return err
	}
	for i, item := range r.Items {
		field := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(item.ProductID) == "" {
			return NewValidationError(field+".productId", "is required")
		}
		if item.Quantity <= 0 {
			return NewValidationError(field+".quantity", "must be a positive integer")
		}
		if err := checkAmount(field+".price", item.Price); err != nil {
			return err
		}
	}
	return nil
}

// BookingRequest входные данные бронирования
type BookingRequest struct {
	CourtID     string          `json:"courtId"`
	BookingDate string          `json:"bookingDate"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Validate проверяет обязательные поля и возвращает интервал в минутах
func (r *BookingRequest) Validate() (startMin, endMin int, err error) {
	if strings.TrimSpace(r.CourtID) == "" {
		return 0, 0, NewValidationError("courtId", "is required")
	}
	if _, err := ParseBookingDate(r.BookingDate); err != nil {
		return 0, 0, NewValidationError("bookingDate", err.Error())
	}
	startMin, err = ParseClock(r.StartTime)
	if err != nil {
		return 0, 0, NewValidationError("startTime", err.Error())
	}
	endMin, err = ParseClock(r.EndTime)
	if err != nil {
		return 0, 0, NewValidationError("endTime", err.Error())
	}
	if endMin <= startMin {
		return 0, 0, NewValidationError("endTime", "must be after startTime")
	}
	if err := checkAmount("totalPrice", r.TotalPrice); err != nil {
		return 0, 0, err
	}
	return startMin, endMin, nil
}

// TopUpRequest входные данные пополнения кошелька
type TopUpRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

// Validate проверяет сумму и способ оплаты
func (r *TopUpRequest) Validate() error {
	if err := checkAmount("amount", r.Amount); err != nil {
		return err
	}
	if !r.PaymentMethod.Valid() {
		return NewValidationError("paymentMethod", "unsupported payment method")
	}
	return nil
}
