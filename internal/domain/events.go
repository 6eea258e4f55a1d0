package domain

import "github.com/shopspring/decimal"

// Ключи маршрутизации доменных событий
const (
	EventPurchaseCompleted    = "purchase.completed"
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventWalletToppedUp       = "wallet.topped_up"
)

// PurchaseCompletedEvent публикуется после успешной покупки
type PurchaseCompletedEvent struct {
	Purchase      *Purchase       `json:"purchase"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

// BookingCreatedEvent публикуется после успешного бронирования
type BookingCreatedEvent struct {
	Booking       *Booking        `json:"booking"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

// BookingStatusChangedEvent публикуется при смене статуса бронирования
type BookingStatusChangedEvent struct {
	BookingID string        `json:"bookingId"`
	Status    BookingStatus `json:"status"`
	ChangedBy string        `json:"changedBy"`
}

// WalletToppedUpEvent публикуется после пополнения кошелька
type WalletToppedUpEvent struct {
	UserID        string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Balance       decimal.Decimal `json:"balance"`
}
