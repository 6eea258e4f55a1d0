package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role представляет роль пользователя
type Role string

const (
	RoleUser          Role = "user"
	RoleStaff         Role = "staff"
	RoleGuestInvestor Role = "guest_investor"
	RoleManager       Role = "manager"
	RoleAdmin         Role = "admin"
)

// roleRank задает иерархию ролей (больше = больше прав)
var roleRank = map[Role]int{
	RoleUser:          1,
	RoleStaff:         2,
	RoleGuestInvestor: 3,
	RoleManager:       4,
	RoleAdmin:         5,
}

// Valid проверяет, что роль известна системе
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast проверяет, что роль не ниже required
func (r Role) AtLeast(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// Outranks проверяет, что роль строго выше other
func (r Role) Outranks(other Role) bool {
	return roleRank[r] > roleRank[other]
}

// CourtStatus представляет статус корта
type CourtStatus string

const (
	CourtStatusOpen   CourtStatus = "open"
	CourtStatusClosed CourtStatus = "closed"
)

// BookingStatus представляет статус бронирования
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid проверяет, что статус бронирования известен
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// PurchaseStatus представляет статус покупки
type PurchaseStatus string

const (
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// TransactionKind представляет тип операции по кошельку
type TransactionKind string

const (
	TransactionKindTopUp        TransactionKind = "topup"
	TransactionKindPurchase     TransactionKind = "purchase"
	TransactionKindBooking      TransactionKind = "booking"
	TransactionKindCompensation TransactionKind = "compensation"
)

// PaymentMethod способ пополнения кошелька
type PaymentMethod string

const (
	PaymentMethodPromptPay  PaymentMethod = "promptpay"
	PaymentMethodCreditCard PaymentMethod = "creditcard"
	PaymentMethodTrueMoney  PaymentMethod = "truemoney"
	PaymentMethodFree       PaymentMethod = "free"
)

// Valid проверяет, что способ оплаты поддерживается
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPromptPay, PaymentMethodCreditCard, PaymentMethodTrueMoney, PaymentMethodFree:
		return true
	}
	return false
}

// User представляет пользователя системы
type User struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	PasswordHash  string          `json:"-"` // Не отправляем хеш в JSON
	Role          Role            `json:"role"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Product представляет товар магазина
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Court представляет спортивный корт
type Court struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Venue        string          `json:"venue"`
	Address      string          `json:"address"`
	PricePerHour decimal.Decimal `json:"price"`
	Status       CourtStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// IsOpen сообщает, принимает ли корт бронирования
func (c *Court) IsOpen() bool {
	return c.Status == CourtStatusOpen
}

// Booking представляет бронирование корта
type Booking struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	CourtID     string          `json:"courtId"`
	BookingDate string          `json:"bookingDate"` // YYYY-MM-DD
	StartTime   string          `json:"startTime"`   // HH:MM
	EndTime     string          `json:"endTime"`     // HH:MM
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Status      BookingStatus   `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PurchaseItem позиция покупки с ценой на момент покупки
type PurchaseItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Purchase представляет неизменяемую запись о покупке
type Purchase struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Items       []PurchaseItem  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      PurchaseStatus  `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// WalletTransaction запись журнала операций по кошельку
type WalletTransaction struct {
	ID           int64           `json:"id"`
	UserID       string          `json:"-"`
	Amount       decimal.Decimal `json:"amount"` // Отрицательная сумма для списаний
	Kind         TransactionKind `json:"kind"`
	Reference    string          `json:"reference"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// IncidentKind тип незавершенной компенсации
type IncidentKind string

const (
	IncidentKindStockRelease IncidentKind = "stock_release"
	IncidentKindWalletCredit IncidentKind = "wallet_credit"
)

// IncidentStatus статус инцидента компенсации
type IncidentStatus string

const (
	IncidentStatusOpen     IncidentStatus = "open"
	IncidentStatusResolved IncidentStatus = "resolved"
	IncidentStatusManual   IncidentStatus = "manual"
)

// Incident зафиксированная неудачная компенсация, требующая сверки
type Incident struct {
	ID        string          `json:"id"`
	Kind      IncidentKind    `json:"kind"`
	OrderRef  string          `json:"orderRef"`
	SubjectID string          `json:"subjectId"` // ID товара или пользователя
	Quantity  int             `json:"quantity,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	LastError string          `json:"lastError"`
	Attempts  int             `json:"attempts"`
	Status    IncidentStatus  `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
