package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateRole(ctx context.Context, id string, role Role) (*User, error)
	SetActive(ctx context.Context, id string, active bool) (*User, error)
}

// WalletLedger атомарные операции над балансом кошелька.
// Debit списывает сумму только если баланс в момент обновления не меньше суммы.
type WalletLedger interface {
	Debit(ctx context.Context, userID string, amount decimal.Decimal, kind TransactionKind, ref string) (decimal.Decimal, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal, kind TransactionKind, ref string) (decimal.Decimal, error)
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	GetTransactions(ctx context.Context, userID string) ([]*WalletTransaction, error)
}

// StockLedger атомарные операции над остатком товара.
// Reserve уменьшает остаток только если в момент обновления его хватает.
type StockLedger interface {
	Reserve(ctx context.Context, productID string, quantity int) error
	Release(ctx context.Context, productID string, quantity int) error
}

// CatalogReader чтение актуальных цен и статусов каталога
type CatalogReader interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetCourt(ctx context.Context, id string) (*Court, error)
}

// CatalogInvalidator сбрасывает закешированные записи каталога
type CatalogInvalidator interface {
	InvalidateProduct(ctx context.Context, id string) error
	InvalidateCourt(ctx context.Context, id string) error
}

// ProductRepository определяет методы для работы с товарами
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, includeInactive bool) ([]*Product, error)
}

// CourtRepository определяет методы для работы с кортами
type CourtRepository interface {
	CreateCourt(ctx context.Context, court *Court) (*Court, error)
	UpdateCourt(ctx context.Context, court *Court) (*Court, error)
	GetCourt(ctx context.Context, id string) (*Court, error)
	ListCourts(ctx context.Context, onlyOpen bool) ([]*Court, error)
}

// PurchaseRepository определяет методы для работы с покупками
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *Purchase) error
	GetPurchase(ctx context.Context, id string) (*Purchase, error)
	ListPurchasesByUser(ctx context.Context, userID string) ([]*Purchase, error)
	ListPurchases(ctx context.Context) ([]*Purchase, error)
}

// BookingRepository определяет методы для работы с бронированиями.
// CreateBooking обязан вернуть ErrSlotConflict, если интервал пересекается
// с неотмененным бронированием того же корта на ту же дату.
type BookingRepository interface {
	HasConflict(ctx context.Context, courtID, date, startTime, endTime string) (bool, error)
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error)
}

// IncidentRepository хранит неудачные компенсации для повторной сверки
type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *Incident) error
	ListOpenIncidents(ctx context.Context, limit int) ([]*Incident, error)
	GetIncident(ctx context.Context, id string) (*Incident, error)
	ResolveIncident(ctx context.Context, id string) error
	RecordIncidentFailure(ctx context.Context, id, lastError string, status IncidentStatus) error
}

// Transactor выполняет fn в одной транзакции хранилища
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует доменные события
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// PurchaseResult результат успешной покупки
type PurchaseResult struct {
	Order         *Purchase       `json:"order"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

// BookingResult результат успешного бронирования
type BookingResult struct {
	Booking       *Booking        `json:"booking"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

// RegisterInput данные регистрации
type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// AuthService определяет методы аутентификации и управления пользователями
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*User, string, error)
	Login(ctx context.Context, login, password string) (*User, string, error)
	UpdateRole(ctx context.Context, actor *User, userID string, role Role) (*User, error)
	SetActive(ctx context.Context, actor *User, userID string, active bool) (*User, error)
}

// PurchaseService определяет методы работы с покупками
type PurchaseService interface {
	Purchase(ctx context.Context, user *User, req PurchaseRequest) (*PurchaseResult, error)
	GetPurchase(ctx context.Context, actor *User, id string) (*Purchase, error)
	ListUserPurchases(ctx context.Context, actor *User, userID string) ([]*Purchase, error)
	ListPurchases(ctx context.Context) ([]*Purchase, error)
}

// BookingService определяет методы работы с бронированиями
type BookingService interface {
	Book(ctx context.Context, user *User, req BookingRequest) (*BookingResult, error)
	UpdateStatus(ctx context.Context, actor *User, id string, status BookingStatus) (*Booking, error)
	ListUserBookings(ctx context.Context, actor *User, userID string) ([]*Booking, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
}

// WalletService определяет методы работы с кошельком
type WalletService interface {
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	TopUp(ctx context.Context, userID string, req TopUpRequest) (decimal.Decimal, error)
	GetTransactions(ctx context.Context, userID string) ([]*WalletTransaction, error)
}

// CatalogService определяет методы работы с каталогом
type CatalogService interface {
	ListProducts(ctx context.Context, includeInactive bool) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	ListCourts(ctx context.Context, onlyOpen bool) ([]*Court, error)
	GetCourt(ctx context.Context, id string) (*Court, error)
	CreateCourt(ctx context.Context, court *Court) (*Court, error)
	UpdateCourt(ctx context.Context, court *Court) (*Court, error)
}
