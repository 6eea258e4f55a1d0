// Package memory хранилище в памяти процесса для тестов и локального запуска.
// Каждая операция выполняется под одной блокировкой, транзакции сериализуются
// и откатываются восстановлением снимка.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
)

type state struct {
	users        map[string]*domain.User
	products     map[string]*domain.Product
	courts       map[string]*domain.Court
	bookings     map[string]*domain.Booking
	purchases    map[string]*domain.Purchase
	incidents    map[string]*domain.Incident
	transactions []*domain.WalletTransaction
	nextTxID     int64
}

func newState() state {
	return state{
		users:     make(map[string]*domain.User),
		products:  make(map[string]*domain.Product),
		courts:    make(map[string]*domain.Court),
		bookings:  make(map[string]*domain.Booking),
		purchases: make(map[string]*domain.Purchase),
		incidents: make(map[string]*domain.Incident),
	}
}

func (s *state) clone() state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = copyUser(v)
	}
	for k, v := range s.products {
		c.products[k] = copyProduct(v)
	}
	for k, v := range s.courts {
		c.courts[k] = copyCourt(v)
	}
	for k, v := range s.bookings {
		c.bookings[k] = copyBooking(v)
	}
	for k, v := range s.purchases {
		c.purchases[k] = copyPurchase(v)
	}
	for k, v := range s.incidents {
		c.incidents[k] = copyIncident(v)
	}
	c.transactions = make([]*domain.WalletTransaction, len(s.transactions))
	for i, t := range s.transactions {
		tc := *t
		c.transactions[i] = &tc
	}
	c.nextTxID = s.nextTxID
	return c
}

// Store реализует все репозитории, Transactor и атомарные операции учета
type Store struct {
	mu   sync.Mutex // защищает st
	txMu sync.Mutex // сериализует транзакции и одиночные записи
	st   state
	now  func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{st: newState(), now: time.Now}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// write выполняет изменение под блокировкой. Вне транзакции запись
// дополнительно ждет завершения открытых транзакций.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

// WithinTransaction выполняет fn изолированно от других записей.
// При ошибке состояние восстанавливается из снимка.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Ping для проверки готовности
func (s *Store) Ping(context.Context) error {
	return nil
}

// Seed заполняет каталог демонстрационными товарами и кортами
func (s *Store) Seed() {
	now := s.now()
	products := []domain.Product{
		{ID: "water", Name: "Mineral water", Category: "drinks", Price: decimal.NewFromInt(25), Stock: 100},
		{ID: "cola", Name: "Cola", Category: "drinks", Price: decimal.NewFromInt(35), Stock: 50},
		{ID: "snack", Name: "Snack pack", Category: "snacks", Price: decimal.NewFromInt(20), Stock: 75},
		{ID: "jersey", Name: "District Sports jersey", Category: "apparel", Price: decimal.NewFromInt(450), Stock: 30},
		{ID: "tennis-balls", Name: "Tennis balls", Category: "equipment", Price: decimal.NewFromInt(80), Stock: 40},
		{ID: "pack-5", Name: "5 session package", Category: "packages", Price: decimal.NewFromInt(1800), Stock: 20},
	}
	courts := []domain.Court{
		{ID: "sukhumvit-1", Name: "Court 1", Venue: "District Sports Sukhumvit", PricePerHour: decimal.NewFromInt(400), Status: domain.CourtStatusOpen},
		{ID: "sukhumvit-2", Name: "Court 2", Venue: "District Sports Sukhumvit", PricePerHour: decimal.NewFromInt(400), Status: domain.CourtStatusOpen},
		{ID: "sukhumvit-3", Name: "Court 3", Venue: "District Sports Sukhumvit", PricePerHour: decimal.NewFromInt(400), Status: domain.CourtStatusClosed},
		{ID: "thonglor-1", Name: "Court 1", Venue: "District Sports Thonglor", PricePerHour: decimal.NewFromInt(500), Status: domain.CourtStatusOpen},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range products {
		p := products[i]
		p.IsActive = true
		p.CreatedAt, p.UpdatedAt = now, now
		s.st.products[p.ID] = &p
	}
	for i := range courts {
		c := courts[i]
		c.CreatedAt, c.UpdatedAt = now, now
		s.st.courts[c.ID] = &c
	}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func copyProduct(p *domain.Product) *domain.Product {
	c := *p
	return &c
}

func copyCourt(ct *domain.Court) *domain.Court {
	c := *ct
	return &c
}

func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}

func copyPurchase(p *domain.Purchase) *domain.Purchase {
	c := *p
	c.Items = append([]domain.PurchaseItem(nil), p.Items...)
	return &c
}

func copyIncident(i *domain.Incident) *domain.Incident {
	c := *i
	return &c
}

// newestFirst сортирует по убыванию времени создания, при равенстве по ID
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]) > id(items[j])
	})
}

var (
	_ domain.UserRepository     = (*Store)(nil)
	_ domain.WalletLedger       = (*Store)(nil)
	_ domain.StockLedger        = (*Store)(nil)
	_ domain.CatalogReader      = (*Store)(nil)
	_ domain.ProductRepository  = (*Store)(nil)
	_ domain.CourtRepository    = (*Store)(nil)
	_ domain.PurchaseRepository = (*Store)(nil)
	_ domain.BookingRepository  = (*Store)(nil)
	_ domain.IncidentRepository = (*Store)(nil)
	_ domain.Transactor         = (*Store)(nil)
)
