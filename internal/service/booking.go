package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BookingService бронирует корты со списанием стоимости с кошелька
type BookingService struct {
	catalog  domain.CatalogReader
	wallet   domain.WalletLedger
	bookings domain.BookingRepository
	runner   StepRunner
	events   domain.EventPublisher
	logger   *zap.Logger
	newID    func() string
	now      func() time.Time
}

// NewBookingService создает новый BookingService
func NewBookingService(
	catalog domain.CatalogReader,
	wallet domain.WalletLedger,
	bookings domain.BookingRepository,
	runner StepRunner,
	events domain.EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		catalog:  catalog,
		wallet:   wallet,
		bookings: bookings,
		runner:   runner,
		events:   events,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Book бронирует корт на интервал [startTime, endTime)
func (s *BookingService) Book(ctx context.Context, user *domain.User, req domain.BookingRequest) (*domain.BookingResult, error) {
	startMin, endMin, err := req.Validate()
	if err != nil {
		return nil, err
	}

	court, err := s.catalog.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, domain.ErrCourtNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("booking service: failed to load court %q: %w", req.CourtID, err)
	}
	if !court.IsOpen() {
		return nil, domain.ErrCourtClosed
	}

	price := domain.HourlyCost(court.PricePerHour, endMin-startMin)
	if !price.IsPositive() {
		return nil, domain.NewValidationError("endTime", "booking is too short to be priced")
	}
	if !domain.AmountsMatch(req.TotalPrice, price) {
		return nil, fmt.Errorf("%w: expected %s, got %s",
			domain.ErrPriceMismatch, price.StringFixed(2), req.TotalPrice.StringFixed(2))
	}

	if user.WalletBalance.LessThan(price) {
		return nil, domain.ErrInsufficientFunds
	}

	// Быстрый отказ, окончательно пересечение проверяет хранилище при вставке
	conflict, err := s.bookings.HasConflict(ctx, court.ID, req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("booking service: failed to check slot on court %s: %w", court.ID, err)
	}
	if conflict {
		return nil, domain.ErrSlotConflict
	}

	now := s.now()
	booking := &domain.Booking{
		ID:          s.newID(),
		UserID:      user.ID,
		CourtID:     court.ID,
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TotalPrice:  price,
		Status:      domain.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ref := OrderRef{Kind: "booking", ID: booking.ID, UserID: user.ID}

	var balance decimal.Decimal
	steps := []Step{
		{
			Name: "debit_wallet",
			Do: func(ctx context.Context) error {
				newBalance, err := s.wallet.Debit(ctx, user.ID, price, domain.TransactionKindBooking, booking.ID)
				if err != nil {
					return err
				}
				balance = newBalance
				return nil
			},
			Undo: func(ctx context.Context) error {
				_, err := s.wallet.Credit(ctx, user.ID, price, domain.TransactionKindCompensation, booking.ID)
				return err
			},
			Compensation: &domain.Incident{
				Kind:      domain.IncidentKindWalletCredit,
				SubjectID: user.ID,
				Amount:    price,
			},
		},
		{
			Name: "persist_booking",
			Do: func(ctx context.Context) error {
				return s.bookings.CreateBooking(ctx, booking)
			},
		},
	}

	if err := s.runner.Run(ctx, ref, steps); err != nil {
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("booking service: failed to book court %s for user %s: %w", court.ID, user.ID, err)
	}

	if err := s.events.Publish(ctx, domain.EventBookingCreated, domain.BookingCreatedEvent{Booking: booking, WalletBalance: balance}); err != nil {
		s.logger.Warn("failed to publish event", zap.String("routing_key", domain.EventBookingCreated), zap.Error(err))
	}

	return &domain.BookingResult{Booking: booking, WalletBalance: balance}, nil
}

// UpdateStatus меняет статус бронирования. Доступно владельцу и администратору.
func (s *BookingService) UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "must be one of pending, confirmed, cancelled, completed")
	}

	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("booking service: failed to get booking %s: %w", id, err)
	}
	if !canAccess(actor, booking.UserID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.bookings.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("booking service: failed to update booking %s: %w", id, err)
	}

	event := domain.BookingStatusChangedEvent{BookingID: id, Status: status, ChangedBy: actor.ID}
	if err := s.events.Publish(ctx, domain.EventBookingStatusChanged, event); err != nil {
		s.logger.Warn("failed to publish event", zap.String("routing_key", domain.EventBookingStatusChanged), zap.Error(err))
	}

	return updated, nil
}

// ListUserBookings возвращает бронирования пользователя
func (s *BookingService) ListUserBookings(ctx context.Context, actor *domain.User, userID string) ([]*domain.Booking, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	bookings, err := s.bookings.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("booking service: failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListBookings возвращает все бронирования
func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking service: failed to list bookings: %w", err)
	}
	return bookings, nil
}
