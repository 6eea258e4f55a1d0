package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	domainmocks "github.com/ironboundtech/TheDrinkDistrict/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingMocks struct {
	catalog  *domainmocks.CatalogReaderMock
	wallet   *domainmocks.WalletLedgerMock
	bookings *domainmocks.BookingRepositoryMock
	events   *domainmocks.EventPublisherMock
}

func newTestBookingService(t *testing.T) (*BookingService, bookingMocks) {
	m := bookingMocks{
		catalog:  domainmocks.NewCatalogReaderMock(t),
		wallet:   domainmocks.NewWalletLedgerMock(t),
		bookings: domainmocks.NewBookingRepositoryMock(t),
		events:   domainmocks.NewEventPublisherMock(t),
	}
	runner := NewSagaRunner(domainmocks.NewIncidentRepositoryMock(t), zap.NewNop())
	svc := NewBookingService(m.catalog, m.wallet, m.bookings, runner, m.events, zap.NewNop())
	svc.newID = func() string { return "booking-1" }
	return svc, m
}

func TestBookingService_Book(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user-1", Role: domain.RoleUser, WalletBalance: decimal.NewFromInt(1000)}
	court := &domain.Court{ID: "c1", PricePerHour: decimal.NewFromInt(400), Status: domain.CourtStatusOpen}
	req := domain.BookingRequest{
		CourtID:     "c1",
		BookingDate: "2025-01-01",
		StartTime:   "10:00",
		EndTime:     "11:30",
		TotalPrice:  decimal.NewFromInt(600),
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestBookingService(t)

		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(court, nil).Once()
		m.bookings.EXPECT().HasConflict(mock.Anything, "c1", "2025-01-01", "10:00", "11:30").Return(false, nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("600"), domain.TransactionKindBooking, "booking-1").
			Return(decimal.NewFromInt(400), nil).Once()
		m.bookings.EXPECT().CreateBooking(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.ID == "booking-1" && b.Status == domain.BookingStatusConfirmed && b.TotalPrice.Equal(decimal.NewFromInt(600))
		})).Return(nil).Once()
		m.events.EXPECT().Publish(mock.Anything, domain.EventBookingCreated, mock.Anything).Return(nil).Once()

		result, err := svc.Book(ctx, user, req)
		require.NoError(t, err)
		assert.Equal(t, "booking-1", result.Booking.ID)
		assert.True(t, result.WalletBalance.Equal(decimal.NewFromInt(400)))
	})

	t.Run("Validation", func(t *testing.T) {
		svc, _ := newTestBookingService(t)
		bad := req
		bad.EndTime = "09:00"

		_, err := svc.Book(ctx, user, bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Court not found", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(nil, domain.ErrCourtNotFound).Once()

		_, err := svc.Book(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrCourtNotFound)
	})

	t.Run("Court closed", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		closed := *court
		closed.Status = domain.CourtStatusClosed
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(&closed, nil).Once()

		_, err := svc.Book(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrCourtClosed)
	})

	t.Run("Price mismatch", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		cheap := req
		cheap.TotalPrice = decimal.NewFromInt(1)
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(court, nil).Once()

		_, err := svc.Book(ctx, user, cheap)
		assert.ErrorIs(t, err, domain.ErrPriceMismatch)
	})

	t.Run("Too short to be priced", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		cheapCourt := &domain.Court{ID: "c1", PricePerHour: decimal.RequireFromString("0.10"), Status: domain.CourtStatusOpen}
		short := req
		short.EndTime = "10:01"
		short.TotalPrice = decimal.RequireFromString("0.01")
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(cheapCourt, nil).Once()

		_, err := svc.Book(ctx, user, short)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "endTime", verr.Field)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		poor := &domain.User{ID: "user-1", WalletBalance: decimal.NewFromInt(100)}
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(court, nil).Once()

		_, err := svc.Book(ctx, poor, req)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("Overlapping booking", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(court, nil).Once()
		m.bookings.EXPECT().HasConflict(mock.Anything, "c1", "2025-01-01", "10:00", "11:30").Return(true, nil).Once()

		_, err := svc.Book(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrSlotConflict)
	})

	t.Run("Conflict at insert refunds wallet", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(court, nil).Once()
		m.bookings.EXPECT().HasConflict(mock.Anything, "c1", "2025-01-01", "10:00", "11:30").Return(false, nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("600"), domain.TransactionKindBooking, "booking-1").
			Return(decimal.NewFromInt(400), nil).Once()
		m.bookings.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(domain.ErrSlotConflict).Once()
		m.wallet.EXPECT().Credit(mock.Anything, "user-1", decEq("600"), domain.TransactionKindCompensation, "booking-1").
			Return(decimal.NewFromInt(1000), nil).Once()

		_, err := svc.Book(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrSlotConflict)
	})

	t.Run("Storage error", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.catalog.EXPECT().GetCourt(mock.Anything, "c1").Return(court, nil).Once()
		m.bookings.EXPECT().HasConflict(mock.Anything, "c1", "2025-01-01", "10:00", "11:30").
			Return(false, errors.New("db error")).Once()

		_, err := svc.Book(ctx, user, req)
		require.Error(t, err)
		assert.False(t, domain.IsClientError(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user-1", Role: domain.RoleUser}
	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	booking := &domain.Booking{ID: "booking-1", UserID: "user-1", Status: domain.BookingStatusConfirmed}

	t.Run("Owner cancels", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		cancelled := *booking
		cancelled.Status = domain.BookingStatusCancelled

		m.bookings.EXPECT().GetBooking(mock.Anything, "booking-1").Return(booking, nil).Once()
		m.bookings.EXPECT().UpdateBookingStatus(mock.Anything, "booking-1", domain.BookingStatusCancelled).
			Return(&cancelled, nil).Once()
		m.events.EXPECT().Publish(mock.Anything, domain.EventBookingStatusChanged, domain.BookingStatusChangedEvent{
			BookingID: "booking-1",
			Status:    domain.BookingStatusCancelled,
			ChangedBy: "user-1",
		}).Return(nil).Once()

		got, err := svc.UpdateStatus(ctx, owner, "booking-1", domain.BookingStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	})

	t.Run("Admin completes", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.bookings.EXPECT().GetBooking(mock.Anything, "booking-1").Return(booking, nil).Once()
		m.bookings.EXPECT().UpdateBookingStatus(mock.Anything, "booking-1", domain.BookingStatusCompleted).
			Return(booking, nil).Once()
		m.events.EXPECT().Publish(mock.Anything, domain.EventBookingStatusChanged, mock.Anything).Return(nil).Once()

		_, err := svc.UpdateStatus(ctx, admin, "booking-1", domain.BookingStatusCompleted)
		require.NoError(t, err)
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc, _ := newTestBookingService(t)

		_, err := svc.UpdateStatus(ctx, owner, "booking-1", domain.BookingStatus("archived"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Other user forbidden", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.bookings.EXPECT().GetBooking(mock.Anything, "booking-1").Return(booking, nil).Once()

		_, err := svc.UpdateStatus(ctx, &domain.User{ID: "user-2", Role: domain.RoleStaff}, "booking-1", domain.BookingStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Cancelled is terminal", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.bookings.EXPECT().GetBooking(mock.Anything, "booking-1").Return(booking, nil).Once()
		m.bookings.EXPECT().UpdateBookingStatus(mock.Anything, "booking-1", domain.BookingStatusConfirmed).
			Return(nil, domain.ErrInvalidTransition).Once()

		_, err := svc.UpdateStatus(ctx, owner, "booking-1", domain.BookingStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newTestBookingService(t)
		m.bookings.EXPECT().GetBooking(mock.Anything, "ghost").Return(nil, domain.ErrBookingNotFound).Once()

		_, err := svc.UpdateStatus(ctx, owner, "ghost", domain.BookingStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingService_List(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user-1", Role: domain.RoleUser}

	svc, m := newTestBookingService(t)
	m.bookings.EXPECT().ListBookingsByUser(mock.Anything, "user-1").Return([]*domain.Booking{{ID: "b1"}}, nil).Once()

	got, err := svc.ListUserBookings(ctx, owner, "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListUserBookings(ctx, owner, "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	m.bookings.EXPECT().ListBookings(mock.Anything).Return([]*domain.Booking{}, nil).Once()
	all, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
