package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRowColumns = []string{
	"id", "user_id", "court_id", "booking_date", "start_time", "end_time", "total_price", "status", "created_at", "updated_at",
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "b1",
		UserID:      "u1",
		CourtID:     "court-1",
		BookingDate: "2026-10-20",
		StartTime:   "10:00",
		EndTime:     "11:00",
		TotalPrice:  decimal.NewFromInt(200),
		Status:      domain.BookingStatusConfirmed,
	}
}

func bookingRows(b *domain.Booking, status domain.BookingStatus) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(bookingRowColumns).
		AddRow(b.ID, b.UserID, b.CourtID, b.BookingDate, b.StartTime, b.EndTime, b.TotalPrice, status, now, now)
}

func TestBookingRepository_HasConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock)
	ctx := context.Background()

	t.Run("Overlap found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("court-1", "2026-10-20", "10:30", "11:30").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		conflict, err := repo.HasConflict(ctx, "court-1", "2026-10-20", "10:30", "11:30")
		require.NoError(t, err)
		assert.True(t, conflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("court-1", "2026-10-20", "10:30", "11:30").
			WillReturnError(errors.New("timeout"))

		_, err := repo.HasConflict(ctx, "court-1", "2026-10-20", "10:30", "11:30")
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_CreateBooking(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := testBooking()
		now := time.Now()

		mock.ExpectQuery(`INSERT INTO bookings`).
			WithArgs(b.ID, b.UserID, b.CourtID, b.BookingDate, b.StartTime, b.EndTime, b.TotalPrice, b.Status).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreateBooking(ctx, b))
		assert.Equal(t, now, b.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exclusion violation is a slot conflict", func(t *testing.T) {
		b := testBooking()

		mock.ExpectQuery(`INSERT INTO bookings`).
			WithArgs(b.ID, b.UserID, b.CourtID, b.BookingDate, b.StartTime, b.EndTime, b.TotalPrice, b.Status).
			WillReturnError(&pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})

		err := repo.CreateBooking(ctx, b)
		assert.ErrorIs(t, err, domain.ErrSlotConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_UpdateBookingStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock)
	ctx := context.Background()
	b := testBooking()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE bookings SET status = `).
			WithArgs(b.ID, domain.BookingStatusCompleted).
			WillReturnRows(bookingRows(b, domain.BookingStatusCompleted))

		updated, err := repo.UpdateBookingStatus(ctx, b.ID, domain.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, updated.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cancelled booking is terminal", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE bookings SET status = `).
			WithArgs(b.ID, domain.BookingStatusConfirmed).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`FROM bookings WHERE id = `).
			WithArgs(b.ID).
			WillReturnRows(bookingRows(b, domain.BookingStatusCancelled))

		_, err := repo.UpdateBookingStatus(ctx, b.ID, domain.BookingStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Booking not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE bookings SET status = `).
			WithArgs("missing", domain.BookingStatusCancelled).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`FROM bookings WHERE id = `).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateBookingStatus(ctx, "missing", domain.BookingStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_ListBookingsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBookingRepository(mock)
	b := testBooking()

	mock.ExpectQuery(`FROM bookings WHERE user_id = `).
		WithArgs("u1").
		WillReturnRows(bookingRows(b, domain.BookingStatusConfirmed))

	bookings, err := repo.ListBookingsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "10:00", bookings[0].StartTime)
	assert.Equal(t, "2026-10-20", bookings[0].BookingDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}
