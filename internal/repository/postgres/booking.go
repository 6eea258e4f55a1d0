package postgres

import (
	"context"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
)

// Столбцы DATE и TIME читаются строками в формате API
const bookingColumns = `id, user_id, court_id, to_char(booking_date, 'YYYY-MM-DD'),
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), total_price, status, created_at, updated_at`

// BookingRepository реализует репозиторий бронирований.
// Отсутствие пересечений гарантирует ограничение bookings_no_overlap.
type BookingRepository struct {
	db DBTX
}

// NewBookingRepository создает новый BookingRepository
func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.UserID, &b.CourtID, &b.BookingDate, &b.StartTime, &b.EndTime,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// HasConflict проверяет пересечение интервала с неотмененными бронированиями корта
func (r *BookingRepository) HasConflict(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
	var exists bool
	err := executor(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE court_id = $1 AND booking_date = $2::date AND status <> 'cancelled'
			  AND start_time < $4::time AND $3::time < end_time
		)`,
		courtID, date, startTime, endTime,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check slot of court %q: %w", courtID, err)
	}
	return exists, nil
}

// CreateBooking сохраняет бронирование. Пересечение с другим бронированием
// отклоняется базой и возвращается как ErrSlotConflict.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	err := executor(ctx, r.db).QueryRow(ctx,
		`INSERT INTO bookings (id, user_id, court_id, booking_date, start_time, end_time, total_price, status)
		 VALUES ($1, $2, $3, $4::date, $5::time, $6::time, $7, $8)
		 RETURNING created_at, updated_at`,
		booking.ID, booking.UserID, booking.CourtID, booking.BookingDate,
		booking.StartTime, booking.EndTime, booking.TotalPrice, booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrSlotConflict
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCourtNotFound
		}
		return fmt.Errorf("repository: failed to create booking %s: %w", booking.ID, err)
	}
	return nil
}

// GetBooking получает бронирование по ID
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := scanBooking(executor(ctx, r.db).QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`,
		id,
	))
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("repository: failed to get booking %s: %w", id, err)
	}
	return b, nil
}

// ListBookingsByUser возвращает бронирования пользователя, новые первыми
func (r *BookingRepository) ListBookingsByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

// ListBookings возвращает все бронирования, новые первыми
func (r *BookingRepository) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := executor(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		if isInvalidInput(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus меняет статус. Отмененное бронирование не меняется:
// его повторная активация могла бы нарушить отсутствие пересечений.
func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	db := executor(ctx, r.db)

	b, err := scanBooking(db.QueryRow(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND status <> 'cancelled'
		 RETURNING `+bookingColumns,
		id, status,
	))
	if err == nil {
		return b, nil
	}
	if !notFound(err) {
		return nil, fmt.Errorf("repository: failed to update status of booking %s: %w", id, err)
	}

	// Строка не обновлена: либо бронирования нет, либо оно уже отменено
	if _, err := r.GetBooking(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrInvalidTransition
}
