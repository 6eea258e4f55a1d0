package memory

import (
	"context"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

func overlapsBooking(st *state, courtID, date string, start, end int) bool {
	for _, b := range st.bookings {
		if b.CourtID != courtID || b.BookingDate != date || b.Status == domain.BookingStatusCancelled {
			continue
		}
		bStart, err := domain.ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := domain.ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		if domain.Overlaps(start, end, bStart, bEnd) {
			return true
		}
	}
	return false
}

func clockRange(startTime, endTime string) (int, int, error) {
	start, err := domain.ParseClock(startTime)
	if err != nil {
		return 0, 0, domain.NewValidationError("startTime", err.Error())
	}
	end, err := domain.ParseClock(endTime)
	if err != nil {
		return 0, 0, domain.NewValidationError("endTime", err.Error())
	}
	return start, end, nil
}

// HasConflict проверяет пересечение с неотмененными бронированиями
func (s *Store) HasConflict(_ context.Context, courtID, date, startTime, endTime string) (bool, error) {
	start, end, err := clockRange(startTime, endTime)
	if err != nil {
		return false, err
	}
	var conflict bool
	err = s.read(func(st *state) error {
		conflict = overlapsBooking(st, courtID, date, start, end)
		return nil
	})
	return conflict, err
}

// CreateBooking сохраняет бронирование. Проверка пересечения и вставка
// выполняются в одной критической секции.
func (s *Store) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	start, end, err := clockRange(booking.StartTime, booking.EndTime)
	if err != nil {
		return err
	}
	return s.write(ctx, func(st *state) error {
		if _, ok := st.courts[booking.CourtID]; !ok {
			return domain.ErrCourtNotFound
		}
		if booking.Status != domain.BookingStatusCancelled && overlapsBooking(st, booking.CourtID, booking.BookingDate, start, end) {
			return domain.ErrSlotConflict
		}
		now := s.now()
		booking.CreatedAt, booking.UpdatedAt = now, now
		st.bookings[booking.ID] = copyBooking(booking)
		return nil
	})
}

// GetBooking получает бронирование по ID
func (s *Store) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	var found *domain.Booking
	err := s.read(func(st *state) error {
		b, ok := st.bookings[id]
		if !ok {
			return domain.ErrBookingNotFound
		}
		found = copyBooking(b)
		return nil
	})
	return found, err
}

// ListBookingsByUser возвращает бронирования пользователя, новые первыми
func (s *Store) ListBookingsByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	return s.listBookings(func(b *domain.Booking) bool { return b.UserID == userID })
}

// ListBookings возвращает все бронирования, новые первыми
func (s *Store) ListBookings(_ context.Context) ([]*domain.Booking, error) {
	return s.listBookings(func(*domain.Booking) bool { return true })
}

func (s *Store) listBookings(match func(b *domain.Booking) bool) ([]*domain.Booking, error) {
	var result []*domain.Booking
	err := s.read(func(st *state) error {
		for _, b := range st.bookings {
			if match(b) {
				result = append(result, copyBooking(b))
			}
		}
		return nil
	})
	newestFirst(result,
		func(b *domain.Booking) time.Time { return b.CreatedAt },
		func(b *domain.Booking) string { return b.ID })
	return result, err
}

// UpdateBookingStatus меняет статус неотмененного бронирования
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	var updated *domain.Booking
	err := s.write(ctx, func(st *state) error {
		b, ok := st.bookings[id]
		if !ok {
			return domain.ErrBookingNotFound
		}
		if b.Status == domain.BookingStatusCancelled {
			return domain.ErrInvalidTransition
		}
		b.Status = status
		b.UpdatedAt = s.now()
		updated = copyBooking(b)
		return nil
	})
	return updated, err
}
