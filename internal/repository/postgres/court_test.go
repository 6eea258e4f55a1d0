package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourtRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCourtRepository(mock)
	ctx := context.Background()
	now := time.Now()
	columns := []string{"id", "name", "venue", "address", "price_per_hour", "status", "created_at", "updated_at"}

	t.Run("List open courts", func(t *testing.T) {
		mock.ExpectQuery(`FROM courts WHERE NOT`).
			WithArgs(true).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("court-1", "Court 1", "Main hall", "1 Sport st", decimal.NewFromInt(200), domain.CourtStatusOpen, now, now))

		courts, err := repo.ListCourts(ctx, true)
		require.NoError(t, err)
		require.Len(t, courts, 1)
		assert.True(t, courts[0].IsOpen())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update missing court", func(t *testing.T) {
		court := &domain.Court{ID: "ghost", Name: "Ghost", PricePerHour: decimal.NewFromInt(100), Status: domain.CourtStatusClosed}

		mock.ExpectQuery(`UPDATE courts`).
			WithArgs(court.ID, court.Name, court.Venue, court.Address, court.PricePerHour, court.Status).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateCourt(ctx, court)
		assert.ErrorIs(t, err, domain.ErrCourtNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
