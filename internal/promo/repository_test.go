package promo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "kind", "value", "minimum_order_amount", "max_discount",
		"start_date", "end_date", "is_active", "usage_count", "created_at",
	})
}

func TestRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("CaseInsensitive", func(t *testing.T) {
		rows := promoRows().AddRow(
			"promo-1", "WELCOME10", "PERCENTAGE", 10, 0, nil,
			time.Now().AddDate(0, -1, 0), time.Now().AddDate(0, 1, 0),
			true, 3, time.Now(),
		)

		mock.ExpectQuery("SELECT .* FROM promo_codes").
			WithArgs("welcome10").
			WillReturnRows(rows)

		p, err := repo.GetByCode(context.Background(), "welcome10")
		assert.NoError(t, err)
		assert.Equal(t, "WELCOME10", p.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM promo_codes").
			WithArgs("GHOST").
			WillReturnRows(promoRows())

		_, err := repo.GetByCode(context.Background(), "GHOST")
		assert.ErrorIs(t, err, ErrPromoNotFound)
	})
}

func TestRepository_IncrementUsage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE promo_codes").
			WithArgs("WELCOME10").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.IncrementUsage(context.Background(), "WELCOME10"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE promo_codes").
			WithArgs("GHOST").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.IncrementUsage(context.Background(), "GHOST"), ErrPromoNotFound)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		active := false
		rows := promoRows().AddRow(
			"promo-1", "WELCOME10", "PERCENTAGE", 10, 0, nil,
			time.Now(), time.Now(), false, 3, time.Now(),
		)

		mock.ExpectQuery("UPDATE promo_codes SET is_active").
			WithArgs(false, "promo-1").
			WillReturnRows(rows)

		p, err := repo.Update(context.Background(), UpdatePromoParams{PromoID: "promo-1", IsActive: &active})
		assert.NoError(t, err)
		assert.False(t, p.IsActive)
	})

	t.Run("NothingToUpdate", func(t *testing.T) {
		_, err := repo.Update(context.Background(), UpdatePromoParams{PromoID: "promo-1"})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})
}
