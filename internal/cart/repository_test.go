package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemColumns() []string {
	return []string{
		"id", "user_id", "product_id", "name", "price",
		"quantity", "selected_color", "selected_size",
		"created_at", "updated_at",
	}
}

func TestRepository_GetItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(itemColumns()).
			AddRow("cart-1", 1, "prod-1", "Nón lá Huế", 150000, 2, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT .* FROM carts c").
			WithArgs(1).
			WillReturnRows(rows)

		items, err := repo.GetItems(context.Background(), 1)
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 300000, items[0].LineSubtotal())
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM carts c").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetItems(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_GetItemByVariant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	color := "Đỏ"
	params := AddParams{UserID: 1, ProductID: "prod-1", Quantity: 1, SelectedColor: &color}

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(itemColumns()).
			AddRow("cart-1", 1, "prod-1", "Khăn lụa", 320000, 1, color, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT .* FROM carts c").
			WithArgs(1, "prod-1", &color, nil).
			WillReturnRows(rows)

		it, err := repo.GetItemByVariant(context.Background(), params)
		assert.NoError(t, err)
		require.NotNil(t, it)
		assert.Equal(t, "cart-1", it.ID)
	})

	t.Run("NotFoundIsNil", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM carts c").
			WillReturnRows(sqlmock.NewRows(itemColumns()))

		it, err := repo.GetItemByVariant(context.Background(), params)
		assert.NoError(t, err)
		assert.Nil(t, it)
	})
}

func TestRepository_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE carts SET quantity").
			WithArgs(5, "cart-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateQuantity(context.Background(), 1, "cart-1", 5))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE carts SET quantity").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateQuantity(context.Background(), 1, "ghost", 5)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestRepository_RemoveAndClear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Remove", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts WHERE id").
			WithArgs("cart-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveItem(context.Background(), 1, "cart-1"))
	})

	t.Run("RemoveNotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts WHERE id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.RemoveItem(context.Background(), 1, "ghost"), ErrCartItemNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM carts WHERE user_id").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 3))

		assert.NoError(t, repo.Clear(context.Background(), 1))
	})
}
