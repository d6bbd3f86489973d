package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{
		"id", "name", "slug", "category_id", "c.name",
		"price", "stock", "description", "image_url", "status",
		"created_at", "updated_at",
	}
}

func TestRepository_GetProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success_NoFilter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(productColumns()).
			AddRow(1, "Kopi Arabica", "kopi-arabica", 3, "Beverages", 45000, 10, nil, nil, "active", now, now).
			AddRow(2, "Teh Hijau", "teh-hijau", 3, "Beverages", 20000, 0, nil, nil, "active", now, now)

		mock.ExpectQuery("SELECT (.+) FROM products p").WillReturnRows(rows)

		products, total, err := repo.GetProducts(context.Background(), ListOptions{})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, products, 2)
		assert.Equal(t, "Kopi Arabica", products[0].Name)
		assert.Equal(t, 45000, products[0].Price)
	})

	t.Run("Success_WithFilter", func(t *testing.T) {
		filter := "kopi"
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p").
			WithArgs("%kopi%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(productColumns()).
			AddRow(1, "Kopi Arabica", "kopi-arabica", 3, "Beverages", 45000, 10, nil, nil, "active", now, now)

		mock.ExpectQuery("SELECT (.+) FROM products p").
			WithArgs("%kopi%", int32(20), int32(0)).
			WillReturnRows(rows)

		products, total, err := repo.GetProducts(context.Background(), ListOptions{Filter: &filter})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, products, 1)
	})

	t.Run("CountError", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p").
			WillReturnError(errors.New("db error"))

		_, _, err := repo.GetProducts(context.Background(), ListOptions{})
		assert.Error(t, err)
	})
}

func TestRepository_GetProductByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(1, "Kopi Arabica", "kopi-arabica", 3, "Beverages", 45000, 10, nil, nil, "active", now, now)

		mock.ExpectQuery("SELECT (.+) FROM products p").WithArgs(uint(1)).WillReturnRows(rows)

		variantRows := sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "image_url"}).
			AddRow(5, 1, "250g", 45000, 8, nil).
			AddRow(6, 1, "500g", 80000, 0, nil)

		mock.ExpectQuery("SELECT (.+) FROM product_variants").WithArgs(uint(1)).WillReturnRows(variantRows)

		p, err := repo.GetProductByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Kopi Arabica", p.Name)
		require.Len(t, p.Variants, 2)
		assert.Equal(t, uint(5), p.Variants[0].ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products p").
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		_, err := repo.GetProductByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_GetVariantByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success_OnlyActive", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "image_url"}).
			AddRow(5, 1, "250g", 45000, 8, nil)

		mock.ExpectQuery("SELECT (.+) FROM product_variants v").
			WithArgs(uint(5)).
			WillReturnRows(rows)

		v, err := repo.GetVariantByID(context.Background(), GetVariantOptions{VariantID: 5, OnlyActive: true})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 8, v.Stock)
	})

	t.Run("NotFound_ReturnsNil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM product_variants v").
			WithArgs(uint(77)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock", "image_url"}))

		v, err := repo.GetVariantByID(context.Background(), GetVariantOptions{VariantID: 77})
		assert.NoError(t, err)
		assert.Nil(t, v)
	})
}
