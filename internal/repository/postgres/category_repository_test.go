package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	t.Run("создание категории", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCategoryRepository(db)

		category := &domain.Category{Name: "Drinks", Icon: "cup", Visible: true}
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Drinks", "cup", true).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		require.NoError(t, repo.Create(context.Background(), category))
		assert.Equal(t, int64(4), category.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("список категорий", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCategoryRepository(db)

		mock.ExpectQuery("SELECT id, name, icon, visible").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "visible"}).
				AddRow(1, "Drinks", "cup", true).
				AddRow(2, "Snacks", "", false))

		categories, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.False(t, categories[1].Visible)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("удаление запрещено, пока есть товары", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCategoryRepository(db)

		mock.ExpectExec("DELETE FROM categories").WithArgs(int64(1)).
			WillReturnError(pgErr(pgForeignKeyViolation, "products_category_id_fkey"))

		assert.ErrorIs(t, repo.Delete(context.Background(), 1), domain.ErrRestricted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
