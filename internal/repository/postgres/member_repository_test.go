package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberColumns = []string{"id", "name", "email", "balance", "id", "number", "start_date"}

func TestMemberRepository_Create(t *testing.T) {
	t.Run("успешное создание участника", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		member := &domain.TeamMember{Name: "Anna", Email: "anna@example.com", TeamID: 2}

		mock.ExpectQuery("INSERT INTO team_members").
			WithArgs("Anna", "anna@example.com", int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(10, "0.00"))

		err := repo.Create(context.Background(), member)

		require.NoError(t, err)
		assert.Equal(t, int64(10), member.ID)
		assert.True(t, member.Balance.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: имя уже занято в команде", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("INSERT INTO team_members").
			WillReturnError(pgErr(pgUniqueViolation, "unique_team_member_name"))

		err := repo.Create(context.Background(), &domain.TeamMember{Name: "Anna", TeamID: 2})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не существует", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("INSERT INTO team_members").
			WillReturnError(pgErr(pgForeignKeyViolation, "team_members_team_id_fkey"))

		err := repo.Create(context.Background(), &domain.TeamMember{Name: "Anna", TeamID: 42})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: имя длиннее колонки", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("INSERT INTO team_members").
			WillReturnError(pgErr(pgStringTooLong, ""))

		err := repo.Create(context.Background(), &domain.TeamMember{Name: strings.Repeat("a", 51), TeamID: 2})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_GetByID(t *testing.T) {
	t.Run("участник найден вместе с командой", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM team_members m").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(memberColumns).
				AddRow(1, "Anna", "anna@example.com", "-12.50", 2, 12, time.Now()))

		member, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Anna", member.Name)
		assert.Equal(t, int64(2), member.TeamID)
		assert.Equal(t, 12, member.Team.Number)
		assert.Equal(t, "-12.50", member.Balance.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("участник не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM team_members m").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(memberColumns))

		_, err := repo.GetByID(context.Background(), 5)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_AdjustBalance(t *testing.T) {
	t.Run("баланс изменяется одним UPDATE", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("UPDATE team_members\\s+SET balance = balance \\+ \\$2").
			WithArgs(int64(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("-20.00"))

		balance, err := repo.AdjustBalance(context.Background(), 1, dec("-20.00"))

		require.NoError(t, err)
		assert.True(t, balance.Equal(dec("-20")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("участник не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("UPDATE team_members").
			WithArgs(int64(9), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := repo.AdjustBalance(context.Background(), 9, dec("5"))

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemberRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMemberRepository(db)

	mock.ExpectExec("DELETE FROM team_members").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
