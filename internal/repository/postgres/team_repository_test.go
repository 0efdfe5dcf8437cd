package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTeamRepo создает мок БД и репозиторий для Team
func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func TestTeamRepository_Create(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
		team := &domain.Team{Number: 12, StartDate: start}

		mock.ExpectQuery("INSERT INTO teams").
			WithArgs(12, start).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		err := repo.Create(context.Background(), team)

		require.NoError(t, err)
		assert.Equal(t, int64(3), team.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: номер команды занят", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("INSERT INTO teams").
			WillReturnError(pgErr(pgUniqueViolation, "teams_number_key"))

		err := repo.Create(context.Background(), &domain.Team{Number: 12, StartDate: time.Now()})

		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_GetByID(t *testing.T) {
	t.Run("команда найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		start := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT id, number, start_date").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "number", "start_date"}).AddRow(1, 11, start))

		team, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 11, team.Number)
		assert.Equal(t, "EST 11.0", team.DisplayName())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("SELECT id, number, start_date").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "number", "start_date"}))

		team, err := repo.GetByID(context.Background(), 99)

		assert.Nil(t, team)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_List(t *testing.T) {
	repo, mock := setupTeamRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, number, start_date").
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "start_date"}).
			AddRow(2, 12, now).
			AddRow(1, 11, now.AddDate(-1, 0, 0)))

	teams, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, 12, teams[0].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM teams").WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: в команде есть участники", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM teams").WithArgs(int64(1)).
			WillReturnError(pgErr(pgForeignKeyViolation, "team_members_team_id_fkey"))

		err := repo.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, domain.ErrRestricted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectExec("DELETE FROM teams").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 5), domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
