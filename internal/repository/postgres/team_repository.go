package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/club-shop/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (number, start_date)
		VALUES ($1, $2)
		RETURNING id
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, team.Number, team.StartDate).Scan(&team.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadyExistsError("team with number %d already exists", team.Number)
		}
		if isCheckViolation(err) {
			return domain.NewValidationError("number must be a positive integer")
		}
		return translateDataError(err)
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, number, start_date
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Number,
		&team.StartDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team with id %d", id))
		}
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, number, start_date
		FROM teams
		ORDER BY number DESC
	`

	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Number, &team.StartDate); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewRestrictedError("team with id %d still has members", id)
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("team with id %d", id))
	}

	return nil
}
