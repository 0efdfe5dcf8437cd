package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

const memberSelect = `
	SELECT m.id, m.name, m.email, m.balance, t.id, t.number, t.start_date
	FROM team_members m
	JOIN teams t ON m.team_id = t.id
`

func scanMember(row interface{ Scan(dest ...any) error }) (*domain.TeamMember, error) {
	member := &domain.TeamMember{Team: &domain.Team{}}
	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.Balance,
		&member.Team.ID,
		&member.Team.Number,
		&member.Team.StartDate,
	)
	if err != nil {
		return nil, err
	}
	member.TeamID = member.Team.ID
	return member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (name, email, team_id)
		VALUES ($1, $2, $3)
		RETURNING id, balance
	`

	err := executorFrom(ctx, r.executor).QueryRowContext(
		ctx,
		query,
		member.Name,
		member.Email,
		member.TeamID,
	).Scan(&member.ID, &member.Balance)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("member %q already exists in team %d", member.Name, member.TeamID)
		}
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError(fmt.Sprintf("team with id %d", member.TeamID))
		}
		return translateDataError(err)
	}

	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	member, err := scanMember(executorFrom(ctx, r.executor).QueryRowContext(ctx, memberSelect+" WHERE m.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team member with id %d", id))
		}
		return nil, err
	}
	return member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	rows, err := executorFrom(ctx, r.executor).QueryContext(ctx, memberSelect+" ORDER BY m.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	result, err := executorFrom(ctx, r.executor).ExecContext(ctx, "DELETE FROM team_members WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("team member with id %d", id))
	}

	return nil
}

// AdjustBalance - одно UPDATE-выражение, без чтения баланса в приложение
func (r *memberRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE team_members
		SET balance = balance + $2
		WHERE id = $1
		RETURNING balance
	`

	var balance decimal.Decimal
	err := executorFrom(ctx, r.executor).QueryRowContext(ctx, query, id, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.NewNotFoundError(fmt.Sprintf("team member with id %d", id))
		}
		return decimal.Zero, translateDataError(err)
	}

	return balance, nil
}
