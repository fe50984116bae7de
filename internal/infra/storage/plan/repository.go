package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barbearia/barbershop-service/internal/domain"
	"github.com/barbearia/barbershop-service/pkg/dbmetrics"
	"github.com/barbearia/barbershop-service/pkg/psqlbuilder"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repository is the PostgreSQL-backed plan store.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a plan repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new plan.
func (r *Repository) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("plans").
		Columns(
			"name",
			"price",
			"day_rule",
			"min_days_between_appointments",
			"weekly_limit",
			"active",
		).
		Values(
			p.Name,
			p.Price,
			p.DayRule,
			p.MinDaysBetweenAppointments,
			p.WeeklyLimit,
			p.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if isPQError(err, uniqueViolation) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// GetByID fetches a plan by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName fetches a plan by case-insensitive name match.
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(name) = LOWER(?)", name))
}

func (r *Repository) getOne(ctx context.Context, cond interface{}) (*domain.Plan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectPlans().Where(cond).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPlan(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan plan: %v", ErrScanRow, err)
	}
	return p, nil
}

// List returns all plans ordered by name.
func (r *Repository) List(ctx context.Context) ([]*domain.Plan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectPlans().OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return plans, nil
}

// Update overwrites the mutable fields of a plan.
func (r *Repository) Update(ctx context.Context, p *domain.Plan) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("plans").
		Set("name", p.Name).
		Set("price", p.Price).
		Set("day_rule", p.DayRule).
		Set("min_days_between_appointments", p.MinDaysBetweenAppointments).
		Set("weekly_limit", p.WeeklyLimit).
		Set("active", p.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isPQError(err, uniqueViolation) {
		return ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Delete removes a plan. Plans referenced by subscriptions are protected by
// a foreign key and surface as ErrPlanInUse.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isPQError(err, foreignKeyViolation) {
		return ErrPlanInUse
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// CountInactive returns the number of deactivated plans.
func (r *Repository) CountInactive(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("plans").
		Where(squirrel.Eq{"active": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountInactive - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountInactive - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

func selectPlans() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"price",
		"day_rule",
		"min_days_between_appointments",
		"weekly_limit",
		"active",
		"created_at",
		"updated_at",
	).From("plans")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var p domain.Plan
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.DayRule,
		&p.MinDaysBetweenAppointments,
		&p.WeeklyLimit,
		&p.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}

func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
