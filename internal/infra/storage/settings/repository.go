package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/barbearia/barbershop-service/internal/domain"
	"github.com/barbearia/barbershop-service/pkg/dbmetrics"
	"github.com/barbearia/barbershop-service/pkg/psqlbuilder"
)

// Repository is the PostgreSQL-backed settings store. Key uniqueness is
// guaranteed by the primary key; Upsert is a single atomic statement.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a settings repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the stored value for a key.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("setting_value").
		From("app_settings").
		Where(squirrel.Eq{"setting_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}
	return value, nil
}

// Upsert stores the value for a key, inserting or overwriting in a single
// atomic statement.
func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("app_settings").
		Columns("setting_key", "setting_value").
		Values(key, value).
		Suffix("ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// List returns every setting record ordered by key.
func (r *Repository) List(ctx context.Context) ([]*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("setting_key", "setting_value").
		From("app_settings").
		OrderBy("setting_key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Setting, 0)
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}
