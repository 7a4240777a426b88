package slotconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/dbmetrics"
	"github.com/hospital/turns-service/pkg/psqlbuilder"
)

const table = "specialty_slots_config"

var columns = []string{
	"id",
	"specialty_id",
	"interval_minutes",
	"advance_booking_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек генерации слотов по специальностям
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// bySpecialty условие на specialty_id (NULL для глобальной конфигурации)
func bySpecialty(specialtyID *uuid.UUID) squirrel.Eq {
	if specialtyID == nil {
		return squirrel.Eq{"specialty_id": nil}
	}
	// uuid.UUID - массив, squirrel развернул бы его в IN (...)
	return squirrel.Eq{"specialty_id": specialtyID.String()}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (*domain.SpecialtySlotsConfig, error) {
	var config domain.SpecialtySlotsConfig
	var specialtyID uuid.NullUUID
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&specialtyID,
		&config.IntervalMinutes,
		&config.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if specialtyID.Valid {
		id := specialtyID.UUID
		config.SpecialtyID = &id
	}
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// GetBySpecialty получает конфигурацию специальности; nil - глобальная конфигурация
func (r *Repository) GetBySpecialty(ctx context.Context, specialtyID *uuid.UUID) (*domain.SpecialtySlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(bySpecialty(specialtyID)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialty - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialty - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Приоритет применения конфигурации:
// 1. Конфигурация конкретной специальности
// 2. Глобальная конфигурация (specialty_id IS NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, specialtyID uuid.UUID) (*domain.SpecialtySlotsConfig, error) {
	// 1. Конфигурация специальности
	config, err := r.GetBySpecialty(ctx, &specialtyID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (specialty): %v", ErrExecQuery, err)
	}

	// 2. Глобальная конфигурация
	config, err = r.GetBySpecialty(ctx, nil)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (global): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// GetAll получает все конфигурации, глобальная первой
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SpecialtySlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("specialty_id ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.SpecialtySlotsConfig, 0)
	for rows.Next() {
		config, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert обновляет конфигурацию специальности или создает ее, если строки нет.
// ON CONFLICT не подходит: NULL в specialty_id не участвует в уникальности.
func (r *Repository) Upsert(ctx context.Context, config *domain.SpecialtySlotsConfig) (*domain.SpecialtySlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("interval_minutes", config.IntervalMinutes).
		Set("advance_booking_days", config.AdvanceBookingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(bySpecialty(config.SpecialtyID)).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: Upsert - execute update: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Insert(table).
		Columns("specialty_id", "interval_minutes", "advance_booking_days").
		Values(nullableID(config.SpecialtyID), config.IntervalMinutes, config.AdvanceBookingDays).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// Delete удаляет конфигурацию специальности; nil - глобальная конфигурация
func (r *Repository) Delete(ctx context.Context, specialtyID *uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(bySpecialty(specialtyID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func nullableID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}
