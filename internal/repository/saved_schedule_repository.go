package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/uniplan/course-planner-api/internal/models"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

// SavedScheduleRepository persists schedule snapshots for anonymous devices.
type SavedScheduleRepository struct {
	db *sqlx.DB
}

func NewSavedScheduleRepository(db *sqlx.DB) *SavedScheduleRepository {
	return &SavedScheduleRepository{db: db}
}

// ListByDeviceTerm returns all schedules owned by a device for a term, newest first.
func (r *SavedScheduleRepository) ListByDeviceTerm(ctx context.Context, deviceID, term string) ([]models.SavedSchedule, error) {
	query := `
		SELECT id, device_id, term, name, sections, blocks, is_default, created_at, updated_at
		FROM saved_schedules
		WHERE device_id = $1 AND term = $2
		ORDER BY created_at DESC`

	schedules := []models.SavedSchedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, deviceID, term); err != nil {
		return nil, fmt.Errorf("list saved schedules: %w", err)
	}

	return schedules, nil
}

// FindByID looks up a single schedule scoped to the owning device.
func (r *SavedScheduleRepository) FindByID(ctx context.Context, deviceID, id string) (*models.SavedSchedule, error) {
	query := `
		SELECT id, device_id, term, name, sections, blocks, is_default, created_at, updated_at
		FROM saved_schedules
		WHERE id = $1 AND device_id = $2`

	var schedule models.SavedSchedule
	if err := r.db.GetContext(ctx, &schedule, query, id, deviceID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("find saved schedule: %w", err)
	}

	return &schedule, nil
}

// Create inserts a new schedule snapshot and returns the stored row.
func (r *SavedScheduleRepository) Create(ctx context.Context, schedule *models.SavedSchedule) (*models.SavedSchedule, error) {
	query := `
		INSERT INTO saved_schedules (id, device_id, term, name, sections, blocks, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, device_id, term, name, sections, blocks, is_default, created_at, updated_at`

	var stored models.SavedSchedule
	err := r.db.GetContext(ctx, &stored, query,
		schedule.ID,
		schedule.DeviceID,
		schedule.Term,
		schedule.Name,
		schedule.Sections,
		schedule.Blocks,
		schedule.IsDefault,
	)
	if err != nil {
		return nil, fmt.Errorf("create saved schedule: %w", err)
	}

	return &stored, nil
}

// Delete removes a schedule owned by the device.
func (r *SavedScheduleRepository) Delete(ctx context.Context, deviceID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_schedules WHERE id = $1 AND device_id = $2`, id, deviceID)
	if err != nil {
		return fmt.Errorf("delete saved schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete saved schedule rows affected: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}

	return nil
}

// SetDefault marks one schedule as the device default for its term and clears
// the flag on every other schedule the device saved for that term.
func (r *SavedScheduleRepository) SetDefault(ctx context.Context, deviceID, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set default: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var term string
	if err := tx.GetContext(ctx, &term, `SELECT term FROM saved_schedules WHERE id = $1 AND device_id = $2`, id, deviceID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.ErrNotFound
		}
		return fmt.Errorf("lookup schedule term: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE saved_schedules SET is_default = FALSE, updated_at = NOW() WHERE device_id = $1 AND term = $2 AND is_default = TRUE`,
		deviceID, term,
	); err != nil {
		return fmt.Errorf("clear default flags: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE saved_schedules SET is_default = TRUE, updated_at = NOW() WHERE id = $1 AND device_id = $2`,
		id, deviceID,
	); err != nil {
		return fmt.Errorf("set default flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set default: %w", err)
	}

	return nil
}
