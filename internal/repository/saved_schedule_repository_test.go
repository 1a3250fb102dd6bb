package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/course-planner-api/internal/models"
	appErrors "github.com/uniplan/course-planner-api/pkg/errors"
)

func newSavedScheduleRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func savedScheduleColumns() []string {
	return []string{"id", "device_id", "term", "name", "sections", "blocks", "is_default", "created_at", "updated_at"}
}

func TestSavedScheduleRepositoryListByDeviceTerm(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	rows := sqlmock.NewRows(savedScheduleColumns()).
		AddRow("sched-1", "device-1", "2026-fall", "Plan A", []byte(`[]`), "Mon-480-60", true, time.Now(), time.Now()).
		AddRow("sched-2", "device-1", "2026-fall", "Plan B", []byte(`[]`), "", false, time.Now(), time.Now())

	mock.ExpectQuery("SELECT id, device_id, term, name, sections, blocks, is_default, created_at, updated_at").
		WithArgs("device-1", "2026-fall").
		WillReturnRows(rows)

	list, err := repo.ListByDeviceTerm(context.Background(), "device-1", "2026-fall")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Plan A", list[0].Name)
	assert.True(t, list[0].IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectQuery("SELECT id, device_id, term, name, sections, blocks, is_default, created_at, updated_at").
		WithArgs("missing", "device-1").
		WillReturnRows(sqlmock.NewRows(savedScheduleColumns()))

	_, err := repo.FindByID(context.Background(), "device-1", "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_schedules")).
		WithArgs("sched-1", "device-1", "2026-fall", "Plan A", []byte(`[{"dept":"CMPT"}]`), "Mon-480-60", false).
		WillReturnRows(sqlmock.NewRows(savedScheduleColumns()).
			AddRow("sched-1", "device-1", "2026-fall", "Plan A", []byte(`[{"dept":"CMPT"}]`), "Mon-480-60", false, time.Now(), time.Now()))

	stored, err := repo.Create(context.Background(), &models.SavedSchedule{
		ID:       "sched-1",
		DeviceID: "device-1",
		Term:     "2026-fall",
		Name:     "Plan A",
		Sections: []byte(`[{"dept":"CMPT"}]`),
		Blocks:   "Mon-480-60",
	})
	require.NoError(t, err)
	assert.Equal(t, "sched-1", stored.ID)
	assert.Equal(t, "device-1", stored.DeviceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_schedules WHERE id = $1 AND device_id = $2")).
		WithArgs("sched-1", "device-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "device-1", "sched-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositoryDeleteNotFound(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_schedules WHERE id = $1 AND device_id = $2")).
		WithArgs("sched-1", "device-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "device-2", "sched-1")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositorySetDefault(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT term FROM saved_schedules WHERE id = $1 AND device_id = $2")).
		WithArgs("sched-2", "device-1").
		WillReturnRows(sqlmock.NewRows([]string{"term"}).AddRow("2026-fall"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE saved_schedules SET is_default = FALSE")).
		WithArgs("device-1", "2026-fall").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE saved_schedules SET is_default = TRUE")).
		WithArgs("sched-2", "device-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetDefault(context.Background(), "device-1", "sched-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositorySetDefaultNotFound(t *testing.T) {
	db, mock, cleanup := newSavedScheduleRepoMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT term FROM saved_schedules WHERE id = $1 AND device_id = $2")).
		WithArgs("missing", "device-1").
		WillReturnRows(sqlmock.NewRows([]string{"term"}))
	mock.ExpectRollback()

	err := repo.SetDefault(context.Background(), "device-1", "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
