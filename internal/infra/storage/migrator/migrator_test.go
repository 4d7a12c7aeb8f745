package migrator

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

var files = fstest.MapFS{
	"001_init.sql":     {Data: []byte("CREATE TABLE rooms (id BIGSERIAL PRIMARY KEY)")},
	"002_bookings.sql": {Data: []byte("CREATE TABLE bookings (id UUID PRIMARY KEY)")},
	"README.md":        {Data: []byte("not a migration")},
}

func setup(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return New(wrapped, txmanager.NewTransactionManager(wrapped), files), mock
}

func TestUp_AppliesPendingInOrder(t *testing.T) {
	m, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001_init.sql"))
	mock.ExpectExec("CREATE TABLE bookings").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("002_bookings.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"002_bookings.sql"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUp_FailureRollsBack(t *testing.T) {
	m, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec("CREATE TABLE rooms").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := m.Up(context.Background())
	assert.ErrorIs(t, err, ErrApplyMigration)
	assert.Nil(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
