package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestCreate_GeneratesID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	b := &domain.Booking{
		RoomID:        3,
		TenantName:    "Lê Văn C",
		Phone:         "0911222333",
		DepositAmount: decimal.NewFromInt(2000000),
		DepositDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        domain.BookingActive,
	}

	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_SecondActiveBooking(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Booking{RoomID: 3, Status: domain.BookingActive})
	assert.ErrorIs(t, err, ErrActiveBookingExists)
}

func TestGetActiveByRoom(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE room_id = \\$1 AND status = \\$2").
		WithArgs(int64(3), "active").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			id.String(), int64(3), "Lê Văn C", "0911222333", "2000000", now, "active", "", now, now,
		))

	got, err := repo.GetActiveByRoom(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.IsActive())
	assert.True(t, decimal.NewFromInt(2000000).Equal(got.DepositAmount))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got.DepositDate)
}

func TestGetActiveByRoom_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetActiveByRoom(context.Background(), 3)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByRoom(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE room_id = \\$1 ORDER BY created_at DESC").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(uuid.NewString(), int64(3), "B", "2", "1000000", now, "active", "", now, now).
			AddRow(uuid.NewString(), int64(3), "A", "1", "1500000", now, "cancelled", "đổi ý", now, now))

	got, err := repo.ListByRoom(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.BookingCancelled, got[1].Status)
	assert.Equal(t, "đổi ý", got[1].Note)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE bookings SET status = \\$1").
		WithArgs("converted", id, "active").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.BookingActive, domain.BookingConverted))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Conflict(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.BookingActive, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrStateConflict)
}
