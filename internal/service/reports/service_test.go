package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RentalService/internal/testutil"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newService(rooms ...*domain.Room) (*Service, *testutil.RoomRepo) {
	repo := testutil.NewRoomRepo(rooms...)
	return NewService(repo, testutil.FixedClock{At: now}, logger.NewNop()), repo
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExportRooms(t *testing.T) {
	svc, _ := newService(
		testutil.OccupiedRoom(1, "A", "101", "Nguyễn Văn A", testutil.Date(2025, 3, 20)),
		testutil.AvailableRoom(2, "A", "102"),
		testutil.AvailableRoom(3, "B", "201"),
	)

	data, err := svc.ExportRooms(context.Background(), &models.ListRoomsRequest{Building: "A"})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{SheetRooms, SheetNotifications}, f.GetSheetList())

	rows, err := f.GetRows(SheetRooms)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header + 2 rooms of building A")
	assert.Equal(t, RoomsHeader[0], rows[0][0])
	assert.Equal(t, "A101", rows[1][0])
	assert.Equal(t, "Đang thuê", rows[1][5])
	assert.Equal(t, "Nguyễn Văn A", rows[1][7])
	assert.Equal(t, "2025-03-20", rows[1][10])
	assert.Equal(t, "A102", rows[2][0])
	assert.Equal(t, "Trống", rows[2][5])

	notifications, err := f.GetRows(SheetNotifications)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "A101", notifications[1][0])
	assert.Equal(t, "10", notifications[1][5])
	assert.Equal(t, "Sắp hết hạn", notifications[1][6])
	assert.Equal(t, "Chưa", notifications[1][7])
}

func TestExportRooms_Empty(t *testing.T) {
	svc, _ := newService()

	data, err := svc.ExportRooms(context.Background(), &models.ListRoomsRequest{})
	require.NoError(t, err)

	rows, err := openWorkbook(t, data).GetRows(SheetRooms)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportRooms_Errors(t *testing.T) {
	svc, repo := newService()

	_, err := svc.ExportRooms(context.Background(), &models.ListRoomsRequest{Status: "rented"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.Errors["List"] = errors.New("db down")
	_, err = svc.ExportRooms(context.Background(), &models.ListRoomsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
