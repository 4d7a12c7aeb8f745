package cancel_booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/testutil"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

func bookedRoom(id int64) *domain.Room {
	r := testutil.AvailableRoom(id, "A", "101")
	r.Status = domain.RoomBooked
	return r
}

func setup(rooms []*domain.Room, bookings ...*domain.Booking) (*UseCase, *testutil.RoomRepo, *testutil.BookingRepo) {
	roomRepo := testutil.NewRoomRepo(rooms...)
	bookingRepo := testutil.NewBookingRepo(bookings...)
	tx := &testutil.TxManager{Rooms: roomRepo, Bookings: bookingRepo}
	return NewUseCase(roomRepo, bookingRepo, tx, &testutil.OperationRecorder{}, logger.NewNop()), roomRepo, bookingRepo
}

func TestExecute_CancelsActiveBooking(t *testing.T) {
	booking := &domain.Booking{
		ID:            uuid.New(),
		RoomID:        1,
		TenantName:    "Lê Văn C",
		DepositAmount: decimal.NewFromInt(2000000),
		Status:        domain.BookingActive,
	}
	uc, rooms, bookings := setup([]*domain.Room{bookedRoom(1)}, booking)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.RoomAvailable, resp.Room.Status)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.BookingCancelled, resp.Booking.Status)

	assert.Equal(t, domain.RoomAvailable, rooms.Room(1).Status)
	assert.Equal(t, domain.BookingCancelled, bookings.All()[0].Status)
}

func TestExecute_BookedWithoutRecord(t *testing.T) {
	uc, rooms, _ := setup([]*domain.Room{bookedRoom(1)})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1})
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	assert.Equal(t, domain.RoomAvailable, rooms.Room(1).Status)
}

func TestExecute_RejectsNotBooked(t *testing.T) {
	uc, rooms, _ := setup([]*domain.Room{
		testutil.AvailableRoom(1, "A", "101"),
		testutil.OccupiedRoom(2, "A", "102", "X", testutil.Date(2025, 12, 31)),
	})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrRoomNotBooked)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 2})
	assert.ErrorIs(t, err, ErrRoomNotBooked)

	assert.Equal(t, domain.RoomOccupied, rooms.Room(2).Status)
	assert.Equal(t, 0, rooms.Writes)
}
