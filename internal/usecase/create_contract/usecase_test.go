package create_contract

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/testutil"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func setup(rooms []*domain.Room, bookings ...*domain.Booking) (*UseCase, *testutil.RoomRepo, *testutil.BookingRepo) {
	roomRepo := testutil.NewRoomRepo(rooms...)
	bookingRepo := testutil.NewBookingRepo(bookings...)
	tx := &testutil.TxManager{Rooms: roomRepo, Bookings: bookingRepo}

	uc := NewUseCase(roomRepo, bookingRepo, tx, testutil.FixedClock{At: now}, domain.MonthRollover,
		&testutil.OperationRecorder{}, logger.NewNop())
	return uc, roomRepo, bookingRepo
}

func request(roomID int64) *Request {
	return &Request{
		RoomID: roomID,
		Tenant: TenantInput{
			FullName: "Nguyễn Văn A",
			Phone:    "0901234567",
			Members:  []domain.TenantMember{{FullName: "Trần Thị B"}},
		},
		StartDate: testutil.Date(2025, 1, 14),
		EndDate:   ptr.Ptr(testutil.Date(2026, 1, 14)),
	}
}

func TestExecute_DirectFromAvailable(t *testing.T) {
	uc, rooms, _ := setup([]*domain.Room{testutil.AvailableRoom(1, "A", "101")})

	resp, err := uc.Execute(context.Background(), request(1))
	require.NoError(t, err)

	assert.Equal(t, domain.RoomOccupied, resp.Room.Status)
	assert.Nil(t, resp.ConvertedBooking)
	assert.NoError(t, resp.Room.CheckInvariant())

	stored := rooms.Room(1)
	assert.Equal(t, domain.RoomOccupied, stored.Status)
	assert.Equal(t, "Nguyễn Văn A", stored.Tenant.FullName)
	assert.Equal(t, testutil.Date(2026, 1, 14), stored.Contract.EndDate)
	assert.False(t, stored.Contract.NotificationSent)
	require.Len(t, stored.Tenant.Members, 1)
}

func TestExecute_FromBookedConvertsBooking(t *testing.T) {
	room := testutil.AvailableRoom(1, "A", "101")
	room.Status = domain.RoomBooked
	booking := &domain.Booking{
		ID:            uuid.New(),
		RoomID:        1,
		TenantName:    "Nguyễn Văn A",
		DepositAmount: decimal.NewFromInt(2000000),
		Status:        domain.BookingActive,
	}
	uc, rooms, bookings := setup([]*domain.Room{room}, booking)

	resp, err := uc.Execute(context.Background(), request(1))
	require.NoError(t, err)

	assert.Equal(t, domain.RoomOccupied, resp.Room.Status)
	require.NotNil(t, resp.ConvertedBooking)
	assert.Equal(t, domain.BookingConverted, resp.ConvertedBooking.Status)
	assert.True(t, decimal.NewFromInt(2000000).Equal(rooms.Room(1).Contract.Deposit))
	assert.Equal(t, domain.BookingConverted, bookings.All()[0].Status)
}

func TestExecute_ExplicitDepositWins(t *testing.T) {
	room := testutil.AvailableRoom(1, "A", "101")
	room.Status = domain.RoomBooked
	booking := &domain.Booking{ID: uuid.New(), RoomID: 1, DepositAmount: decimal.NewFromInt(2000000), Status: domain.BookingActive}
	uc, rooms, _ := setup([]*domain.Room{room}, booking)

	req := request(1)
	req.Deposit = ptr.Ptr(decimal.NewFromInt(7000000))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7000000).Equal(rooms.Room(1).Contract.Deposit))
}

func TestExecute_DurationMonths(t *testing.T) {
	uc, rooms, _ := setup([]*domain.Room{testutil.AvailableRoom(1, "A", "101")})

	req := request(1)
	req.EndDate = nil
	req.DurationMonths = 6

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2025, 7, 14), rooms.Room(1).Contract.EndDate)
}

func TestExecute_RejectsOccupied(t *testing.T) {
	occupied := testutil.OccupiedRoom(1, "A", "101", "Lê Văn C", testutil.Date(2025, 12, 31))
	uc, rooms, _ := setup([]*domain.Room{occupied})

	_, err := uc.Execute(context.Background(), request(1))
	assert.ErrorIs(t, err, ErrRoomOccupied)
	assert.Equal(t, "Lê Văn C", rooms.Room(1).Tenant.FullName)
}

func TestExecute_StartAfterEnd(t *testing.T) {
	uc, rooms, _ := setup([]*domain.Room{testutil.AvailableRoom(1, "A", "101")})

	req := request(1)
	req.StartDate = testutil.Date(2026, 2, 1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, 0, rooms.Writes)
	assert.Equal(t, domain.RoomAvailable, rooms.Room(1).Status)
}

func TestExecute_Validation(t *testing.T) {
	for name, mutate := range map[string]func(r *Request){
		"no tenant name":   func(r *Request) { r.Tenant.FullName = "" },
		"no tenant phone":  func(r *Request) { r.Tenant.Phone = " " },
		"no end":           func(r *Request) { r.EndDate = nil },
		"negative deposit": func(r *Request) { r.Deposit = ptr.Ptr(decimal.NewFromInt(-1)) },
		"deposit scale":    func(r *Request) { r.Deposit = ptr.Ptr(decimal.RequireFromString("100.005")) },
		"member w/o name":  func(r *Request) { r.Tenant.Members = []domain.TenantMember{{Phone: "1"}} },
	} {
		t.Run(name, func(t *testing.T) {
			uc, rooms, _ := setup([]*domain.Room{testutil.AvailableRoom(1, "A", "101")})

			req := request(1)
			mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, rooms.Writes)
		})
	}
}
