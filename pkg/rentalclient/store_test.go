package rentalclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

// fakeAPI сервер в памяти. err, если задан, возвращается любой операцией
type fakeAPI struct {
	rooms  []*domain.Room
	nextID int64
	err    error
}

func (f *fakeAPI) ListRooms(context.Context) ([]*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]*domain.Room(nil), f.rooms...), nil
}

func (f *fakeAPI) CreateRoom(_ context.Context, in *RoomInput) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	return &domain.Room{ID: f.nextID, Number: in.Number, Building: in.Building, Area: in.Area, Price: in.Price,
		Status: domain.RoomAvailable}, nil
}

func (f *fakeAPI) DeleteRoom(context.Context, int64) error { return f.err }

func (f *fakeAPI) BookRoom(_ context.Context, id int64, _ *BookingInput) (*domain.Room, error) {
	return f.withStatus(id, domain.RoomBooked)
}

func (f *fakeAPI) CancelBooking(_ context.Context, id int64) (*domain.Room, error) {
	return f.withStatus(id, domain.RoomAvailable)
}

func (f *fakeAPI) CreateContract(_ context.Context, id int64, in *ContractInput) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	end, err := domain.ParseContractDate(in.EndDate)
	if err != nil {
		return nil, ErrBadRequest
	}
	return &domain.Room{
		ID: id, Number: "101", Building: "A", Status: domain.RoomOccupied,
		Tenant:   &domain.Tenant{FullName: in.Tenant, Phone: in.TenantPhone},
		Contract: &domain.Contract{StartDate: domain.DateOnly(now), EndDate: end},
	}, nil
}

func (f *fakeAPI) ExtendContract(context.Context, int64, int) (*domain.Room, error) {
	return nil, errors.New("not used")
}

func (f *fakeAPI) EndContract(_ context.Context, id int64) (*domain.Room, error) {
	return f.withStatus(id, domain.RoomAvailable)
}

func (f *fakeAPI) MarkNotificationSent(context.Context, int64) (*domain.Room, error) {
	return nil, errors.New("not used")
}

func (f *fakeAPI) withStatus(id int64, status domain.RoomStatus) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Room{ID: id, Number: "101", Building: "A", Status: status}, nil
}

func readyStore(t *testing.T, rooms ...*domain.Room) (*Store, *fakeAPI) {
	api := &fakeAPI{rooms: rooms, nextID: int64(len(rooms))}
	store := NewStore(api)
	require.NoError(t, store.Init(context.Background()))
	return store, api
}

func TestInit_Failed(t *testing.T) {
	store := NewStore(&fakeAPI{err: ErrUnavailable})

	err := store.Init(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	state, stateErr := store.State()
	assert.Equal(t, StateFailed, state)
	assert.ErrorIs(t, stateErr, ErrUnavailable)
	assert.Empty(t, store.Rooms())
}

func TestDispatch_BeforeInit(t *testing.T) {
	store := NewStore(&fakeAPI{})

	_, err := store.Dispatch(context.Background(), CancelBooking{RoomID: 1})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestDispatch_AppliesConfirmedRoom(t *testing.T) {
	store, _ := readyStore(t, &domain.Room{ID: 1, Number: "101", Building: "A", Status: domain.RoomAvailable})

	room, err := store.Dispatch(context.Background(), BookRoom{RoomID: 1, Input: BookingInput{
		TenantName: "Lê Văn C", Phone: "0911", DepositAmount: decimal.NewFromInt(1000000),
	}})
	require.NoError(t, err)
	assert.Equal(t, domain.RoomBooked, room.Status)

	stored, ok := store.Room(1)
	require.True(t, ok)
	assert.Equal(t, domain.RoomBooked, stored.Status)
}

func TestDispatch_RejectedLeavesStateUnchanged(t *testing.T) {
	store, api := readyStore(t, &domain.Room{ID: 1, Number: "101", Building: "A", Status: domain.RoomAvailable})
	api.err = ErrConflict

	_, err := store.Dispatch(context.Background(), CreateContract{RoomID: 1, Input: ContractInput{
		Tenant: "A", TenantPhone: "1", EndDate: "2026-01-14",
	}})
	assert.ErrorIs(t, err, ErrConflict)

	stored, _ := store.Room(1)
	assert.Equal(t, domain.RoomAvailable, stored.Status)
	assert.Nil(t, stored.Tenant)
}

func TestDispatch_AddAndDelete(t *testing.T) {
	store, _ := readyStore(t, &domain.Room{ID: 1, Number: "101", Building: "A", Status: domain.RoomAvailable})

	added, err := store.Dispatch(context.Background(), AddRoom{Input: RoomInput{
		Number: "201", Building: "B", Area: 18, Price: decimal.NewFromInt(3000000),
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), added.ID)
	assert.Equal(t, []string{"A", "B"}, store.Buildings())

	_, err = store.Dispatch(context.Background(), DeleteRoom{RoomID: 1})
	require.NoError(t, err)

	rooms := store.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(2), rooms[0].ID)
}

func TestDerivedViews_FollowState(t *testing.T) {
	store, _ := readyStore(t,
		&domain.Room{ID: 1, Number: "101", Building: "A", Status: domain.RoomAvailable},
		&domain.Room{ID: 2, Number: "102", Building: "A", Status: domain.RoomAvailable},
	)

	notifications, err := store.Notifications(now)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	_, err = store.Dispatch(context.Background(), CreateContract{RoomID: 2, Input: ContractInput{
		Tenant: "Nguyễn Văn A", TenantPhone: "0901", EndDate: "2025-03-20",
	}})
	require.NoError(t, err)

	visible := store.Visible(domain.RoomFilter{Status: "occupied"})
	require.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)

	notifications, err = store.Notifications(now)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.ContractExpiring, notifications[0].Status)

	_, err = store.Dispatch(context.Background(), EndContract{RoomID: 2})
	require.NoError(t, err)

	notifications, err = store.Notifications(now)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
