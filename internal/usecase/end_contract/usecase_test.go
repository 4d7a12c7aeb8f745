package end_contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/testutil"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

func setup(rooms ...*domain.Room) (*UseCase, *testutil.RoomRepo) {
	repo := testutil.NewRoomRepo(rooms...)
	return NewUseCase(repo, &testutil.TxManager{Rooms: repo}, &testutil.OperationRecorder{}, logger.NewNop()), repo
}

func TestExecute_ClearsTenancy(t *testing.T) {
	uc, repo := setup(testutil.OccupiedRoom(1, "A", "101", "Nguyễn Văn A", testutil.Date(2025, 12, 31)))

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.RoomAvailable, resp.Room.Status)
	assert.Nil(t, resp.Room.Tenant)
	assert.Nil(t, resp.Room.Contract)
	require.NotNil(t, resp.FormerTenant)
	assert.Equal(t, "Nguyễn Văn A", resp.FormerTenant.FullName)
	assert.Equal(t, testutil.Date(2025, 12, 31), resp.FormerContract.EndDate)

	stored := repo.Room(1)
	assert.Equal(t, domain.RoomAvailable, stored.Status)
	assert.NoError(t, stored.CheckInvariant())
}

func TestExecute_NotOccupied(t *testing.T) {
	booked := testutil.AvailableRoom(1, "A", "101")
	booked.Status = domain.RoomBooked
	uc, repo := setup(booked)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrRoomNotOccupied)
	assert.Equal(t, domain.RoomBooked, repo.Room(1).Status)
}

func TestExecute_InvalidID(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 4})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
