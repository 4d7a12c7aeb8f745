package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNotifications(t *testing.T) {
	sentAt := day(2025, 3, 1)

	expiring := occupiedRoom(1, "A", "101", "Nguyễn Văn A", DateOnly(now.AddDate(0, 0, 10)))
	expired := occupiedRoom(2, "A", "102", "Lê Văn C", DateOnly(now.AddDate(0, 0, -5)))
	expired.Contract.NotificationSent = true
	expired.Contract.LastNotificationDate = &sentAt
	active := occupiedRoom(3, "B", "201", "Phạm D", DateOnly(now.AddDate(0, 0, 31)))

	got, err := DeriveNotifications([]*Room{expiring, expired, active}, now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].RoomID)
	assert.Equal(t, "A101", got[0].RoomCode)
	assert.Equal(t, ContractExpiring, got[0].Status)
	assert.Equal(t, 10, got[0].DaysUntilExpiry)
	assert.Equal(t, "Nguyễn Văn A", got[0].TenantName)
	assert.False(t, got[0].NotificationSent)

	assert.Equal(t, int64(2), got[1].RoomID)
	assert.Equal(t, ContractExpired, got[1].Status)
	assert.Equal(t, -5, got[1].DaysUntilExpiry)
	assert.Equal(t, 5, got[1].DaysOverdue())
	assert.True(t, got[1].NotificationSent)
	assert.Equal(t, &sentAt, got[1].LastNotificationDate)
}

func TestDeriveNotifications_SkipsNonOccupied(t *testing.T) {
	past := DateOnly(now.AddDate(0, 0, -3))

	// Даты договора на неоккупированных комнатах не должны давать уведомлений
	rooms := []*Room{
		{ID: 1, Status: RoomAvailable, Contract: &Contract{EndDate: past}},
		{ID: 2, Status: RoomBooked, Contract: &Contract{EndDate: past}},
		{ID: 3, Status: RoomOccupied, Tenant: &Tenant{FullName: "X"}, Contract: &Contract{}},
		nil,
	}

	got, err := DeriveNotifications(rooms, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeriveNotifications_EmptyCollection(t *testing.T) {
	got, err := DeriveNotifications(nil, now)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeriveNotifications_DisappearsAfterExtension(t *testing.T) {
	r := occupiedRoom(1, "A", "101", "X", DateOnly(now.AddDate(0, 0, 3)))

	got, err := DeriveNotifications([]*Room{r}, now)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r.Contract.EndDate = AddMonths(r.Contract.EndDate, 12, MonthRollover)

	got, err = DeriveNotifications([]*Room{r}, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeriveNotifications_InvalidNow(t *testing.T) {
	r := occupiedRoom(1, "A", "101", "X", day(2025, 1, 1))

	_, err := DeriveNotifications([]*Room{r}, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidContractDate)
}
