package domain

import (
	"fmt"
	"time"
)

// ContractNotification is a derived record for an occupied room whose contract is expiring or expired.
// It is never stored: NotificationSent and LastNotificationDate are read from the room's contract.
type ContractNotification struct {
	RoomID               int64
	RoomCode             string
	Building             string
	TenantName           string
	TenantPhone          string
	TenantEmail          string
	ContractEndDate      time.Time
	DaysUntilExpiry      int
	Status               ContractStatus
	NotificationSent     bool
	LastNotificationDate *time.Time
}

// DaysOverdue returns how many days ago the contract expired (0 if not expired)
func (n *ContractNotification) DaysOverdue() int {
	if n.DaysUntilExpiry >= 0 {
		return 0
	}
	return -n.DaysUntilExpiry
}

// DeriveNotifications builds one notification per occupied room whose contract is expiring or expired.
// Rooms that are not occupied are skipped regardless of any date fields they carry.
// Order follows the input collection.
func DeriveNotifications(rooms []*Room, now time.Time) ([]ContractNotification, error) {
	result := make([]ContractNotification, 0)

	for _, r := range rooms {
		if r == nil || !r.IsOccupied() || !r.HasContractEndDate() {
			continue
		}

		days, err := DaysUntilExpiry(r.Contract.EndDate, now)
		if err != nil {
			return nil, fmt.Errorf("room id=%d: %w", r.ID, err)
		}

		status := StatusForDays(days)
		if status == ContractActive {
			continue
		}

		n := ContractNotification{
			RoomID:               r.ID,
			RoomCode:             r.Code(),
			Building:             r.Building,
			ContractEndDate:      r.Contract.EndDate,
			DaysUntilExpiry:      days,
			Status:               status,
			NotificationSent:     r.Contract.NotificationSent,
			LastNotificationDate: r.Contract.LastNotificationDate,
		}
		if r.Tenant != nil {
			n.TenantName = r.Tenant.FullName
			n.TenantPhone = r.Tenant.Phone
			n.TenantEmail = r.Tenant.Email
		}

		result = append(result, n)
	}

	return result, nil
}
