package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the state of a deposit record
type BookingStatus string

const (
	// BookingActive депозит внесен, комната удерживается
	BookingActive BookingStatus = "active"
	// BookingConverted по депозиту заключен договор
	BookingConverted BookingStatus = "converted"
	// BookingCancelled бронь снята, комната снова свободна
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a deposit taken to hold an available room before a contract is signed
type Booking struct {
	ID            uuid.UUID
	RoomID        int64
	TenantName    string
	Phone         string
	DepositAmount decimal.Decimal
	DepositDate   time.Time
	Status        BookingStatus
	Note          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the deposit still holds the room
func (b *Booking) IsActive() bool {
	return b.Status == BookingActive
}
