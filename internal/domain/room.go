package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// RoomStatus represents the occupancy status of a room
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomBooked    RoomStatus = "booked"
	RoomOccupied  RoomStatus = "occupied"
)

// IsValid returns true if the status is one of the known room statuses
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomBooked, RoomOccupied:
		return true
	}
	return false
}

// Room represents a rentable room together with its current tenant and contract
type Room struct {
	ID          int64
	Number      string
	Building    string
	Area        float64
	Price       decimal.Decimal
	Status      RoomStatus
	Amenities   []string
	Description string

	// Tenant и Contract заполнены тогда и только тогда, когда Status == RoomOccupied
	Tenant   *Tenant
	Contract *Contract

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tenant represents the primary tenant bound to an occupied room
type Tenant struct {
	FullName  string
	Phone     string
	Email     string
	IDCard    string
	BirthDate *time.Time
	Hometown  string
	Members   []TenantMember
}

// TenantMember represents a co-resident listed on the contract
type TenantMember struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	IDCard   string `json:"idCard,omitempty"`
}

// Code returns the display code of the room: building + number (e.g. "A" + "101" = "A101")
func (r *Room) Code() string {
	return r.Building + r.Number
}

// IsAvailable returns true if the room can be booked
func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}

// IsBooked returns true if the room holds a deposit but no contract yet
func (r *Room) IsBooked() bool {
	return r.Status == RoomBooked
}

// IsOccupied returns true if the room has an active tenant and contract
func (r *Room) IsOccupied() bool {
	return r.Status == RoomOccupied
}

// CanBeDeleted returns true if the room may be removed from the inventory
func (r *Room) CanBeDeleted() bool {
	return r.Status != RoomOccupied
}

// CanBeBooked returns true if a deposit can be taken for the room
func (r *Room) CanBeBooked() bool {
	return r.Status == RoomAvailable
}

// CanStartContract returns true if a contract can be created for the room
func (r *Room) CanStartContract() bool {
	return r.Status == RoomAvailable || r.Status == RoomBooked
}

// HasContractEndDate returns true if the room carries a contract with an end date
func (r *Room) HasContractEndDate() bool {
	return r.Contract != nil && !r.Contract.EndDate.IsZero()
}

// CheckInvariant verifies that tenant/contract data is present if and only if the room is occupied
func (r *Room) CheckInvariant() error {
	if !r.Status.IsValid() {
		return ErrInvalidRoomStatus
	}
	hasTenancy := r.Tenant != nil || r.Contract != nil
	if r.IsOccupied() && (r.Tenant == nil || r.Contract == nil) {
		return ErrTenancyInvariant
	}
	if !r.IsOccupied() && hasTenancy {
		return ErrTenancyInvariant
	}
	return nil
}

// ValidateDetails checks the descriptive fields shared by room creation and update
func (r *Room) ValidateDetails() error {
	number := strings.TrimSpace(r.Number)
	building := strings.TrimSpace(r.Building)

	switch {
	case number == "":
		return fmt.Errorf("%w: number is required", ErrInvalidRoomDetails)
	case utf8.RuneCountInString(number) > MaxRoomNumberLength:
		return fmt.Errorf("%w: number must be at most %d characters", ErrInvalidRoomDetails, MaxRoomNumberLength)
	case building == "":
		return fmt.Errorf("%w: building is required", ErrInvalidRoomDetails)
	case utf8.RuneCountInString(building) > MaxBuildingLength:
		return fmt.Errorf("%w: building must be at most %d characters", ErrInvalidRoomDetails, MaxBuildingLength)
	case math.IsNaN(r.Area) || math.IsInf(r.Area, 0) || r.Area <= 0:
		return fmt.Errorf("%w: area must be a positive number", ErrInvalidRoomDetails)
	case roundArea(r.Area) < MinArea || roundArea(r.Area) > MaxArea:
		return fmt.Errorf("%w: area must be between %.2f and %.2f", ErrInvalidRoomDetails, MinArea, MaxArea)
	case !r.Price.IsPositive():
		return fmt.Errorf("%w: price must be positive", ErrInvalidRoomDetails)
	case !FitsMoneyColumn(r.Price):
		return fmt.Errorf("%w: price must have at most %d decimal places and not exceed %s",
			ErrInvalidRoomDetails, MoneyScale, MaxMoneyAmount.StringFixed(MoneyScale))
	case utf8.RuneCountInString(r.Description) > MaxDescriptionLength:
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidRoomDetails, MaxDescriptionLength)
	case len(r.Amenities) > MaxAmenities:
		return fmt.Errorf("%w: at most %d amenities allowed", ErrInvalidRoomDetails, MaxAmenities)
	}

	return nil
}

// roundArea округляет площадь до сотых так же, как колонка NUMERIC(8,2)
func roundArea(area float64) float64 {
	return math.Round(area*100) / 100
}

// ClearTenancy drops tenant and contract data and makes the room available again
func (r *Room) ClearTenancy() {
	r.Tenant = nil
	r.Contract = nil
	r.Status = RoomAvailable
}

// NormalizeAmenities trims amenity tags, drops empty ones and removes duplicates
// keeping the first occurrence order
func NormalizeAmenities(amenities []string) []string {
	result := make([]string, 0, len(amenities))
	seen := make(map[string]struct{}, len(amenities))

	for _, a := range amenities {
		tag := strings.TrimSpace(a)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, tag)
	}

	return result
}
