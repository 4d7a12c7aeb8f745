package rentalclient

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// toDomainRoom восстанавливает domain комнату из ответа API.
// Даты договора приходят строками YYYY-MM-DD
func toDomainRoom(r *models.RoomResponse) (*domain.Room, error) {
	room := &domain.Room{
		ID:          r.ID,
		Number:      r.Number,
		Building:    r.Building,
		Area:        r.Area,
		Price:       r.Price,
		Status:      domain.RoomStatus(r.Status),
		Amenities:   r.Amenities,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if !room.IsOccupied() {
		return room, nil
	}

	tenant := &domain.Tenant{
		FullName: ptr.Value(r.Tenant),
		Phone:    ptr.Value(r.TenantPhone),
		Email:    ptr.Value(r.TenantEmail),
		IDCard:   ptr.Value(r.TenantIDCard),
		Hometown: ptr.Value(r.TenantHometown),
	}
	for _, m := range r.TenantMembers {
		tenant.Members = append(tenant.Members, domain.TenantMember{FullName: m.FullName, Phone: m.Phone, IDCard: m.IDCard})
	}
	birth, err := parseOptional(r.TenantBirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d birth date: %v", ErrInvalidResponse, r.ID, err)
	}
	tenant.BirthDate = birth

	start, err := parseOptional(r.ContractStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d start date: %v", ErrInvalidResponse, r.ID, err)
	}
	end, err := parseOptional(r.ContractEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d end date: %v", ErrInvalidResponse, r.ID, err)
	}
	lastSent, err := parseOptional(r.LastNotificationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d notification date: %v", ErrInvalidResponse, r.ID, err)
	}

	contract := &domain.Contract{
		CCCDFront:            ptr.Value(r.CCCDFront),
		CCCDBack:             ptr.Value(r.CCCDBack),
		LastNotificationDate: lastSent,
	}
	if start != nil {
		contract.StartDate = *start
	}
	if end != nil {
		contract.EndDate = *end
	}
	if r.Deposit != nil {
		contract.Deposit = *r.Deposit
	}
	if r.NotificationSent != nil {
		contract.NotificationSent = *r.NotificationSent
	}

	room.Tenant = tenant
	room.Contract = contract
	return room, nil
}

func toDomainRooms(list []models.RoomResponse) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0, len(list))
	for i := range list {
		room, err := toDomainRoom(&list[i])
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func parseOptional(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := domain.ParseContractDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
