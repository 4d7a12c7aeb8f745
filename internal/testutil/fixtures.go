package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Date возвращает дату в 00:00 UTC
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AvailableRoom свободная комната без арендатора
func AvailableRoom(id int64, building, number string) *domain.Room {
	return &domain.Room{
		ID:        id,
		Number:    number,
		Building:  building,
		Area:      20,
		Price:     decimal.NewFromInt(3500000),
		Status:    domain.RoomAvailable,
		Amenities: []string{"wifi"},
	}
}

// OccupiedRoom занятая комната с договором на год, заканчивающимся в end
func OccupiedRoom(id int64, building, number, tenant string, end time.Time) *domain.Room {
	r := AvailableRoom(id, building, number)
	r.Status = domain.RoomOccupied
	r.Tenant = &domain.Tenant{
		FullName: tenant,
		Phone:    "0901234567",
		Email:    "tenant@example.com",
		IDCard:   "079123456789",
		Hometown: "Huế",
	}
	r.Contract = &domain.Contract{
		StartDate: end.AddDate(-1, 0, 0),
		EndDate:   end,
		Deposit:   decimal.NewFromInt(7000000),
	}
	return r
}
