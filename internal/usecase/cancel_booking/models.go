package cancel_booking

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на снятие брони
type Request struct {
	RoomID int64
}

// Response модель ответа: комната снова свободна
type Response struct {
	Room *domain.Room
	// Booking отмененная бронь, nil если записи о брони не было
	Booking *domain.Booking
}
