package book_room

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на бронирование комнаты (внесение депозита)
type Request struct {
	RoomID        int64
	TenantName    string
	Phone         string
	DepositAmount decimal.Decimal
	DepositDate   *time.Time // Дата депозита, по умолчанию сегодня
	Note          string
}

// Response модель ответа: комната в статусе booked и созданная бронь
type Response struct {
	Room    *domain.Room
	Booking *domain.Booking
}
