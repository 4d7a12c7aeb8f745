package extend_contract

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на продление договора
type Request struct {
	RoomID int64
	Months int
}

// Response модель ответа с продленным договором
type Response struct {
	Room            *domain.Room
	PreviousEndDate time.Time
}
