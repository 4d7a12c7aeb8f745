package create_room

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание комнаты
type Request struct {
	Number      string
	Building    string
	Area        float64
	Price       decimal.Decimal
	Amenities   []string
	Description string
}

// Response модель ответа с созданной комнатой
type Response struct {
	Room *domain.Room
}
