package create_room

import (
	"github.com/shopspring/decimal"

	createRoom "github.com/m04kA/SMC-RentalService/internal/usecase/create_room"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Number      string          `json:"number"`
	Building    string          `json:"building"`
	Area        float64         `json:"area"`
	Price       decimal.Decimal `json:"price"`
	Amenities   []string        `json:"amenities,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRoomRequest) ToUseCaseRequest() *createRoom.Request {
	return &createRoom.Request{
		Number:      r.Number,
		Building:    r.Building,
		Area:        r.Area,
		Price:       r.Price,
		Amenities:   r.Amenities,
		Description: r.Description,
	}
}
