package book_room

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	bookRoom "github.com/m04kA/SMC-RentalService/internal/usecase/book_room"
)

// BookRoomRequest HTTP request model
type BookRoomRequest struct {
	TenantName    string          `json:"tenantName"`
	Phone         string          `json:"phone"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	DepositDate   string          `json:"depositDate,omitempty"` // "2025-03-10", по умолчанию сегодня
	Note          string          `json:"note,omitempty"`
}

// BookRoomResponse HTTP response model
type BookRoomResponse struct {
	Room    models.RoomResponse    `json:"room"`
	Booking models.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты депозита)
func (r *BookRoomRequest) ToUseCaseRequest(roomID int64) (*bookRoom.Request, error) {
	var depositDate *time.Time
	if strings.TrimSpace(r.DepositDate) != "" {
		d, err := domain.ParseContractDate(r.DepositDate)
		if err != nil {
			return nil, err
		}
		depositDate = &d
	}

	return &bookRoom.Request{
		RoomID:        roomID,
		TenantName:    r.TenantName,
		Phone:         r.Phone,
		DepositAmount: r.DepositAmount,
		DepositDate:   depositDate,
		Note:          r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.Response) *BookRoomResponse {
	return &BookRoomResponse{
		Room:    models.FromDomainRoom(resp.Room),
		Booking: models.FromDomainBooking(resp.Booking),
	}
}
