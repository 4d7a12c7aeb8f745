package cancel_booking

import (
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	cancelBooking "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Room    models.RoomResponse     `json:"room"`
	Booking *models.BookingResponse `json:"booking,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	result := &CancelBookingResponse{Room: models.FromDomainRoom(resp.Room)}
	if resp.Booking != nil {
		b := models.FromDomainBooking(resp.Booking)
		result.Booking = &b
	}
	return result
}
