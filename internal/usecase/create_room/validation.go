package create_room

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// buildRoom собирает новую свободную комнату из запроса и проверяет поля
func buildRoom(req *Request) (*domain.Room, error) {
	room := &domain.Room{
		Number:      strings.TrimSpace(req.Number),
		Building:    strings.TrimSpace(req.Building),
		Area:        req.Area,
		Price:       req.Price,
		Status:      domain.RoomAvailable,
		Amenities:   domain.NormalizeAmenities(req.Amenities),
		Description: strings.TrimSpace(req.Description),
	}

	if err := room.ValidateDetails(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return room, nil
}
