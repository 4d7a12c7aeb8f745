package cancel_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("cancel_booking: room not found")

	// ErrRoomNotBooked возвращается, когда у комнаты нет брони
	ErrRoomNotBooked = errors.New("cancel_booking: room is not booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
