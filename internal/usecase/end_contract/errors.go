package end_contract

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("end_contract: room not found")

	// ErrRoomNotOccupied возвращается, когда у комнаты нет действующего договора
	ErrRoomNotOccupied = errors.New("end_contract: room is not occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("end_contract: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("end_contract: internal error")
)
