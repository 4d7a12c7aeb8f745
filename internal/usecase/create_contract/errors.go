package create_contract

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_contract: room not found")

	// ErrRoomOccupied возвращается, когда у комнаты уже есть действующий договор
	ErrRoomOccupied = errors.New("create_contract: room is already occupied")

	// ErrInvalidDateRange возвращается, когда дата начала позже даты окончания
	ErrInvalidDateRange = errors.New("create_contract: start date must not be after end date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_contract: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_contract: internal error")
)
