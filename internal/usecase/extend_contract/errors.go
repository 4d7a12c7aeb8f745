package extend_contract

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("extend_contract: room not found")

	// ErrRoomNotOccupied возвращается, когда у комнаты нет действующего договора
	ErrRoomNotOccupied = errors.New("extend_contract: room is not occupied")

	// ErrNoEndDate возвращается, когда у договора не задана дата окончания
	ErrNoEndDate = errors.New("extend_contract: contract has no end date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_contract: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_contract: internal error")
)
