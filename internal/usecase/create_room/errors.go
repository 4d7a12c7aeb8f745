package create_room

import "errors"

var (
	// ErrDuplicateRoom возвращается, когда в здании уже есть комната с таким номером
	ErrDuplicateRoom = errors.New("create_room: room with this number already exists in building")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_room: internal error")
)
