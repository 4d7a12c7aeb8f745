package book_room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("book_room: room not found")

	// ErrRoomNotAvailable возвращается, когда комната не свободна (уже забронирована или занята)
	ErrRoomNotAvailable = errors.New("book_room: room is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_room: internal error")
)
