package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomOccupied возвращается при попытке удалить занятую комнату
	ErrRoomOccupied = errors.New("room is occupied")

	// ErrRoomNotOccupied возвращается, когда операция требует действующего договора
	ErrRoomNotOccupied = errors.New("room is not occupied")

	// ErrDuplicateRoom возвращается, когда номер комнаты в здании уже занят
	ErrDuplicateRoom = errors.New("room with this number already exists in building")

	// ErrConflict возвращается, когда состояние комнаты изменилось параллельным запросом
	ErrConflict = errors.New("room state changed, reload and retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
