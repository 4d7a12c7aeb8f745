package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateRoom возвращается, когда комната с таким номером уже есть в здании
	ErrDuplicateRoom = errors.New("room.repository: room with this number already exists in building")

	// ErrStateConflict возвращается, когда условное обновление не затронуло ни одной строки:
	// статус комнаты изменился между чтением и записью
	ErrStateConflict = errors.New("room.repository: room state changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")

	// ErrEncodeMembers возвращается, если не удалось сериализовать список проживающих
	ErrEncodeMembers = errors.New("room.repository: failed to encode tenant members")
)
