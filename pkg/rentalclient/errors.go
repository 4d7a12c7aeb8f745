package rentalclient

import "errors"

var (
	// ErrBadRequest сервер отклонил запрос из-за некорректных данных
	ErrBadRequest = errors.New("rental client: bad request")

	// ErrNotFound комната или бронь не найдена
	ErrNotFound = errors.New("rental client: not found")

	// ErrConflict операция недопустима в текущем статусе комнаты
	ErrConflict = errors.New("rental client: conflict")

	// ErrUnavailable сервер или его зависимость недоступны
	ErrUnavailable = errors.New("rental client: service unavailable")

	// ErrInvalidResponse ответ сервера не удалось разобрать
	ErrInvalidResponse = errors.New("rental client: invalid response")

	// ErrNotReady действие отправлено до успешной загрузки коллекции
	ErrNotReady = errors.New("rental client: store is not loaded")
)

// errorBody тело ошибки сервера
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
