package send_reminders

import "errors"

var (
	// ErrNotifierDisabled возвращается, когда шлюз рассылки не настроен
	ErrNotifierDisabled = errors.New("send_reminders: notifier is disabled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_reminders: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminders: internal error")
)
