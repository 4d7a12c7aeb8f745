package notifier

import "errors"

var (
	// ErrRejected возвращается, когда шлюз отклонил напоминание (некорректный номер, пустой текст)
	ErrRejected = errors.New("notifier client: reminder rejected")

	// ErrUnavailable возвращается, когда шлюз недоступен или отвечает 5xx после всех повторов
	ErrUnavailable = errors.New("notifier client: gateway unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
