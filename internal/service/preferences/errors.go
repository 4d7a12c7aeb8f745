package preferences

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ключе или пользователе
	ErrInvalidInput = errors.New("preferences: invalid input data")

	// ErrStoreDisabled возвращается, когда хранилище флагов не настроено
	ErrStoreDisabled = errors.New("preferences: store is disabled")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("preferences: internal error")
)
