package reports

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном фильтре
	ErrInvalidInput = errors.New("reports: invalid input data")

	// ErrInternal возвращается при ошибках чтения данных или формирования файла
	ErrInternal = errors.New("reports: internal error")
)
