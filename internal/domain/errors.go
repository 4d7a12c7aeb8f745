package domain

import "errors"

var (
	// ErrInvalidContractDate возвращается для пустой или нераспознанной даты договора
	ErrInvalidContractDate = errors.New("domain: invalid contract date")

	// ErrInvalidRoomStatus возвращается для неизвестного статуса комнаты
	ErrInvalidRoomStatus = errors.New("domain: invalid room status")

	// ErrTenancyInvariant возвращается, если данные арендатора не соответствуют статусу комнаты
	ErrTenancyInvariant = errors.New("domain: tenant and contract must be set only for occupied rooms")

	// ErrInvalidMonths возвращается при некорректном количестве месяцев продления
	ErrInvalidMonths = errors.New("domain: months must be positive")

	// ErrInvalidRoomDetails возвращается при некорректных описательных полях комнаты
	ErrInvalidRoomDetails = errors.New("domain: invalid room details")
)
