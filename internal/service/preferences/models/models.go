package models

// DismissalResponse состояние флага скрытия подсказки интерфейса
type DismissalResponse struct {
	Key         string  `json:"key"`
	Dismissed   bool    `json:"dismissed"`
	DismissedAt *string `json:"dismissedAt,omitempty"`
}

// SetDismissalRequest запрос на изменение флага
type SetDismissalRequest struct {
	Dismissed bool `json:"dismissed"`
}
