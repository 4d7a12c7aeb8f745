package notifier

// Reminder напоминание арендатору об окончании договора
type Reminder struct {
	RoomID          int64  `json:"roomId"`
	RoomCode        string `json:"roomCode"`
	TenantName      string `json:"tenantName"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	ContractEndDate string `json:"contractEndDate"`
	DaysUntilExpiry int    `json:"daysUntilExpiry"`
	Status          string `json:"status"`
	Message         string `json:"message"`
}

// ReminderResult ответ шлюза на принятое напоминание
type ReminderResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
