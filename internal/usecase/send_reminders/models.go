package send_reminders

// Request модель запроса на рассылку напоминаний
type Request struct {
	// RoomIDs ограничивает рассылку указанными комнатами, пустой список - все комнаты
	RoomIDs []int64
}

// Failure неудачная отправка напоминания
type Failure struct {
	RoomID int64
	Reason string
}

// Response итог рассылки. Порядок комнат в списках соответствует порядку уведомлений
type Response struct {
	Sent    []int64
	Skipped []int64
	Failed  []Failure
}
