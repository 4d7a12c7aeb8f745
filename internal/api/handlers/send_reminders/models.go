package send_reminders

import (
	sendReminders "github.com/m04kA/SMC-RentalService/internal/usecase/send_reminders"
)

// SendRemindersRequest HTTP request model. Тело необязательно
type SendRemindersRequest struct {
	RoomIDs []int64 `json:"roomIds,omitempty"`
}

// FailureResponse неудачная отправка
type FailureResponse struct {
	RoomID int64  `json:"roomId"`
	Reason string `json:"reason"`
}

// SendRemindersResponse HTTP response model
type SendRemindersResponse struct {
	Sent    []int64           `json:"sent"`
	Skipped []int64           `json:"skipped"`
	Failed  []FailureResponse `json:"failed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sendReminders.Response) *SendRemindersResponse {
	failed := make([]FailureResponse, 0, len(resp.Failed))
	for _, f := range resp.Failed {
		failed = append(failed, FailureResponse{RoomID: f.RoomID, Reason: f.Reason})
	}
	return &SendRemindersResponse{
		Sent:    resp.Sent,
		Skipped: resp.Skipped,
		Failed:  failed,
	}
}
