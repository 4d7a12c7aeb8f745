package send_reminders

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
)

const displayDateFormat = "02/01/2006"

// buildReminder формирует текст напоминания на вьетнамском для арендатора
func buildReminder(n *domain.ContractNotification) *notifier.Reminder {
	endDate := n.ContractEndDate.Format(displayDateFormat)

	var message string
	switch {
	case n.Status == domain.ContractExpired:
		message = fmt.Sprintf("Hợp đồng thuê phòng %s đã hết hạn %d ngày (ngày %s). Vui lòng liên hệ chủ nhà để gia hạn hoặc trả phòng.",
			n.RoomCode, n.DaysOverdue(), endDate)
	case n.DaysUntilExpiry == 0:
		message = fmt.Sprintf("Hợp đồng thuê phòng %s hết hạn hôm nay (%s). Vui lòng liên hệ chủ nhà để gia hạn.",
			n.RoomCode, endDate)
	default:
		message = fmt.Sprintf("Hợp đồng thuê phòng %s sẽ hết hạn vào ngày %s (còn %d ngày). Vui lòng liên hệ chủ nhà để gia hạn.",
			n.RoomCode, endDate, n.DaysUntilExpiry)
	}

	return &notifier.Reminder{
		RoomID:          n.RoomID,
		RoomCode:        n.RoomCode,
		TenantName:      n.TenantName,
		Phone:           n.TenantPhone,
		Email:           n.TenantEmail,
		ContractEndDate: n.ContractEndDate.Format(domain.DateFormat),
		DaysUntilExpiry: n.DaysUntilExpiry,
		Status:          string(n.Status),
		Message:         message,
	}
}
