package reports

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	SheetRooms         = "Rooms"
	SheetNotifications = "Notifications"
)

// RoomsHeader заголовки листа комнат
var RoomsHeader = []string{
	"Mã phòng",
	"Tòa nhà",
	"Số phòng",
	"Diện tích (m²)",
	"Giá thuê (VND)",
	"Trạng thái",
	"Tiện nghi",
	"Người thuê",
	"Số điện thoại",
	"Ngày bắt đầu",
	"Ngày kết thúc",
	"Tiền cọc (VND)",
}

// NotificationsHeader заголовки листа уведомлений
var NotificationsHeader = []string{
	"Mã phòng",
	"Tòa nhà",
	"Người thuê",
	"Số điện thoại",
	"Ngày kết thúc",
	"Số ngày còn lại",
	"Trạng thái",
	"Đã nhắc",
	"Ngày nhắc gần nhất",
}

var roomsColumnWidths = []float64{12, 10, 10, 14, 16, 14, 30, 25, 16, 14, 14, 16}

var notificationsColumnWidths = []float64{12, 10, 25, 16, 14, 16, 14, 10, 18}

var roomStatusLabels = map[domain.RoomStatus]string{
	domain.RoomAvailable: "Trống",
	domain.RoomBooked:    "Đã đặt cọc",
	domain.RoomOccupied:  "Đang thuê",
}

var contractStatusLabels = map[domain.ContractStatus]string{
	domain.ContractActive:   "Còn hạn",
	domain.ContractExpiring: "Sắp hết hạn",
	domain.ContractExpired:  "Đã hết hạn",
}
