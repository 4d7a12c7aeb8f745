package reports

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

// Service выгрузка комнат и уведомлений в xlsx
type Service struct {
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(roomRepo RoomRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		roomRepo:     roomRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ExportRooms формирует книгу с листами Rooms (по фильтру) и Notifications (по всем комнатам)
func (s *Service) ExportRooms(ctx context.Context, req *models.ListRoomsRequest) ([]byte, error) {
	s.logger.Info("ExportRooms: status=%q building=%q search=%q", req.Status, req.Building, req.Search)

	if req.Status != "" && req.Status != domain.FilterAll && !domain.RoomStatus(req.Status).IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	all, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ExportRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportRooms - repository error: %v", ErrInternal, err)
	}

	notifications, err := domain.DeriveNotifications(all, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ExportRooms: failed to derive notifications: %v", err)
		return nil, fmt.Errorf("%w: ExportRooms - derive: %v", ErrInternal, err)
	}

	rooms := domain.FilterRooms(all, req.ToDomainFilter())

	data, err := buildWorkbook(rooms, notifications)
	if err != nil {
		s.logger.Error("ExportRooms: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: ExportRooms - workbook: %v", ErrInternal, err)
	}

	s.logger.Info("ExportRooms: exported %d rooms, %d notifications (%d bytes)", len(rooms), len(notifications), len(data))
	return data, nil
}

func buildWorkbook(rooms []*domain.Room, notifications []domain.ContractNotification) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// Лист по умолчанию переименовываем, чтобы Rooms был первым и активным
	if err := f.SetSheetName("Sheet1", SheetRooms); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetNotifications); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	roomRows := make([][]interface{}, 0, len(rooms))
	for _, r := range rooms {
		roomRows = append(roomRows, roomRow(r))
	}
	if err := writeSheet(f, SheetRooms, RoomsHeader, roomsColumnWidths, roomRows, headerStyle); err != nil {
		return nil, err
	}

	notificationRows := make([][]interface{}, 0, len(notifications))
	for i := range notifications {
		notificationRows = append(notificationRows, notificationRow(&notifications[i]))
	}
	if err := writeSheet(f, SheetNotifications, NotificationsHeader, notificationsColumnWidths, notificationRows, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, widths []float64, rows [][]interface{}, headerStyle int) error {
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to set header cell %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if col < len(widths) {
			if err := f.SetColWidth(sheet, name, name, widths[col]); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet, err)
		}
	}

	// Закрепляем строку заголовков
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func roomRow(r *domain.Room) []interface{} {
	row := []interface{}{
		r.Code(),
		r.Building,
		r.Number,
		r.Area,
		r.Price.InexactFloat64(),
		roomStatusLabels[r.Status],
		strings.Join(r.Amenities, ", "),
		"", "", "", "", "",
	}

	if r.IsOccupied() && r.Tenant != nil && r.Contract != nil {
		row[7] = r.Tenant.FullName
		row[8] = r.Tenant.Phone
		row[9] = models.FormatDate(r.Contract.StartDate)
		row[10] = models.FormatDate(r.Contract.EndDate)
		row[11] = r.Contract.Deposit.InexactFloat64()
	}

	return row
}

func notificationRow(n *domain.ContractNotification) []interface{} {
	sent := "Chưa"
	if n.NotificationSent {
		sent = "Rồi"
	}

	lastSent := ""
	if n.LastNotificationDate != nil {
		lastSent = models.FormatDate(*n.LastNotificationDate)
	}

	return []interface{}{
		n.RoomCode,
		n.Building,
		n.TenantName,
		n.TenantPhone,
		models.FormatDate(n.ContractEndDate),
		n.DaysUntilExpiry,
		contractStatusLabels[n.Status],
		sent,
		lastSent,
	}
}
