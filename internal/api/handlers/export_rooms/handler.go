package export_rooms

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/reports"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

const (
	msgInvalidStatus = "trạng thái lọc không hợp lệ, cho phép: all, available, booked, occupied"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/export?status=&building=&search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRoomsRequest{
		Status:   query.Get("status"),
		Building: query.Get("building"),
		Search:   query.Get("search"),
	}

	data, err := h.service.ExportRooms(r.Context(), req)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /rooms/export - Failed to export rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("rooms_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("GET /rooms/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /rooms/export - Exported %d bytes", len(data))
}
