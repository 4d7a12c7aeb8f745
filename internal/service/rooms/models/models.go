package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Request модели

// ListRoomsRequest фильтр списка комнат. Пустые значения и "all" не фильтруют
type ListRoomsRequest struct {
	Status   string `json:"status,omitempty"`
	Building string `json:"building,omitempty"`
	Search   string `json:"search,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRoomsRequest) ToDomainFilter() domain.RoomFilter {
	return domain.RoomFilter{
		Status:   r.Status,
		Building: r.Building,
		Search:   r.Search,
	}
}

// UpdateRoomRequest частичное обновление описательных полей комнаты
type UpdateRoomRequest struct {
	Number      *string          `json:"number,omitempty"`
	Building    *string          `json:"building,omitempty"`
	Area        *float64         `json:"area,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Amenities   *[]string        `json:"amenities,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// IsEmpty возвращает true, если ни одно поле не передано
func (r *UpdateRoomRequest) IsEmpty() bool {
	return r.Number == nil && r.Building == nil && r.Area == nil &&
		r.Price == nil && r.Amenities == nil && r.Description == nil
}

// Response модели

// TenantMemberResponse проживающий вместе с арендатором
type TenantMemberResponse struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	IDCard   string `json:"idCard,omitempty"`
}

// RoomResponse комната в формате API. Поля арендатора и договора присутствуют только у занятой комнаты
type RoomResponse struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	Building    string          `json:"building"`
	Code        string          `json:"code"`
	Area        float64         `json:"area"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Amenities   []string        `json:"amenities"`
	Description string          `json:"description"`

	Tenant          *string                `json:"tenant,omitempty"`
	TenantPhone     *string                `json:"tenantPhone,omitempty"`
	TenantEmail     *string                `json:"tenantEmail,omitempty"`
	TenantIDCard    *string                `json:"tenantIdCard,omitempty"`
	TenantBirthDate *string                `json:"tenantBirthDate,omitempty"`
	TenantHometown  *string                `json:"tenantHometown,omitempty"`
	TenantMembers   []TenantMemberResponse `json:"tenantMembers,omitempty"`

	ContractStartDate    *string          `json:"contractStartDate,omitempty"`
	ContractEndDate      *string          `json:"contractEndDate,omitempty"`
	CCCDFront            *string          `json:"cccdFront,omitempty"`
	CCCDBack             *string          `json:"cccdBack,omitempty"`
	Deposit              *decimal.Decimal `json:"deposit,omitempty"`
	NotificationSent     *bool            `json:"notificationSent,omitempty"`
	LastNotificationDate *string          `json:"lastNotificationDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse список комнат после фильтрации
type RoomListResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	Buildings []string       `json:"buildings"`
	Total     int            `json:"total"`
}

// NotificationResponse уведомление об истекающем или истекшем договоре
type NotificationResponse struct {
	RoomID               int64   `json:"roomId"`
	RoomCode             string  `json:"roomCode"`
	Building             string  `json:"building"`
	TenantName           string  `json:"tenantName"`
	TenantPhone          string  `json:"tenantPhone"`
	TenantEmail          string  `json:"tenantEmail,omitempty"`
	ContractEndDate      string  `json:"contractEndDate"`
	DaysUntilExpiry      int     `json:"daysUntilExpiry"`
	DaysOverdue          int     `json:"daysOverdue"`
	Status               string  `json:"status"`
	NotificationSent     bool    `json:"notificationSent"`
	LastNotificationDate *string `json:"lastNotificationDate,omitempty"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Expiring      int                    `json:"expiring"`
	Expired       int                    `json:"expired"`
	Unsent        int                    `json:"unsent"`
}

// BookingResponse бронь (депозит) комнаты
type BookingResponse struct {
	ID            string          `json:"id"`
	RoomID        int64           `json:"roomId"`
	TenantName    string          `json:"tenantName"`
	Phone         string          `json:"phone"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	DepositDate   string          `json:"depositDate"`
	Status        string          `json:"status"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BookingListResponse история броней комнаты
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// LandlordInfo данные арендодателя для печатной формы
type LandlordInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	IDCard   string `json:"idCard"`
	Address  string `json:"address"`
	Bank     string `json:"bank,omitempty"`
}

// PrintTenant арендатор в печатной форме
type PrintTenant struct {
	FullName  string                 `json:"fullName"`
	Phone     string                 `json:"phone"`
	Email     string                 `json:"email,omitempty"`
	IDCard    string                 `json:"idCard"`
	BirthDate *string                `json:"birthDate,omitempty"`
	Hometown  string                 `json:"hometown"`
	Members   []TenantMemberResponse `json:"members"`
}

// PrintRoom комната в печатной форме
type PrintRoom struct {
	Code      string   `json:"code"`
	Number    string   `json:"number"`
	Building  string   `json:"building"`
	Area      float64  `json:"area"`
	Amenities []string `json:"amenities"`
}

// PrintTerms условия договора
type PrintTerms struct {
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	DurationMonths int             `json:"durationMonths"`
	MonthlyRent    decimal.Decimal `json:"monthlyRent"`
	Deposit        decimal.Decimal `json:"deposit"`
	PaymentDay     int             `json:"paymentDay"`
}

// ContractPrintResponse полностью заполненные данные для печати договора
type ContractPrintResponse struct {
	Landlord  LandlordInfo `json:"landlord"`
	Tenant    PrintTenant  `json:"tenant"`
	Room      PrintRoom    `json:"room"`
	Terms     PrintTerms   `json:"terms"`
	PrintedOn string       `json:"printedOn"`
}

// Конвертеры

// FromDomainRoom конвертирует domain комнату в response
func FromDomainRoom(r *domain.Room) RoomResponse {
	resp := RoomResponse{
		ID:          r.ID,
		Number:      r.Number,
		Building:    r.Building,
		Code:        r.Code(),
		Area:        r.Area,
		Price:       r.Price,
		Status:      string(r.Status),
		Amenities:   r.Amenities,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}

	// Данные аренды отдаются только для занятой комнаты
	if !r.IsOccupied() {
		return resp
	}

	if t := r.Tenant; t != nil {
		resp.Tenant = ptr.Ptr(t.FullName)
		resp.TenantPhone = ptr.Ptr(t.Phone)
		resp.TenantEmail = optional(t.Email)
		resp.TenantIDCard = optional(t.IDCard)
		resp.TenantBirthDate = formatDatePtr(t.BirthDate)
		resp.TenantHometown = optional(t.Hometown)
		resp.TenantMembers = fromDomainMembers(t.Members)
	}

	if c := r.Contract; c != nil {
		resp.ContractStartDate = ptr.Ptr(FormatDate(c.StartDate))
		resp.ContractEndDate = ptr.Ptr(FormatDate(c.EndDate))
		resp.CCCDFront = optional(c.CCCDFront)
		resp.CCCDBack = optional(c.CCCDBack)
		resp.Deposit = ptr.Ptr(c.Deposit)
		resp.NotificationSent = ptr.Ptr(c.NotificationSent)
		resp.LastNotificationDate = formatDatePtr(c.LastNotificationDate)
	}

	return resp
}

// FromDomainRoomList конвертирует список комнат в response
func FromDomainRoomList(rooms []*domain.Room, buildings []string) *RoomListResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, FromDomainRoom(r))
	}
	if buildings == nil {
		buildings = []string{}
	}
	return &RoomListResponse{
		Rooms:     result,
		Buildings: buildings,
		Total:     len(result),
	}
}

// FromDomainNotifications конвертирует уведомления в response
func FromDomainNotifications(notifications []domain.ContractNotification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for i := range notifications {
		n := &notifications[i]
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			RoomID:               n.RoomID,
			RoomCode:             n.RoomCode,
			Building:             n.Building,
			TenantName:           n.TenantName,
			TenantPhone:          n.TenantPhone,
			TenantEmail:          n.TenantEmail,
			ContractEndDate:      FormatDate(n.ContractEndDate),
			DaysUntilExpiry:      n.DaysUntilExpiry,
			DaysOverdue:          n.DaysOverdue(),
			Status:               string(n.Status),
			NotificationSent:     n.NotificationSent,
			LastNotificationDate: formatDatePtr(n.LastNotificationDate),
		})

		switch n.Status {
		case domain.ContractExpiring:
			resp.Expiring++
		case domain.ContractExpired:
			resp.Expired++
		}
		if !n.NotificationSent {
			resp.Unsent++
		}
	}

	return resp
}

// FromDomainBooking конвертирует бронь в response
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		RoomID:        b.RoomID,
		TenantName:    b.TenantName,
		Phone:         b.Phone,
		DepositAmount: b.DepositAmount,
		DepositDate:   FormatDate(b.DepositDate),
		Status:        string(b.Status),
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список броней в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// FromDomainTenant конвертирует арендатора в печатную форму
func FromDomainTenant(t *domain.Tenant) PrintTenant {
	return PrintTenant{
		FullName:  t.FullName,
		Phone:     t.Phone,
		Email:     t.Email,
		IDCard:    t.IDCard,
		BirthDate: formatDatePtr(t.BirthDate),
		Hometown:  t.Hometown,
		Members:   fromDomainMembers(t.Members),
	}
}

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Ptr(FormatDate(*t))
}

func fromDomainMembers(members []domain.TenantMember) []TenantMemberResponse {
	result := make([]TenantMemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, TenantMemberResponse{
			FullName: m.FullName,
			Phone:    m.Phone,
			IDCard:   m.IDCard,
		})
	}
	return result
}

// optional возвращает nil для пустой строки, чтобы поле не попадало в JSON
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
