package create_contract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	createContract "github.com/m04kA/SMC-RentalService/internal/usecase/create_contract"
)

// TenantMemberRequest проживающий вместе с арендатором
type TenantMemberRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	IDCard   string `json:"idCard,omitempty"`
}

// CreateContractRequest HTTP request model
type CreateContractRequest struct {
	Tenant         string                `json:"tenant"`
	TenantPhone    string                `json:"tenantPhone"`
	TenantEmail    string                `json:"tenantEmail,omitempty"`
	TenantIDCard   string                `json:"tenantIdCard,omitempty"`
	TenantBirth    string                `json:"tenantBirthDate,omitempty"`
	TenantHometown string                `json:"tenantHometown,omitempty"`
	TenantMembers  []TenantMemberRequest `json:"tenantMembers,omitempty"`

	ContractStartDate string           `json:"contractStartDate,omitempty"` // по умолчанию сегодня
	ContractEndDate   string           `json:"contractEndDate,omitempty"`
	DurationMonths    int              `json:"durationMonths,omitempty"`
	CCCDFront         string           `json:"cccdFront,omitempty"`
	CCCDBack          string           `json:"cccdBack,omitempty"`
	Deposit           *decimal.Decimal `json:"deposit,omitempty"`
}

// CreateContractResponse HTTP response model
type CreateContractResponse struct {
	Room             models.RoomResponse     `json:"room"`
	ConvertedBooking *models.BookingResponse `json:"convertedBooking,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateContractRequest) ToUseCaseRequest(roomID int64) (*createContract.Request, error) {
	start, err := optionalDate(r.ContractStartDate)
	if err != nil {
		return nil, err
	}
	end, err := optionalDate(r.ContractEndDate)
	if err != nil {
		return nil, err
	}
	birth, err := optionalDate(r.TenantBirth)
	if err != nil {
		return nil, err
	}

	members := make([]domain.TenantMember, 0, len(r.TenantMembers))
	for _, m := range r.TenantMembers {
		members = append(members, domain.TenantMember{FullName: m.FullName, Phone: m.Phone, IDCard: m.IDCard})
	}

	req := &createContract.Request{
		RoomID: roomID,
		Tenant: createContract.TenantInput{
			FullName:  r.Tenant,
			Phone:     r.TenantPhone,
			Email:     r.TenantEmail,
			IDCard:    r.TenantIDCard,
			BirthDate: birth,
			Hometown:  r.TenantHometown,
			Members:   members,
		},
		EndDate:        end,
		DurationMonths: r.DurationMonths,
		CCCDFront:      r.CCCDFront,
		CCCDBack:       r.CCCDBack,
		Deposit:        r.Deposit,
	}
	if start != nil {
		req.StartDate = *start
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createContract.Response) *CreateContractResponse {
	result := &CreateContractResponse{Room: models.FromDomainRoom(resp.Room)}
	if resp.ConvertedBooking != nil {
		b := models.FromDomainBooking(resp.ConvertedBooking)
		result.ConvertedBooking = &b
	}
	return result
}

func optionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := domain.ParseContractDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
