package partner

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateMemberRequest is the payload for creating a member
type CreateMemberRequest struct {
	MemberNumber string `json:"member_number" binding:"required,max=50"`
	Name         string `json:"name" binding:"required,max=200"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Remark       string `json:"remark" binding:"max=500"`
	Sort         int    `json:"sort"`
}

// UpdateMemberRequest changes the editable member fields; nil fields are left alone
type UpdateMemberRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,max=200"`
	Remark  *string `json:"remark" binding:"omitempty,max=500"`
	Sort    *int    `json:"sort"`
	Enabled *bool   `json:"enabled"`
}

// MemberListRequest filters the member list
type MemberListRequest struct {
	MemberNumber string     `form:"member_number"`
	Phone        string     `form:"phone"`
	Status       string     `form:"status" binding:"omitempty,oneof=enabled disabled"`
	CreatedFrom  *time.Time `form:"created_from" time_format:"2006-01-02"`
	CreatedTo    *time.Time `form:"created_to" time_format:"2006-01-02"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=500"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MemberResponse is the member as returned to callers
type MemberResponse struct {
	ID             uuid.UUID       `json:"id"`
	MemberNumber   string          `json:"member_number"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	AdvancePayment decimal.Decimal `json:"advance_payment"`
	Status         string          `json:"status"`
	Remark         string          `json:"remark"`
	Sort           int             `json:"sort"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// ToMemberResponse converts a member to its response form
func ToMemberResponse(m *partner.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		MemberNumber:   m.MemberNumber,
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		AdvancePayment: m.AdvancePayment.Round(2),
		Status:         string(m.Status),
		Remark:         m.Remark,
		Sort:           m.Sort,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Version:        m.Version,
	}
}

// MemberService handles member master data
type MemberService struct {
	repo            partner.MemberRepository
	publisher       shared.EventPublisher
	defaultPageSize int
}

// NewMemberService creates a new MemberService
func NewMemberService(repo partner.MemberRepository, defaultPageSize int) *MemberService {
	if defaultPageSize <= 0 {
		defaultPageSize = shared.DefaultPageSize
	}
	return &MemberService{repo: repo, defaultPageSize: defaultPageSize}
}

// SetEventPublisher sets the publisher that receives member events
func (s *MemberService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Create creates an enabled member with a zero advance payment
func (s *MemberService) Create(ctx context.Context, tenantID uuid.UUID, req CreateMemberRequest) (resp *MemberResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "member", "create")
	defer func() { telemetry.End(span, err) }()

	member, err := partner.NewMember(tenantID, req.MemberNumber, req.Name)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.ExistsByMemberNumber(ctx, tenantID, member.MemberNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Member number already exists: "+member.MemberNumber)
	}
	if err := member.SetContact(req.Phone, req.Email); err != nil {
		return nil, err
	}
	if req.Remark != "" {
		member.SetRemark(req.Remark)
	}
	if req.Sort != 0 {
		member.SetSort(req.Sort)
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, err
	}
	s.publish(ctx, member)

	logger.L(ctx).Info("member created",
		zap.String("member_id", member.ID.String()),
		zap.String("member_number", member.MemberNumber),
	)
	out := ToMemberResponse(member)
	return &out, nil
}

// Update changes contact data, remark, sort order or status of a member.
// The advance payment is never touched here.
func (s *MemberService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateMemberRequest) (resp *MemberResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "member", "update")
	defer func() { telemetry.End(span, err) }()

	member, err := s.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewValidationError("Member name cannot be empty",
				shared.FieldError{Field: "name", Message: "is required"})
		}
		member.Name = *req.Name
		member.Touch()
	}
	if req.Phone != nil || req.Email != nil {
		phone, email := member.Phone, member.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := member.SetContact(phone, email); err != nil {
			return nil, err
		}
	}
	if req.Remark != nil {
		member.SetRemark(*req.Remark)
	}
	if req.Sort != nil {
		member.SetSort(*req.Sort)
	}
	if req.Enabled != nil && *req.Enabled != member.IsEnabled() {
		if *req.Enabled {
			err = member.Enable()
		} else {
			err = member.Disable()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, err
	}
	out := ToMemberResponse(member)
	return &out, nil
}

// GetByID returns one member
func (s *MemberService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	out := ToMemberResponse(member)
	return &out, nil
}

// List returns one page of members
func (s *MemberService) List(ctx context.Context, tenantID uuid.UUID, req MemberListRequest) (*shared.Paginated[MemberResponse], error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "member", "list")
	defer span.End()

	filter := partner.MemberFilter{
		PageQuery: shared.PageQuery{
			Page:     req.Page,
			PageSize: req.PageSize,
			OrderBy:  req.OrderBy,
			OrderDir: req.OrderDir,
		},
		MemberNumber: req.MemberNumber,
		Phone:        req.Phone,
		CreatedFrom:  req.CreatedFrom,
		CreatedTo:    req.CreatedTo,
	}
	if filter.PageSize == 0 {
		filter.PageSize = s.defaultPageSize
	}
	if req.Status != "" {
		status := partner.MemberStatus(req.Status)
		filter.Status = &status
	}

	members, total, err := s.repo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	items := make([]MemberResponse, 0, len(members))
	for i := range members {
		items = append(items, ToMemberResponse(&members[i]))
	}
	pq := filter.PageQuery.Normalize()
	page := shared.NewPaginated(items, total, pq.Page, pq.PageSize)
	return &page, nil
}

func (s *MemberService) publish(ctx context.Context, member *partner.Member) {
	events := member.GetDomainEvents()
	member.ClearDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		logger.L(ctx).Warn("failed to publish member events", zap.Error(err))
	}
}
