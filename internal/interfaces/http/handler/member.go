package handler

import (
	"context"

	partnerapp "github.com/erp/ledger/internal/application/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberService is the application service behind MemberHandler
type MemberService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req partnerapp.CreateMemberRequest) (*partnerapp.MemberResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req partnerapp.UpdateMemberRequest) (*partnerapp.MemberResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*partnerapp.MemberResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, req partnerapp.MemberListRequest) (*shared.Paginated[partnerapp.MemberResponse], error)
}

// MemberHandler handles member endpoints
type MemberHandler struct {
	BaseHandler
	service MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(service MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// Create godoc
// @ID           createMember
// @Summary      Create a member
// @Tags         partner-members
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        request body partnerapp.CreateMemberRequest true "Member"
// @Success      201 {object} APIResponse[partnerapp.MemberResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /partner/members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req partnerapp.CreateMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}
	member, err := h.service.Create(c.Request.Context(), h.tenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, member)
}

// Update godoc
// @ID           updateMember
// @Summary      Update a member
// @Description  Changes the supplied fields; the advance balance is only moved by advance charges
// @Tags         partner-members
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Member ID" format(uuid)
// @Param        request body partnerapp.UpdateMemberRequest true "Changes"
// @Success      200 {object} APIResponse[partnerapp.MemberResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /partner/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	var req partnerapp.UpdateMemberRequest
	if !h.BindJSON(c, &req) {
		return
	}
	member, err := h.service.Update(c.Request.Context(), h.tenantID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// GetByID godoc
// @ID           getMember
// @Summary      Get a member
// @Tags         partner-members
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.MemberResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /partner/members/{id} [get]
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	member, err := h.service.GetByID(c.Request.Context(), h.tenantID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// List godoc
// @ID           listMembers
// @Summary      List members
// @Tags         partner-members
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        member_number query string false "Member number"
// @Param        phone query string false "Phone"
// @Param        status query string false "Status" Enums(enabled, disabled)
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(10)
// @Success      200 {object} APIResponse[[]partnerapp.MemberResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /partner/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	var req partnerapp.MemberListRequest
	if !h.BindQuery(c, &req) {
		return
	}
	page, err := h.service.List(c.Request.Context(), h.tenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// RegisterRoutes mounts the member routes under /partner/members
func (h *MemberHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/partner/members")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
}
