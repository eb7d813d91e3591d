package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	financeapp "github.com/erp/ledger/internal/application/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdvanceChargeService is the application service behind AdvanceChargeHandler
type AdvanceChargeService interface {
	AddOrUpdate(ctx context.Context, tenantID uuid.UUID, req financeapp.AdvanceChargeRequest) (*financeapp.AdvanceChargeSaved, error)
	GetPageList(ctx context.Context, tenantID uuid.UUID, req financeapp.AdvanceChargeListRequest) (*shared.Paginated[financeapp.AdvanceChargeSummary], error)
	GetDetailByID(ctx context.Context, tenantID, id uuid.UUID) (*financeapp.AdvanceChargeDetail, error)
	DeleteByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (*financeapp.BatchResult, error)
	UpdateStatusByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, status int) (*financeapp.BatchResult, error)
	Export(ctx context.Context, tenantID uuid.UUID, req financeapp.AdvanceChargeListRequest, withDetail bool, lang financeapp.ExportLanguage, w io.Writer) error
	ExportDetail(ctx context.Context, tenantID uuid.UUID, receiptNumber string, lang financeapp.ExportLanguage, w io.Writer) error
	ContentType() string
	FileExtension() string
}

// AdvanceChargeHandler handles advance charge endpoints
type AdvanceChargeHandler struct {
	BaseHandler
	service      AdvanceChargeService
	exportLang   financeapp.ExportLanguage
	exportPrefix string
}

// NewAdvanceChargeHandler creates a new AdvanceChargeHandler. exportLang is used
// when the Accept-Language header matches neither zh nor en.
func NewAdvanceChargeHandler(service AdvanceChargeService, exportLang financeapp.ExportLanguage) *AdvanceChargeHandler {
	return &AdvanceChargeHandler{
		service:      service,
		exportLang:   exportLang,
		exportPrefix: "advance-charges",
	}
}

// AdvanceChargeExportQuery filters the export by query string
// @Description Advance charge export filter
type AdvanceChargeExportQuery struct {
	MemberID             *uuid.UUID `form:"member_id"`
	ReceiptNumber        string     `form:"receipt_number"`
	Status               *int       `form:"status" binding:"omitempty,oneof=0 1"`
	FinancialPersonnelID *uuid.UUID `form:"financial_personnel_id"`
	OperatorID           *uuid.UUID `form:"operator_id"`
	Remark               string     `form:"remark"`
	StartDate            *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate              *time.Time `form:"end_date" time_format:"2006-01-02"`
	WithDetail           bool       `form:"with_detail"`
}

// AddOrUpdate godoc
// @ID           addOrUpdateAdvanceCharge
// @Summary      Create or update an advance charge
// @Description  Creates an advance charge when id is absent, otherwise replaces the unaudited charge with that id
// @Tags         finance-advance-charges
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        X-User-ID header string false "Operator ID"
// @Param        X-User-Name header string false "Operator name"
// @Param        request body financeapp.AdvanceChargeRequest true "Advance charge"
// @Success      200 {object} APIResponse[financeapp.AdvanceChargeSaved]
// @Success      201 {object} APIResponse[financeapp.AdvanceChargeSaved]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges [post]
func (h *AdvanceChargeHandler) AddOrUpdate(c *gin.Context) {
	var req financeapp.AdvanceChargeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.OperatorID, req.OperatorName = middleware.GetOperator(c)

	saved, err := h.service.AddOrUpdate(c.Request.Context(), h.tenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if saved.Created {
		h.Created(c, saved)
		return
	}
	h.Success(c, saved)
}

// GetPageList godoc
// @ID           getAdvanceChargePageList
// @Summary      List advance charges
// @Description  Returns one page of advance charge headers matching the filter
// @Tags         finance-advance-charges
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        request body financeapp.AdvanceChargeListRequest true "Filter"
// @Success      200 {object} APIResponse[[]financeapp.AdvanceChargeSummary]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges/page [post]
func (h *AdvanceChargeHandler) GetPageList(c *gin.Context) {
	var req financeapp.AdvanceChargeListRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}

	page, err := h.service.GetPageList(c.Request.Context(), h.tenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetDetailByID godoc
// @ID           getAdvanceChargeDetailById
// @Summary      Get an advance charge
// @Description  Returns the header with its lines, attachments and the member's current advance balance
// @Tags         finance-advance-charges
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        id path string true "Advance charge ID" format(uuid)
// @Success      200 {object} APIResponse[financeapp.AdvanceChargeDetail]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges/{id} [get]
func (h *AdvanceChargeHandler) GetDetailByID(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	detail, err := h.service.GetDetailByID(c.Request.Context(), h.tenantID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// DeleteByIDs godoc
// @ID           deleteAdvanceChargeById
// @Summary      Delete advance charges
// @Description  Soft-deletes each unaudited charge; every id gets its own outcome
// @Tags         finance-advance-charges
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        ids query []string true "Advance charge IDs" collectionFormat(multi)
// @Success      200 {object} APIResponse[financeapp.BatchResult]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges/delete [put]
func (h *AdvanceChargeHandler) DeleteByIDs(c *gin.Context) {
	ids, ok := h.queryUUIDs(c, "ids")
	if !ok {
		return
	}
	result, err := h.service.DeleteByIDs(c.Request.Context(), h.tenantID(c), ids)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateStatusByIDs godoc
// @ID           updateAdvanceChargeStatusById
// @Summary      Audit or unaudit advance charges
// @Description  Moves each charge to the requested review status and adjusts the member's advance balance
// @Tags         finance-advance-charges
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        ids query []string true "Advance charge IDs" collectionFormat(multi)
// @Param        status query int true "Target status" Enums(0, 1)
// @Success      200 {object} APIResponse[financeapp.BatchResult]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges/status [put]
func (h *AdvanceChargeHandler) UpdateStatusByIDs(c *gin.Context) {
	ids, ok := h.queryUUIDs(c, "ids")
	if !ok {
		return
	}
	status, err := strconv.Atoi(c.Query("status"))
	if err != nil {
		h.ValidationError(c, "Request validation failed", []dto.ValidationDetail{
			{Field: "status", Message: "Must be one of: 0 1"},
		})
		return
	}

	result, err := h.service.UpdateStatusByIDs(c.Request.Context(), h.tenantID(c), ids, status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Export godoc
// @ID           exportAdvanceCharges
// @Summary      Export advance charges
// @Description  Streams the filtered charges as a spreadsheet; with_detail adds a sheet of lines
// @Tags         finance-advance-charges
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        Accept-Language header string false "zh or en"
// @Param        member_id query string false "Member ID" format(uuid)
// @Param        receipt_number query string false "Receipt number"
// @Param        status query int false "Review status" Enums(0, 1)
// @Param        start_date query string false "From receipt date" format(date)
// @Param        end_date query string false "To receipt date" format(date)
// @Param        with_detail query bool false "Include lines sheet"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges/export [get]
func (h *AdvanceChargeHandler) Export(c *gin.Context) {
	var q AdvanceChargeExportQuery
	if !h.BindQuery(c, &q) {
		return
	}
	req := financeapp.AdvanceChargeListRequest{
		MemberID:             q.MemberID,
		ReceiptNumber:        q.ReceiptNumber,
		Status:               q.Status,
		FinancialPersonnelID: q.FinancialPersonnelID,
		OperatorID:           q.OperatorID,
		Remark:               q.Remark,
		StartDate:            q.StartDate,
		EndDate:              q.EndDate,
	}

	lang := financeapp.ResolveExportLanguage(c.GetHeader("Accept-Language"), h.exportLang)
	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), h.tenantID(c), req, q.WithDetail, lang, &buf); err != nil {
		h.HandleError(c, err)
		return
	}
	h.sendFile(c, fmt.Sprintf("%s-%s", h.exportPrefix, time.Now().Format("20060102150405")), &buf)
}

// ExportDetail godoc
// @ID           exportAdvanceChargeDetail
// @Summary      Export one advance charge
// @Description  Streams a single charge and its lines as a spreadsheet
// @Tags         finance-advance-charges
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        Accept-Language header string false "zh or en"
// @Param        receiptNumber path string true "Receipt number"
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/advance-charges/export/{receiptNumber} [get]
func (h *AdvanceChargeHandler) ExportDetail(c *gin.Context) {
	receiptNumber := c.Param("receiptNumber")
	lang := financeapp.ResolveExportLanguage(c.GetHeader("Accept-Language"), h.exportLang)

	var buf bytes.Buffer
	if err := h.service.ExportDetail(c.Request.Context(), h.tenantID(c), receiptNumber, lang, &buf); err != nil {
		h.HandleError(c, err)
		return
	}
	h.sendFile(c, receiptNumber, &buf)
}

func (h *AdvanceChargeHandler) sendFile(c *gin.Context, baseName string, buf *bytes.Buffer) {
	fileName := baseName + h.service.FileExtension()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", fileName, url.PathEscape(fileName)))
	c.Data(http.StatusOK, h.service.ContentType(), buf.Bytes())
}

// RegisterRoutes mounts the advance charge routes under /finance/advance-charges
func (h *AdvanceChargeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/finance/advance-charges")
	g.POST("", h.AddOrUpdate)
	g.POST("/page", h.GetPageList)
	g.PUT("/delete", h.DeleteByIDs)
	g.PUT("/status", h.UpdateStatusByIDs)
	g.GET("/export", h.Export)
	g.GET("/export/:receiptNumber", h.ExportDetail)
	g.GET("/:id", h.GetDetailByID)
}
