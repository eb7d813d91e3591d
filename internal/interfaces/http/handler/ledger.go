package handler

import (
	"context"
	"time"

	financeapp "github.com/erp/ledger/internal/application/finance"
	"github.com/erp/ledger/internal/domain/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountItemService reads the ledger lines of a document
type AccountItemService interface {
	GetDetailList(ctx context.Context, tenantID, headerID uuid.UUID) ([]financeapp.AccountItemView, error)
}

// AccountFlowService builds account-flow reports
type AccountFlowService interface {
	GetAccountFlow(ctx context.Context, tenantID uuid.UUID, query finance.AccountFlowQuery) ([]finance.AccountFlowRow, error)
}

// OpeningBalanceService books opening balances
type OpeningBalanceService interface {
	RecordOpeningBalance(ctx context.Context, tenantID uuid.UUID, req financeapp.OpeningBalanceRequest) (*financeapp.OpeningBalanceResponse, error)
}

// LedgerHandler serves the read side of the ledger and opening balances
type LedgerHandler struct {
	BaseHandler
	items    AccountItemService
	flow     AccountFlowService
	openings OpeningBalanceService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(items AccountItemService, flow AccountFlowService, openings OpeningBalanceService) *LedgerHandler {
	return &LedgerHandler{items: items, flow: flow, openings: openings}
}

// AccountFlowRequest selects an account flow by query string
// @Description Account flow filter; party_id or account_id is required
type AccountFlowRequest struct {
	PartyKind string     `form:"party_kind" binding:"omitempty,oneof=supplier customer member"`
	PartyID   *uuid.UUID `form:"party_id"`
	AccountID *uuid.UUID `form:"account_id"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
}

func (r AccountFlowRequest) toQuery() finance.AccountFlowQuery {
	return finance.AccountFlowQuery{
		PartyKind: finance.PartyKind(r.PartyKind),
		PartyID:   r.PartyID,
		AccountID: r.AccountID,
		From:      r.From,
		To:        r.To,
	}
}

// GetDetailList godoc
// @ID           getAccountItemDetailList
// @Summary      List ledger lines of a document
// @Description  Returns the lines of any financial document with signed amounts
// @Tags         finance-ledger
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        headerId path string true "Document ID" format(uuid)
// @Success      200 {object} APIResponse[[]financeapp.AccountItemView]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/account-items/{headerId} [get]
func (h *LedgerHandler) GetDetailList(c *gin.Context) {
	headerID, ok := h.pathUUID(c, "headerId")
	if !ok {
		return
	}
	views, err := h.items.GetDetailList(c.Request.Context(), h.tenantID(c), headerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, views)
}

// GetAccountFlow godoc
// @ID           getAccountFlow
// @Summary      Get an account flow
// @Description  Returns audited ledger movements of a party or account with a running balance; opening balances come first
// @Tags         finance-ledger
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        party_kind query string false "Party kind" Enums(supplier, customer, member)
// @Param        party_id query string false "Party ID" format(uuid)
// @Param        account_id query string false "Account ID" format(uuid)
// @Param        from query string false "From receipt date" format(date)
// @Param        to query string false "To receipt date" format(date)
// @Success      200 {object} APIResponse[[]finance.AccountFlowRow]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/account-flow [get]
func (h *LedgerHandler) GetAccountFlow(c *gin.Context) {
	var req AccountFlowRequest
	if !h.BindQuery(c, &req) {
		return
	}
	rows, err := h.flow.GetAccountFlow(c.Request.Context(), h.tenantID(c), req.toQuery())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// RecordOpeningBalance godoc
// @ID           recordOpeningBalance
// @Summary      Record an opening balance
// @Description  Books the starting balance of a party on an account; one per party and account
// @Tags         finance-ledger
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID"
// @Param        request body financeapp.OpeningBalanceRequest true "Opening balance"
// @Success      201 {object} APIResponse[financeapp.OpeningBalanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /finance/opening-balances [post]
func (h *LedgerHandler) RecordOpeningBalance(c *gin.Context) {
	var req financeapp.OpeningBalanceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.openings.RecordOpeningBalance(c.Request.Context(), h.tenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// RegisterRoutes mounts the ledger routes under /finance
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/finance")
	g.GET("/account-items/:headerId", h.GetDetailList)
	g.GET("/account-flow", h.GetAccountFlow)
	g.POST("/opening-balances", h.RecordOpeningBalance)
}
