package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OpeningBalanceRequest books the balance a party or account starts with
type OpeningBalanceRequest struct {
	PartyKind   string          `json:"party_kind" binding:"required,oneof=supplier customer member"`
	PartyID     uuid.UUID       `json:"party_id" binding:"required"`
	PartyName   string          `json:"party_name" binding:"max=100"`
	AccountID   uuid.UUID       `json:"account_id" binding:"required"`
	AccountName string          `json:"account_name" binding:"max=100"`
	Amount      decimal.Decimal `json:"amount"`
	BalanceDate time.Time       `json:"balance_date" binding:"required"`
	Remark      string          `json:"remark" binding:"max=500"`
}

// OpeningBalanceResponse identifies a booked opening balance
type OpeningBalanceResponse struct {
	ID            uuid.UUID       `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	Amount        decimal.Decimal `json:"amount"`
	Status        int             `json:"status"`
}

// OpeningBalanceService records opening balances
type OpeningBalanceService struct {
	txScope   TransactionScope
	numbers   ReceiptNumberGenerator
	prefix    string
	publisher shared.EventPublisher
	metrics   *telemetry.LedgerMetrics
	now       func() time.Time
}

// NewOpeningBalanceService creates a new OpeningBalanceService
func NewOpeningBalanceService(txScope TransactionScope, numbers ReceiptNumberGenerator, prefix string) *OpeningBalanceService {
	if prefix == "" {
		prefix = "QC"
	}
	return &OpeningBalanceService{txScope: txScope, numbers: numbers, prefix: prefix, now: time.Now}
}

// SetEventPublisher sets the publisher that receives committed domain events
func (s *OpeningBalanceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// SetLedgerMetrics sets the metrics recorder
func (s *OpeningBalanceService) SetLedgerMetrics(m *telemetry.LedgerMetrics) {
	s.metrics = m
}

// RecordOpeningBalance books one opening balance per party and account.
// The document is audited immediately and shows up first in the account flow.
func (s *OpeningBalanceService) RecordOpeningBalance(ctx context.Context, tenantID uuid.UUID, req OpeningBalanceRequest) (resp *OpeningBalanceResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "opening_balance", "record")
	defer func() { telemetry.End(span, err) }()

	number, err := s.numbers.Next(ctx, tenantID, s.prefix, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate opening balance number: %w", err)
	}
	ob, err := finance.NewOpeningBalance(tenantID, number, finance.OpeningBalanceInput{
		PartyKind:   finance.PartyKind(req.PartyKind),
		PartyID:     req.PartyID,
		PartyName:   req.PartyName,
		AccountID:   req.AccountID,
		AccountName: req.AccountName,
		Amount:      req.Amount,
		BalanceDate: req.BalanceDate,
		Remark:      req.Remark,
	})
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.OpeningBalances().ExistsFor(ctx, tenantID, ob.PartyKind, ob.PartyID, ob.AccountID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeAlreadyExists, "Opening balance already recorded for this party and account")
		}
		return repos.OpeningBalances().Create(ctx, ob)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.DocumentWritten(ctx, finance.DocumentTypeOpeningBalance.String(), "create")
	publishAfterCommit(ctx, s.publisher, ob.GetDomainEvents())
	ob.ClearDomainEvents()

	logger.L(ctx).Info("opening balance recorded",
		zap.String("receipt_number", ob.ReceiptNumber),
		zap.String("party_kind", ob.PartyKind.String()),
		zap.String("party_id", ob.PartyID.String()),
	)
	return &OpeningBalanceResponse{
		ID:            ob.ID,
		ReceiptNumber: ob.ReceiptNumber,
		Amount:        finance.RoundMoney(ob.Amount),
		Status:        int(ob.Status),
	}, nil
}
