package finance

import (
	"context"
	"errors"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// presignConcurrency bounds parallel presign calls for one detail view
const presignConcurrency = 4

// AdvanceChargeConfig tunes the advance charge service
type AdvanceChargeConfig struct {
	ReceiptPrefix   string
	DefaultPageSize int
	MaxBatchSize    int
}

// AdvanceChargeService handles advance charge use cases
type AdvanceChargeService struct {
	charges   finance.AdvanceChargeRepository
	members   partner.MemberRepository
	txScope   TransactionScope
	numbers   ReceiptNumberGenerator
	storage   AttachmentStorage
	exporter  TabularExporter
	publisher shared.EventPublisher
	metrics   *telemetry.LedgerMetrics
	cfg       AdvanceChargeConfig
	now       func() time.Time
}

// NewAdvanceChargeService creates a new AdvanceChargeService
func NewAdvanceChargeService(
	charges finance.AdvanceChargeRepository,
	members partner.MemberRepository,
	txScope TransactionScope,
	numbers ReceiptNumberGenerator,
	exporter TabularExporter,
	cfg AdvanceChargeConfig,
) *AdvanceChargeService {
	if cfg.ReceiptPrefix == "" {
		cfg.ReceiptPrefix = "YSK"
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = shared.DefaultPageSize
	}
	return &AdvanceChargeService{
		charges:  charges,
		members:  members,
		txScope:  txScope,
		numbers:  numbers,
		exporter: exporter,
		cfg:      cfg,
		now:      time.Now,
	}
}

// SetEventPublisher sets the publisher that receives committed domain events
func (s *AdvanceChargeService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// SetAttachmentStorage enables presigned download URLs and object cleanup
func (s *AdvanceChargeService) SetAttachmentStorage(storage AttachmentStorage) {
	s.storage = storage
}

// SetLedgerMetrics sets the metrics recorder
func (s *AdvanceChargeService) SetLedgerMetrics(m *telemetry.LedgerMetrics) {
	s.metrics = m
}

// AddOrUpdate creates a charge when req.ID is nil and revises it otherwise.
// The member name is snapshotted on the header at save time.
func (s *AdvanceChargeService) AddOrUpdate(ctx context.Context, tenantID uuid.UUID, req AdvanceChargeRequest) (result *AdvanceChargeSaved, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "add_or_update",
		attribute.String("tenant.id", tenantID.String()),
		attribute.Bool("create", req.ID == nil),
	)
	defer func() { telemetry.End(span, err) }()

	member, err := s.lookupMember(ctx, tenantID, req.MemberID)
	if err != nil {
		return nil, err
	}
	in := req.toInput(member.Name)

	if req.ID == nil {
		return s.create(ctx, tenantID, req.ReceiptNumber, in)
	}
	return s.update(ctx, tenantID, *req.ID, in)
}

func (s *AdvanceChargeService) lookupMember(ctx context.Context, tenantID, memberID uuid.UUID) (*partner.Member, error) {
	if memberID == uuid.Nil {
		return nil, shared.NewValidationError("Member is required",
			shared.FieldError{Field: "memberId", Message: "is required"})
	}
	member, err := s.members.FindByIDForTenant(ctx, tenantID, memberID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("Member does not exist",
				shared.FieldError{Field: "memberId", Message: "does not exist"})
		}
		return nil, err
	}
	return member, nil
}

func (s *AdvanceChargeService) create(ctx context.Context, tenantID uuid.UUID, receiptNumber string, in finance.AdvanceChargeInput) (*AdvanceChargeSaved, error) {
	if receiptNumber == "" {
		generated, err := s.numbers.Next(ctx, tenantID, s.cfg.ReceiptPrefix, s.now())
		if err != nil {
			return nil, err
		}
		receiptNumber = generated
	}

	charge, err := finance.NewAdvanceCharge(tenantID, receiptNumber, in)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.AdvanceCharges().ExistsByReceiptNumber(ctx, tenantID, receiptNumber, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeAlreadyExists, "Receipt number already exists: "+receiptNumber)
		}
		return repos.AdvanceCharges().Create(ctx, charge)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.DocumentWritten(ctx, finance.DocumentTypeAdvanceCharge.String(), "create")
	publishAfterCommit(ctx, s.publisher, charge.GetDomainEvents())
	charge.ClearDomainEvents()

	logger.L(ctx).Info("advance charge created",
		zap.String("charge_id", charge.ID.String()),
		zap.String("receipt_number", charge.ReceiptNumber),
	)
	return &AdvanceChargeSaved{ID: charge.ID, ReceiptNumber: charge.ReceiptNumber, Created: true}, nil
}

func (s *AdvanceChargeService) update(ctx context.Context, tenantID, id uuid.UUID, in finance.AdvanceChargeInput) (*AdvanceChargeSaved, error) {
	var (
		charge  *finance.AdvanceCharge
		removed []finance.Attachment
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		charge, err = repos.AdvanceCharges().FindByIDForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}
		removed, err = charge.Revise(in)
		if err != nil {
			return err
		}
		return repos.AdvanceCharges().SaveWithLock(ctx, charge)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.DocumentWritten(ctx, finance.DocumentTypeAdvanceCharge.String(), "update")
	publishAfterCommit(ctx, s.publisher, charge.GetDomainEvents())
	charge.ClearDomainEvents()
	s.releaseAttachments(ctx, removed)

	return &AdvanceChargeSaved{ID: charge.ID, ReceiptNumber: charge.ReceiptNumber}, nil
}

// releaseAttachments deletes stored objects no longer referenced by a charge
func (s *AdvanceChargeService) releaseAttachments(ctx context.Context, removed []finance.Attachment) {
	if s.storage == nil {
		return
	}
	for _, a := range removed {
		if a.StorageKey == "" {
			continue
		}
		if err := s.storage.Delete(ctx, a.StorageKey); err != nil {
			logger.L(ctx).Warn("failed to delete attachment object",
				zap.String("storage_key", a.StorageKey),
				zap.Error(err),
			)
		}
	}
}

// GetPageList returns one page of advance charge headers
func (s *AdvanceChargeService) GetPageList(ctx context.Context, tenantID uuid.UUID, req AdvanceChargeListRequest) (*shared.Paginated[AdvanceChargeSummary], error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "page_list")
	defer span.End()

	filter := req.toFilter(s.cfg.DefaultPageSize)
	if filter.ReceiptDateFrom != nil && filter.ReceiptDateTo != nil && filter.ReceiptDateTo.Before(*filter.ReceiptDateFrom) {
		err := shared.NewValidationError("End date must not be before start date",
			shared.FieldError{Field: "endDate", Message: "must not be before startDate"})
		telemetry.RecordError(span, err)
		return nil, err
	}

	charges, total, err := s.charges.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	items := make([]AdvanceChargeSummary, 0, len(charges))
	for i := range charges {
		items = append(items, toAdvanceChargeSummary(&charges[i]))
	}
	pq := filter.PageQuery.Normalize()
	page := shared.NewPaginated(items, total, pq.Page, pq.PageSize)
	return &page, nil
}

// GetDetailByID returns a charge with its lines, attachments and the member's current balance
func (s *AdvanceChargeService) GetDetailByID(ctx context.Context, tenantID, id uuid.UUID) (detail *AdvanceChargeDetail, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "get_detail")
	defer func() { telemetry.End(span, err) }()

	charge, err := s.charges.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	detail = &AdvanceChargeDetail{
		AdvanceChargeSummary: toAdvanceChargeSummary(charge),
		Lines:                make([]AccountItemView, 0, len(charge.Lines)),
		Files:                make([]AttachmentView, len(charge.Files)),
	}
	for i := range charge.Lines {
		detail.Lines = append(detail.Lines, toAccountItemView(&charge.Lines[i]))
	}
	for i, f := range charge.Files {
		detail.Files[i] = toAttachmentView(f)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(presignConcurrency + 1)
	g.Go(func() error {
		member, err := s.members.FindByIDForTenant(gctx, tenantID, charge.MemberID)
		if err != nil {
			// the header keeps its snapshot even if the member is gone
			if errors.Is(err, shared.ErrNotFound) {
				return nil
			}
			return err
		}
		balance := finance.RoundMagnitude(member.AdvancePayment)
		detail.MemberAdvancePayment = &balance
		return nil
	})
	if s.storage != nil {
		for i := range detail.Files {
			key := detail.Files[i].StorageKey
			if key == "" {
				continue
			}
			g.Go(func() error {
				url, err := s.storage.PresignDownload(gctx, key)
				if err != nil {
					logger.L(gctx).Warn("failed to presign attachment", zap.String("storage_key", key), zap.Error(err))
					return nil
				}
				detail.Files[i].DownloadURL = url
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// DeleteByIDs soft-deletes each unaudited charge in its own transaction
func (s *AdvanceChargeService) DeleteByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (*BatchResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "delete",
		attribute.Int("ids.count", len(ids)),
	)
	defer span.End()

	ids = dedupeIDs(ids)
	if err := validateBatch(ids, s.cfg.MaxBatchSize); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	result := &BatchResult{Outcomes: make([]ItemOutcome, 0, len(ids))}
	for _, id := range ids {
		if err := s.deleteOne(ctx, tenantID, id); err != nil {
			result.fail(id, err)
			continue
		}
		result.succeed(id)
	}
	span.SetAttributes(attribute.Int("failures", result.FailureCount))
	return result, nil
}

func (s *AdvanceChargeService) deleteOne(ctx context.Context, tenantID, id uuid.UUID) error {
	var events []shared.DomainEvent
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		charge, err := repos.AdvanceCharges().FindByIDForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := charge.MarkDeleted(); err != nil {
			return err
		}
		if err := repos.AdvanceCharges().SoftDeleteWithLock(ctx, charge); err != nil {
			return err
		}
		events = charge.GetDomainEvents()
		return nil
	})
	if err != nil {
		return err
	}
	s.metrics.DocumentWritten(ctx, finance.DocumentTypeAdvanceCharge.String(), "delete")
	publishAfterCommit(ctx, s.publisher, events)
	return nil
}

// UpdateStatusByIDs audits or un-audits each charge. Every id runs in its own
// transaction that moves the member's advance payment together with the status.
func (s *AdvanceChargeService) UpdateStatusByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, status int) (*BatchResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "advance_charge", "update_status",
		attribute.Int("ids.count", len(ids)),
		attribute.Int("target_status", status),
	)
	defer span.End()

	target, err := finance.ParseReviewStatus(status)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	ids = dedupeIDs(ids)
	if err := validateBatch(ids, s.cfg.MaxBatchSize); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	result := &BatchResult{Outcomes: make([]ItemOutcome, 0, len(ids))}
	for _, id := range ids {
		delta, err := s.transitionOne(ctx, tenantID, id, target)
		s.metrics.Transition(ctx, target.String(), err == nil, delta)
		if err != nil {
			logger.L(ctx).Info("review transition rejected",
				zap.String("charge_id", id.String()),
				zap.String("target", target.String()),
				zap.Error(err),
			)
			result.fail(id, err)
			continue
		}
		result.succeed(id)
	}
	span.SetAttributes(attribute.Int("failures", result.FailureCount))
	return result, nil
}

func (s *AdvanceChargeService) transitionOne(ctx context.Context, tenantID, id uuid.UUID, target finance.ReviewStatus) (delta decimal.Decimal, err error) {
	var events []shared.DomainEvent
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		charge, err := repos.AdvanceCharges().FindByIDForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := charge.ChangeStatus(target); err != nil {
			return err
		}
		d := charge.BalanceDelta(target)
		if !d.IsZero() {
			if _, err := repos.Members().UpdateAdvanceChargeAmount(ctx, tenantID, charge.MemberID, d); err != nil {
				return err
			}
		}
		if err := repos.AdvanceCharges().UpdateStatusWithLock(ctx, charge); err != nil {
			return err
		}
		delta = d
		events = charge.GetDomainEvents()
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	publishAfterCommit(ctx, s.publisher, events)
	return delta, nil
}
