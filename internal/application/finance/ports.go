package finance

import (
	"context"
	"io"
	"time"

	"github.com/erp/ledger/internal/domain/finance"
	"github.com/erp/ledger/internal/domain/partner"
	"github.com/google/uuid"
)

// TransactionScope provides transactional access to the ledger repositories.
// Every repository handed to fn shares one database transaction, which is
// committed when fn returns nil and rolled back otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the current transaction
type TransactionalRepositories interface {
	AdvanceCharges() finance.AdvanceChargeRepository
	OpeningBalances() finance.OpeningBalanceRepository
	Members() partner.MemberRepository
}

// ReceiptNumberGenerator hands out document numbers such as YSK202401150001
type ReceiptNumberGenerator interface {
	Next(ctx context.Context, tenantID uuid.UUID, prefix string, at time.Time) (string, error)
}

// AttachmentStorage resolves and releases attachment objects
type AttachmentStorage interface {
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ReportCache stores serialized account flows keyed by tenant and query.
// InvalidateTenant advances the tenant's generation before dropping keys, so a
// fill computed under an older generation can never be read back.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Generation(ctx context.Context, tenantID uuid.UUID) (int64, error)
	InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error
}

// Column describes one exported column
type Column struct {
	Header string
	Width  float64
}

// Sheet is a named table of display values
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// TabularExporter writes sheets as a spreadsheet
type TabularExporter interface {
	Write(w io.Writer, sheets ...Sheet) error
	ContentType() string
	FileExtension() string
}
