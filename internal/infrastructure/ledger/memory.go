package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/meditrack/pharmacy-pos-api/pkg/pagination"
	"github.com/meditrack/pharmacy-pos-api/pkg/sequence"
)

// billNumberPrefix matches the numbering scheme bills have always carried
const billNumberPrefix = "BILL"

// MemoryLedger is the in-process BillRepository. All mutation goes through
// a single writer lock so id assignment, bill numbering and append order
// agree on one total order; readers take the same lock shared and copy out,
// so they never observe a half-applied append.
type MemoryLedger struct {
	mu      sync.RWMutex
	bills   []*entity.Bill
	byID    map[int64]*entity.Bill
	ids     *sequence.Sequence
	numbers *sequence.TokenGenerator
	now     func() time.Time
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		byID:    make(map[int64]*entity.Bill),
		ids:     sequence.NewSequence(0),
		numbers: sequence.NewTokenGenerator(billNumberPrefix),
		now:     time.Now,
	}
}

var _ repository.BillRepository = (*MemoryLedger)(nil)

// Append assigns identity and issue time to bill and records it. The input
// is not retained; the returned bill is the caller's copy.
func (l *MemoryLedger) Append(ctx context.Context, bill *entity.Bill) (*entity.Bill, error) {
	stored := bill.Clone()

	l.mu.Lock()
	stored.ID = l.ids.Next()
	stored.BillNumber = l.numbers.Next()
	stored.IssuedAt = l.now()
	for i := range stored.Items {
		stored.Items[i].BillID = stored.ID
	}
	l.bills = append(l.bills, stored)
	l.byID[stored.ID] = stored
	l.mu.Unlock()

	return stored.Clone(), nil
}

func (l *MemoryLedger) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bill, ok := l.byID[id]
	if !ok {
		return nil, nil
	}
	return bill.Clone(), nil
}

func (l *MemoryLedger) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	filtered := l.bills
	if params.CustomerPhone != "" {
		filtered = make([]*entity.Bill, 0)
		for _, b := range l.bills {
			if b.Customer.Phone == params.CustomerPhone {
				filtered = append(filtered, b)
			}
		}
	}

	total := int64(len(filtered))
	page := pagination.Slice(filtered, params.Pagination)

	out := make([]entity.Bill, len(page))
	for i, b := range page {
		out[i] = *b.Clone()
	}
	return out, total, nil
}

func (l *MemoryLedger) ListByRange(ctx context.Context, from, to time.Time) ([]entity.Bill, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entity.Bill, 0)
	for _, b := range l.bills {
		if !b.IssuedAt.Before(from) && b.IssuedAt.Before(to) {
			out = append(out, *b.Clone())
		}
	}
	return out, nil
}

func (l *MemoryLedger) Count(ctx context.Context) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int64(len(l.bills)), nil
}
