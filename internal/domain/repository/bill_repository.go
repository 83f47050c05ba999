package repository

import (
	"context"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/pkg/pagination"
)

// BillRepository is the ledger: the ordered, append-only collection of all
// issued bills. Append assigns the bill's id, bill number and issue time in
// one atomic step; two concurrent appends never observe the same identity
// and reads always see a fully applied ledger state.
type BillRepository interface {
	Append(ctx context.Context, bill *entity.Bill) (*entity.Bill, error)
	// GetByID returns (nil, nil) when no bill has the given id
	GetByID(ctx context.Context, id int64) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// ListByRange returns bills with from <= IssuedAt < to, in insertion order
	ListByRange(ctx context.Context, from, to time.Time) ([]entity.Bill, error)
	Count(ctx context.Context) (int64, error)
}

// BillFilterParams contains filtering parameters for ledger queries
type BillFilterParams struct {
	Pagination    *pagination.Params
	CustomerPhone string
}
