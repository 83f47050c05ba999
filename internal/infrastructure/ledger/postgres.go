package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/meditrack/pharmacy-pos-api/pkg/sequence"
	"gorm.io/gorm"
)

// PostgresLedger is a database-backed BillRepository for deployments that
// want bills to survive a restart. Atomicity of Append comes from the
// enclosing transaction plus the unique constraint on bill_number.
type PostgresLedger struct {
	db      *gorm.DB
	numbers *sequence.TokenGenerator
	now     func() time.Time
}

// NewPostgresLedger creates a ledger over the given database handle
func NewPostgresLedger(db *gorm.DB) *PostgresLedger {
	return &PostgresLedger{
		db:      db,
		numbers: sequence.NewTokenGenerator(billNumberPrefix),
		now:     time.Now,
	}
}

var _ repository.BillRepository = (*PostgresLedger)(nil)

func (l *PostgresLedger) Append(ctx context.Context, bill *entity.Bill) (*entity.Bill, error) {
	stored := bill.Clone()
	stored.ID = 0
	stored.BillNumber = l.numbers.Next()
	stored.IssuedAt = l.now()

	if err := l.db.WithContext(ctx).Create(stored).Error; err != nil {
		return nil, err
	}
	return stored, nil
}

func (l *PostgresLedger) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	var bill entity.Bill
	err := l.db.WithContext(ctx).Preload("Items").First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (l *PostgresLedger) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := l.db.WithContext(ctx).Model(&entity.Bill{})
	if params.CustomerPhone != "" {
		query = query.Where("customer_phone = ?", params.CustomerPhone)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Items").
		Order("id ASC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.Limit).
		Find(&bills).Error
	if err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

func (l *PostgresLedger) ListByRange(ctx context.Context, from, to time.Time) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := l.db.WithContext(ctx).
		Preload("Items").
		Where("issued_at >= ? AND issued_at < ?", from, to).
		Order("id ASC").
		Find(&bills).Error
	return bills, err
}

func (l *PostgresLedger) Count(ctx context.Context) (int64, error) {
	var total int64
	err := l.db.WithContext(ctx).Model(&entity.Bill{}).Count(&total).Error
	return total, err
}
