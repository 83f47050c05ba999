package service

import (
	"context"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportService computes sales summaries by scanning the bill ledger
type ReportService struct {
	ledger repository.BillRepository
	loc    *time.Location
	now    func() time.Time
}

// NewReportService creates an aggregator bucketing days in loc, the
// ledger's canonical timezone
func NewReportService(ledger repository.BillRepository, loc *time.Location) *ReportService {
	return &ReportService{
		ledger: ledger,
		loc:    loc,
		now:    time.Now,
	}
}

// ParseDay parses a YYYY-MM-DD string as a day in the ledger's canonical
// timezone, so a report for "2024-03-01" means that date at the counter,
// not in UTC
func (s *ReportService) ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, s.loc)
}

// DailyReport represents the sales summary for one calendar day
type DailyReport struct {
	Date               string          `json:"date"`
	TotalSales         decimal.Decimal `json:"totalSales"`
	TotalTransactions  int             `json:"totalTransactions"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
	Bills              []entity.Bill   `json:"bills"`
}

// Daily summarizes the bills issued on the given calendar day (today when
// date is nil). A day with no bills produces a zero-valued report, not an
// error.
func (s *ReportService) Daily(ctx context.Context, date *time.Time) (*DailyReport, error) {
	target := s.now()
	if date != nil {
		target = *date
	}
	target = target.In(s.loc)

	dayStart := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bills, err := s.ledger.ListByRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	for _, bill := range bills {
		totalSales = totalSales.Add(bill.TotalAmount)
	}

	average := decimal.Zero
	if len(bills) > 0 {
		average = totalSales.Div(decimal.NewFromInt(int64(len(bills))))
	}

	return &DailyReport{
		Date:               dayStart.Format("2006-01-02"),
		TotalSales:         totalSales.Round(2),
		TotalTransactions:  len(bills),
		AverageTransaction: average.Round(2),
		Bills:              bills,
	}, nil
}
