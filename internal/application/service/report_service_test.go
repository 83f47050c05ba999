package service

import (
	"context"
	"testing"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rangeStubLedger serves ListByRange from a fixed set of bills so reports
// can be tested against known issue times.
type rangeStubLedger struct {
	repository.BillRepository
	bills []entity.Bill
}

func (s *rangeStubLedger) ListByRange(ctx context.Context, from, to time.Time) ([]entity.Bill, error) {
	out := make([]entity.Bill, 0)
	for _, b := range s.bills {
		if !b.IssuedAt.Before(from) && b.IssuedAt.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func billAt(id int64, issuedAt time.Time, total string) entity.Bill {
	return entity.Bill{ID: id, IssuedAt: issuedAt, TotalAmount: dec(total)}
}

func TestDaily_EmptyDayYieldsZeroReport(t *testing.T) {
	svc := NewReportService(&rangeStubLedger{}, time.UTC)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	report, err := svc.Daily(context.Background(), &day)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", report.Date)
	assert.Equal(t, "0.00", report.TotalSales.StringFixed(2))
	assert.Zero(t, report.TotalTransactions)
	assert.Equal(t, "0.00", report.AverageTransaction.StringFixed(2))
	assert.Empty(t, report.Bills)
}

func TestDaily_SumsOnlyTheRequestedDay(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &rangeStubLedger{bills: []entity.Bill{
		billAt(1, day.Add(-time.Second), "99.99"),        // previous day
		billAt(2, day, "10.00"),                          // midnight inclusive
		billAt(3, day.Add(13*time.Hour), "20.50"),        // mid-day
		billAt(4, day.AddDate(0, 0, 1), "50.00"),         // next midnight exclusive
		billAt(5, day.Add(23*time.Hour+59*time.Minute), "3.13"),
	}}
	svc := NewReportService(store, time.UTC)

	report, err := svc.Daily(context.Background(), &day)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalTransactions)
	assert.Equal(t, "33.63", report.TotalSales.StringFixed(2))
	assert.Equal(t, "11.21", report.AverageTransaction.StringFixed(2))
	require.Len(t, report.Bills, 3)
	assert.Equal(t, int64(2), report.Bills[0].ID)
}

func TestDaily_BucketsInTheConfiguredTimezone(t *testing.T) {
	// 2024-03-01 02:00 in UTC+5:30 is 2024-02-29 20:30 UTC. With the report
	// timezone at UTC+5:30 the bill belongs to March 1st.
	loc := time.FixedZone("IST", 5*3600+1800)
	issuedAt := time.Date(2024, 3, 1, 2, 0, 0, 0, loc)

	store := &rangeStubLedger{bills: []entity.Bill{billAt(1, issuedAt, "42.00")}}
	svc := NewReportService(store, loc)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	report, err := svc.Daily(context.Background(), &day)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", report.Date)
	assert.Equal(t, 1, report.TotalTransactions)
	assert.Equal(t, "42.00", report.TotalSales.StringFixed(2))
}

func TestDaily_DefaultsToToday(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 4, 5, 0, time.UTC)
	store := &rangeStubLedger{bills: []entity.Bill{
		billAt(1, now.Add(-time.Hour), "7.50"),
		billAt(2, now.Add(-48*time.Hour), "100.00"),
	}}
	svc := NewReportService(store, time.UTC)
	svc.now = func() time.Time { return now }

	report, err := svc.Daily(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-02", report.Date)
	assert.Equal(t, 1, report.TotalTransactions)
	assert.Equal(t, "7.50", report.TotalSales.StringFixed(2))
}

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	svc := NewReportService(&rangeStubLedger{}, loc)

	day, err := svc.ParseDay("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 1, day.Day())
	assert.Equal(t, loc, day.Location())

	_, err = svc.ParseDay("01-03-2024")
	assert.Error(t, err)
}
