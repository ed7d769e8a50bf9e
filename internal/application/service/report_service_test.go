package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newReportFixture() (*ReportService, *fakeBranchRepo, *fakeAnalyticsRepo, *fakeSettingsRepo) {
	branchRepo := &fakeBranchRepo{}
	analyticsRepo := &fakeAnalyticsRepo{}
	settingsRepo := &fakeSettingsRepo{}
	return NewReportService(branchRepo, analyticsRepo, settingsRepo), branchRepo, analyticsRepo, settingsRepo
}

func TestDailySummaryEmptyDayReportsZeroes(t *testing.T) {
	svc, branchRepo, _, _ := newReportFixture()
	branchRepo.Create(context.Background(), &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true})

	summary, err := svc.GetDailySummary(context.Background(), date(2024, time.June, 10), nil)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}

	if summary.TransactionCount != 0 {
		t.Errorf("TransactionCount = %d, want 0", summary.TransactionCount)
	}
	if summary.TotalRevenue != 0 || summary.TotalTax != 0 {
		t.Errorf("totals = %v/%v, want 0/0", summary.TotalRevenue, summary.TotalTax)
	}
	if summary.AverageBasket != 0 {
		t.Errorf("AverageBasket = %v, want 0 on an empty day", summary.AverageBasket)
	}
	if math.IsNaN(summary.AverageBasket) {
		t.Error("AverageBasket is NaN")
	}
}

func TestDailySummaryAggregatesCompletedSales(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	day := date(2024, time.June, 10)
	analyticsRepo.add(fakeSale{
		timestamp:   day.Add(9 * time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("45.60"),
		taxAmount:   dec("7.60"),
	})
	analyticsRepo.add(fakeSale{
		timestamp:   day.Add(14 * time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("10.00"),
		taxAmount:   dec("0.00"),
	})
	// Refunded sales never count
	analyticsRepo.add(fakeSale{
		timestamp:   day.Add(15 * time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("99.99"),
		taxAmount:   dec("9.99"),
		status:      enum.SaleStatusRefunded,
	})
	// Next day is outside the half-open range
	analyticsRepo.add(fakeSale{
		timestamp:   day.Add(24 * time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("50.00"),
		taxAmount:   dec("5.00"),
	})

	summary, err := svc.GetDailySummary(context.Background(), day, nil)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}

	if summary.TransactionCount != 2 {
		t.Errorf("TransactionCount = %d, want 2", summary.TransactionCount)
	}
	if summary.TotalRevenue != 55.60 {
		t.Errorf("TotalRevenue = %v, want 55.60", summary.TotalRevenue)
	}
	if summary.TotalTax != 7.60 {
		t.Errorf("TotalTax = %v, want 7.60", summary.TotalTax)
	}
	if summary.AverageBasket != 27.80 {
		t.Errorf("AverageBasket = %v, want 27.80", summary.AverageBasket)
	}
	if summary.Date != "2024-06-10" {
		t.Errorf("Date = %q, want 2024-06-10", summary.Date)
	}
}

func TestDailySummaryUsesBranchTimezone(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Nairobi", Timezone: "+03:00", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	// 2024-06-09T22:00Z is already June 10th at +03:00
	analyticsRepo.add(fakeSale{
		timestamp:   time.Date(2024, time.June, 9, 22, 0, 0, 0, time.UTC),
		branchID:    branch.ID,
		totalAmount: dec("20.00"),
		taxAmount:   dec("2.00"),
	})
	// 2024-06-10T22:00Z is already June 11th locally
	analyticsRepo.add(fakeSale{
		timestamp:   time.Date(2024, time.June, 10, 22, 0, 0, 0, time.UTC),
		branchID:    branch.ID,
		totalAmount: dec("30.00"),
		taxAmount:   dec("3.00"),
	})

	summary, err := svc.GetDailySummary(context.Background(), date(2024, time.June, 10), nil)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}

	if summary.TransactionCount != 1 {
		t.Fatalf("TransactionCount = %d, want 1", summary.TransactionCount)
	}
	if summary.TotalRevenue != 20.00 {
		t.Errorf("TotalRevenue = %v, want 20.00", summary.TotalRevenue)
	}
}

func TestResolveBranchContextFallbacks(t *testing.T) {
	t.Run("no branches at all", func(t *testing.T) {
		svc, _, _, _ := newReportFixture()
		bc, err := svc.resolveBranchContext(context.Background(), nil)
		if err != nil {
			t.Fatalf("resolveBranchContext: %v", err)
		}
		if bc.branchID != nil {
			t.Errorf("branchID = %v, want nil (all branches)", bc.branchID)
		}
		if bc.timezone != "UTC" {
			t.Errorf("timezone = %q, want UTC", bc.timezone)
		}
	})

	t.Run("first active branch wins", func(t *testing.T) {
		svc, branchRepo, _, _ := newReportFixture()
		branchRepo.Create(context.Background(), &entity.Branch{Name: "Closed", Timezone: "+05:00", IsActive: false})
		active := &entity.Branch{Name: "Open", Timezone: "+03:00", IsActive: true}
		branchRepo.Create(context.Background(), active)

		bc, err := svc.resolveBranchContext(context.Background(), nil)
		if err != nil {
			t.Fatalf("resolveBranchContext: %v", err)
		}
		if bc.branchID == nil || *bc.branchID != active.ID {
			t.Errorf("branchID = %v, want %v", bc.branchID, active.ID)
		}
		if bc.timezone != "+03:00" {
			t.Errorf("timezone = %q, want +03:00", bc.timezone)
		}
	})

	t.Run("explicit unknown id is preserved with UTC", func(t *testing.T) {
		svc, _, _, _ := newReportFixture()
		unknown := uuid.New()
		bc, err := svc.resolveBranchContext(context.Background(), &unknown)
		if err != nil {
			t.Fatalf("resolveBranchContext: %v", err)
		}
		if bc.branchID == nil || *bc.branchID != unknown {
			t.Errorf("branchID = %v, want %v preserved", bc.branchID, unknown)
		}
		if bc.timezone != "UTC" {
			t.Errorf("timezone = %q, want UTC", bc.timezone)
		}
	})
}

func TestWeeklyReportTotalsMatchDailyBreakdown(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	weekStart := date(2024, time.June, 10) // a Monday
	amounts := []string{"10.10", "2.20", "33.33", "7.77", "19.99"}
	for i, amount := range amounts {
		analyticsRepo.add(fakeSale{
			timestamp:   weekStart.AddDate(0, 0, i).Add(12 * time.Hour),
			branchID:    branch.ID,
			totalAmount: dec(amount),
			taxAmount:   dec("1.00"),
		})
	}
	// Outside the week
	analyticsRepo.add(fakeSale{
		timestamp:   weekStart.AddDate(0, 0, 7).Add(time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("100.00"),
		taxAmount:   dec("10.00"),
	})

	report, err := svc.GetWeeklyReport(context.Background(), &weekStart, nil)
	if err != nil {
		t.Fatalf("GetWeeklyReport: %v", err)
	}

	if report.WeekStart != "2024-06-10" || report.WeekEnd != "2024-06-16" {
		t.Errorf("week bounds = %s..%s, want 2024-06-10..2024-06-16", report.WeekStart, report.WeekEnd)
	}
	if len(report.DailyBreakdown) != 7 {
		t.Fatalf("len(DailyBreakdown) = %d, want 7", len(report.DailyBreakdown))
	}
	if report.Totals.TransactionCount != len(amounts) {
		t.Errorf("Totals.TransactionCount = %d, want %d", report.Totals.TransactionCount, len(amounts))
	}
	if report.Totals.TotalRevenue != 73.39 {
		t.Errorf("Totals.TotalRevenue = %v, want 73.39", report.Totals.TotalRevenue)
	}

	var summedDaily float64
	var summedCount int
	for _, day := range report.DailyBreakdown {
		summedDaily += day.TotalRevenue
		summedCount += day.TransactionCount
	}
	if summedCount != report.Totals.TransactionCount {
		t.Errorf("summed daily count = %d, totals count = %d", summedCount, report.Totals.TransactionCount)
	}
	if diff := math.Abs(summedDaily - report.Totals.TotalRevenue); diff > 0.01 {
		t.Errorf("summed daily revenue %v differs from totals %v by %v", summedDaily, report.Totals.TotalRevenue, diff)
	}
}

func TestWeeklyReportDefaultsToCurrentWeek(t *testing.T) {
	svc, branchRepo, _, _ := newReportFixture()
	branchRepo.Create(context.Background(), &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true})

	report, err := svc.GetWeeklyReport(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("GetWeeklyReport: %v", err)
	}

	want := isoDateOnly(startOfWeek(time.Now()))
	if report.WeekStart != want {
		t.Errorf("WeekStart = %q, want current week start %q", report.WeekStart, want)
	}
}

func TestTopItemsCappedAndOrdered(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	weekStart := date(2024, time.June, 10)
	descriptions := []string{"Coffee", "Tea", "Cake", "Juice", "Bagel", "Muffin", "Scone"}
	for i, description := range descriptions {
		revenue := decimal.NewFromInt(int64((i + 1) * 10))
		analyticsRepo.add(fakeSale{
			timestamp:   weekStart.Add(time.Duration(i+1) * time.Hour),
			branchID:    branch.ID,
			totalAmount: revenue,
			taxAmount:   decimal.Zero,
			items: []fakeItem{
				{description: description, quantity: int64(i + 1), lineTotal: revenue},
			},
		})
	}

	report, err := svc.GetWeeklyReport(context.Background(), &weekStart, nil)
	if err != nil {
		t.Fatalf("GetWeeklyReport: %v", err)
	}

	if len(report.TopItems) != 5 {
		t.Fatalf("len(TopItems) = %d, want 5", len(report.TopItems))
	}
	if report.TopItems[0].Description != "Scone" {
		t.Errorf("TopItems[0] = %q, want Scone", report.TopItems[0].Description)
	}
	for i := 1; i < len(report.TopItems); i++ {
		if report.TopItems[i].TotalRevenue > report.TopItems[i-1].TotalRevenue {
			t.Errorf("TopItems not ordered by revenue at index %d", i)
		}
	}
}

func TestTopItemsGroupByExactDescription(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	weekStart := date(2024, time.June, 10)
	analyticsRepo.add(fakeSale{
		timestamp:   weekStart.Add(time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("30.00"),
		taxAmount:   decimal.Zero,
		items: []fakeItem{
			{description: "Coffee", quantity: 2, lineTotal: dec("10.00")},
			{description: "coffee", quantity: 1, lineTotal: dec("20.00")},
		},
	})

	report, err := svc.GetWeeklyReport(context.Background(), &weekStart, nil)
	if err != nil {
		t.Fatalf("GetWeeklyReport: %v", err)
	}

	// Case differences are distinct groups
	if len(report.TopItems) != 2 {
		t.Fatalf("len(TopItems) = %d, want 2", len(report.TopItems))
	}
	if report.TopItems[0].Description != "coffee" || report.TopItems[0].TotalRevenue != 20.00 {
		t.Errorf("TopItems[0] = %+v, want coffee / 20.00", report.TopItems[0])
	}
}

func TestWeeklySummaryContractRenamesFields(t *testing.T) {
	report := &WeeklyReport{
		WeekStart: "2024-06-10",
		WeekEnd:   "2024-06-16",
		BranchID:  "b-1",
		DailyBreakdown: []DailySummary{
			{Date: "2024-06-10", TransactionCount: 3, TotalRevenue: 30.00},
		},
		TopItems: []TopItem{
			{Description: "Coffee", QuantitySold: 5, TotalRevenue: 25.00},
		},
		Totals: WeeklyTotals{TransactionCount: 3, TotalRevenue: 30.00, TotalTax: 3.00},
	}

	contract := weeklySummaryContract(report)

	if contract.NumberOfSales != 3 {
		t.Errorf("NumberOfSales = %d, want 3", contract.NumberOfSales)
	}
	if len(contract.DailyBreakdown) != 1 || contract.DailyBreakdown[0].NumberOfSales != 3 {
		t.Errorf("DailyBreakdown = %+v, want number_of_sales = 3", contract.DailyBreakdown)
	}
	if len(contract.TopItems) != 1 || contract.TopItems[0].ItemDescription != "Coffee" || contract.TopItems[0].Revenue != 25.00 {
		t.Errorf("TopItems = %+v, want item_description Coffee / revenue 25.00", contract.TopItems)
	}
}

func TestDailySummaryContractRenamesFields(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	day := date(2024, time.June, 10)
	analyticsRepo.add(fakeSale{
		timestamp:   day.Add(time.Hour),
		branchID:    branch.ID,
		totalAmount: dec("40.00"),
		taxAmount:   dec("4.00"),
	})

	contract, err := svc.GetDailySummaryContract(context.Background(), day, nil)
	if err != nil {
		t.Fatalf("GetDailySummaryContract: %v", err)
	}

	if contract.NumberOfSales != 1 {
		t.Errorf("NumberOfSales = %d, want 1", contract.NumberOfSales)
	}
	if contract.AverageSaleValue != 40.00 {
		t.Errorf("AverageSaleValue = %v, want 40.00", contract.AverageSaleValue)
	}
}

func TestDashboardMetricsShape(t *testing.T) {
	svc, branchRepo, analyticsRepo, _ := newReportFixture()
	branch := &entity.Branch{Name: "Main", Timezone: "UTC", IsActive: true}
	branchRepo.Create(context.Background(), branch)

	today := startOfDayUTC(time.Now())
	customer := "Ada"
	analyticsRepo.add(fakeSale{
		receiptNumber: "RCPT-20240610120000-1234",
		timestamp:     today.Add(time.Hour),
		branchID:      branch.ID,
		customerName:  &customer,
		totalAmount:   dec("12.30"),
		taxAmount:     dec("1.23"),
		items: []fakeItem{
			{description: "Coffee", quantity: 3, lineTotal: dec("12.30")},
		},
	})

	metrics, err := svc.GetDashboardMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardMetrics: %v", err)
	}

	if len(metrics.WeeklyTrend) != 7 {
		t.Errorf("len(WeeklyTrend) = %d, want 7", len(metrics.WeeklyTrend))
	}
	if metrics.Today.TransactionCount != 1 {
		t.Errorf("Today.TransactionCount = %d, want 1", metrics.Today.TransactionCount)
	}
	if metrics.Yesterday.TransactionCount != 0 {
		t.Errorf("Yesterday.TransactionCount = %d, want 0", metrics.Yesterday.TransactionCount)
	}
	if len(metrics.RecentSales) != 1 {
		t.Fatalf("len(RecentSales) = %d, want 1", len(metrics.RecentSales))
	}
	if metrics.RecentSales[0].ItemCount != 3 {
		t.Errorf("RecentSales[0].ItemCount = %d, want 3", metrics.RecentSales[0].ItemCount)
	}
	if len(metrics.TopItems) != 1 || metrics.TopItems[0].Description != "Coffee" {
		t.Errorf("TopItems = %+v, want one Coffee entry", metrics.TopItems)
	}
}
