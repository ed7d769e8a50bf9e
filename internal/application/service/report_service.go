package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/money"
)

const (
	topItemLimit     = 5
	recentSalesLimit = 10
)

// ReportService computes daily/weekly revenue summaries and dashboard
// metrics. Everything is derived fresh from sale rows on every call; nothing
// is cached or persisted.
type ReportService struct {
	branchRepo    repository.BranchRepository
	analyticsRepo repository.AnalyticsRepository
	settingsRepo  repository.SettingsRepository
}

// NewReportService creates a new report service
func NewReportService(
	branchRepo repository.BranchRepository,
	analyticsRepo repository.AnalyticsRepository,
	settingsRepo repository.SettingsRepository,
) *ReportService {
	return &ReportService{
		branchRepo:    branchRepo,
		analyticsRepo: analyticsRepo,
		settingsRepo:  settingsRepo,
	}
}

// DailySummary is one branch-local calendar day of completed sales
type DailySummary struct {
	Date             string  `json:"date"`
	BranchID         string  `json:"branch_id"`
	TransactionCount int     `json:"transaction_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalTax         float64 `json:"total_tax"`
	AverageBasket    float64 `json:"average_basket"`
}

// TopItem is a line-item group ranked by summed revenue
type TopItem struct {
	Description  string  `json:"description"`
	QuantitySold int64   `json:"quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// RecentSale is a recently completed sale shown on the dashboard
type RecentSale struct {
	ID            string  `json:"id"`
	ReceiptNumber string  `json:"receipt_number"`
	SaleTimestamp string  `json:"sale_timestamp"`
	CustomerName  *string `json:"customer_name"`
	ItemCount     int64   `json:"item_count"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
}

// DashboardMetrics is the full dashboard payload
type DashboardMetrics struct {
	Today       DailySummary   `json:"today"`
	Yesterday   DailySummary   `json:"yesterday"`
	WeeklyTrend []DailySummary `json:"weekly_trend"`
	TopItems    []TopItem      `json:"top_items"`
	RecentSales []RecentSale   `json:"recent_sales"`
}

// WeeklyTotals holds week-level aggregates recomputed from the raw range
// query rather than summed from the seven daily summaries, so rounding error
// never compounds.
type WeeklyTotals struct {
	TransactionCount int     `json:"transaction_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalTax         float64 `json:"total_tax"`
	AverageBasket    float64 `json:"average_basket"`
}

// WeeklyReport is a Monday-aligned seven day report
type WeeklyReport struct {
	WeekStart      string         `json:"week_start"`
	WeekEnd        string         `json:"week_end"`
	BranchID       string         `json:"branch_id"`
	DailyBreakdown []DailySummary `json:"daily_breakdown"`
	TopItems       []TopItem      `json:"top_items"`
	Totals         WeeklyTotals   `json:"totals"`
}

// branchContext is the resolved branch filter and timezone for a report.
// A nil branchID covers all branches.
type branchContext struct {
	branchID *uuid.UUID
	timezone string
}

// resolveBranchContext resolves the effective branch and timezone. An
// explicit branch id is preserved even when the branch does not exist (the
// timezone then defaults to UTC); with no id the first active branch wins,
// and a system with no branches at all reports across every branch in UTC.
func (s *ReportService) resolveBranchContext(ctx context.Context, branchID *uuid.UUID) (branchContext, error) {
	if branchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *branchID)
		if err != nil {
			return branchContext{}, err
		}
		timezone := "UTC"
		if branch != nil {
			timezone = branch.Timezone
		}
		return branchContext{branchID: branchID, timezone: timezone}, nil
	}

	branch, err := s.branchRepo.FirstActive(ctx)
	if err != nil {
		return branchContext{}, err
	}
	if branch == nil {
		return branchContext{timezone: "UTC"}, nil
	}
	id := branch.ID
	return branchContext{branchID: &id, timezone: branch.Timezone}, nil
}

// GetDailySummary computes the summary for one calendar day in the resolved
// branch's local timezone.
func (s *ReportService) GetDailySummary(ctx context.Context, day time.Time, branchID *uuid.UUID) (*DailySummary, error) {
	bc, err := s.resolveBranchContext(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return s.dailySummary(ctx, day, bc)
}

func (s *ReportService) dailySummary(ctx context.Context, day time.Time, bc branchContext) (*DailySummary, error) {
	day = startOfDayUTC(day)
	start, end := utcRangeForBranchDate(day, parseTimezoneOffsetMinutes(bc.timezone))

	rows, err := s.analyticsRepo.CompletedSaleTotals(ctx, start, end, bc.branchID)
	if err != nil {
		return nil, err
	}

	count := len(rows)
	revenues := make([]decimal.Decimal, 0, count)
	taxes := make([]decimal.Decimal, 0, count)
	for _, row := range rows {
		revenues = append(revenues, row.TotalAmount)
		taxes = append(taxes, row.TaxAmount)
	}

	totalRevenue := money.Sum(revenues...)
	totalTax := money.Sum(taxes...)

	// Explicit zero guard: an empty day must report 0, never NaN.
	averageBasket := 0.0
	if count > 0 {
		averageBasket = money.ToNumber(totalRevenue.Div(decimal.NewFromInt(int64(count))))
	}

	branchIDStr := ""
	if bc.branchID != nil {
		branchIDStr = bc.branchID.String()
	}

	return &DailySummary{
		Date:             isoDateOnly(day),
		BranchID:         branchIDStr,
		TransactionCount: count,
		TotalRevenue:     money.ToNumber(totalRevenue),
		TotalTax:         money.ToNumber(totalTax),
		AverageBasket:    averageBasket,
	}, nil
}

func (s *ReportService) topItems(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]TopItem, error) {
	rows, err := s.analyticsRepo.TopItemsByRevenue(ctx, start, end, branchID, topItemLimit)
	if err != nil {
		return nil, err
	}

	items := make([]TopItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, TopItem{
			Description:  row.Description,
			QuantitySold: row.QuantitySold,
			TotalRevenue: money.ToNumber(row.TotalRevenue),
		})
	}
	return items, nil
}

// GetDashboardMetrics computes today's and yesterday's summaries, a 7-day
// trailing trend ending today, top items over that trailing window, and the
// most recent completed sales.
func (s *ReportService) GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	today := startOfDayUTC(time.Now())
	yesterday := addDays(today, -1)
	trendStart := addDays(today, -6)

	bc, err := s.resolveBranchContext(ctx, nil)
	if err != nil {
		return nil, err
	}

	todaySummary, err := s.dailySummary(ctx, today, bc)
	if err != nil {
		return nil, err
	}
	yesterdaySummary, err := s.dailySummary(ctx, yesterday, bc)
	if err != nil {
		return nil, err
	}

	trend := make([]DailySummary, 0, 7)
	for i := 0; i < 7; i++ {
		day, err := s.dailySummary(ctx, addDays(trendStart, i), bc)
		if err != nil {
			return nil, err
		}
		trend = append(trend, *day)
	}

	topItems, err := s.topItems(ctx, trendStart, addDays(today, 1), bc.branchID)
	if err != nil {
		return nil, err
	}

	recentRows, err := s.analyticsRepo.RecentCompletedSales(ctx, bc.branchID, recentSalesLimit)
	if err != nil {
		return nil, err
	}

	recent := make([]RecentSale, 0, len(recentRows))
	for _, row := range recentRows {
		recent = append(recent, RecentSale{
			ID:            row.ID.String(),
			ReceiptNumber: row.ReceiptNumber,
			SaleTimestamp: row.SaleTimestamp.UTC().Format(time.RFC3339),
			CustomerName:  row.CustomerName,
			ItemCount:     row.ItemCount,
			TotalAmount:   money.ToNumber(row.TotalAmount),
			Status:        row.Status.String(),
		})
	}

	return &DashboardMetrics{
		Today:       *todaySummary,
		Yesterday:   *yesterdaySummary,
		WeeklyTrend: trend,
		TopItems:    topItems,
		RecentSales: recent,
	}, nil
}

// GetWeeklyReport computes the seven daily summaries for the week starting
// at weekStart (the current ISO week when nil), top items for the whole
// window, and week totals recomputed from the raw completed-sales query.
func (s *ReportService) GetWeeklyReport(ctx context.Context, weekStart *time.Time, branchID *uuid.UUID) (*WeeklyReport, error) {
	var ws time.Time
	if weekStart != nil {
		ws = startOfDayUTC(*weekStart)
	} else {
		ws = startOfWeek(time.Now())
	}

	bc, err := s.resolveBranchContext(ctx, branchID)
	if err != nil {
		return nil, err
	}

	weekStartUTC, _ := utcRangeForBranchDate(ws, parseTimezoneOffsetMinutes(bc.timezone))
	weekEndUTC := weekStartUTC.Add(7 * 24 * time.Hour)

	dailyBreakdown := make([]DailySummary, 0, 7)
	for i := 0; i < 7; i++ {
		day, err := s.dailySummary(ctx, addDays(ws, i), bc)
		if err != nil {
			return nil, err
		}
		dailyBreakdown = append(dailyBreakdown, *day)
	}

	topItems, err := s.topItems(ctx, weekStartUTC, weekEndUTC, bc.branchID)
	if err != nil {
		return nil, err
	}

	rows, err := s.analyticsRepo.CompletedSaleTotals(ctx, weekStartUTC, weekEndUTC, bc.branchID)
	if err != nil {
		return nil, err
	}

	count := len(rows)
	revenues := make([]decimal.Decimal, 0, count)
	taxes := make([]decimal.Decimal, 0, count)
	for _, row := range rows {
		revenues = append(revenues, row.TotalAmount)
		taxes = append(taxes, row.TaxAmount)
	}
	totalRevenue := money.Sum(revenues...)
	totalTax := money.Sum(taxes...)

	averageBasket := 0.0
	if count > 0 {
		averageBasket = money.ToNumber(totalRevenue.Div(decimal.NewFromInt(int64(count))))
	}

	branchIDStr := ""
	if bc.branchID != nil {
		branchIDStr = bc.branchID.String()
	}

	return &WeeklyReport{
		WeekStart:      isoDateOnly(ws),
		WeekEnd:        isoDateOnly(addDays(ws, 6)),
		BranchID:       branchIDStr,
		DailyBreakdown: dailyBreakdown,
		TopItems:       topItems,
		Totals: WeeklyTotals{
			TransactionCount: count,
			TotalRevenue:     money.ToNumber(totalRevenue),
			TotalTax:         money.ToNumber(totalTax),
			AverageBasket:    averageBasket,
		},
	}, nil
}

// DailySummaryContract is the flatter external summary shape
type DailySummaryContract struct {
	Date             string  `json:"date"`
	BranchID         string  `json:"branch_id"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalTax         float64 `json:"total_tax"`
	NumberOfSales    int     `json:"number_of_sales"`
	AverageSaleValue float64 `json:"average_sale_value"`
}

// WeeklyDayContract is one day inside the weekly summary contract
type WeeklyDayContract struct {
	Date          string  `json:"date"`
	TotalRevenue  float64 `json:"total_revenue"`
	NumberOfSales int     `json:"number_of_sales"`
}

// WeeklyTopItemContract is one top item inside the weekly summary contract
type WeeklyTopItemContract struct {
	ItemDescription string  `json:"item_description"`
	QuantitySold    int64   `json:"quantity_sold"`
	Revenue         float64 `json:"revenue"`
}

// WeeklySummaryContract is the published weekly summary shape
type WeeklySummaryContract struct {
	WeekStart      string                  `json:"week_start"`
	WeekEnd        string                  `json:"week_end"`
	BranchID       string                  `json:"branch_id"`
	TotalRevenue   float64                 `json:"total_revenue"`
	TotalTax       float64                 `json:"total_tax"`
	NumberOfSales  int                     `json:"number_of_sales"`
	DailyBreakdown []WeeklyDayContract     `json:"daily_breakdown"`
	TopItems       []WeeklyTopItemContract `json:"top_items"`
}

// GetDailySummaryContract reshapes the daily summary into the published
// summary contract without recomputing the aggregation.
func (s *ReportService) GetDailySummaryContract(ctx context.Context, day time.Time, branchID *uuid.UUID) (*DailySummaryContract, error) {
	summary, err := s.GetDailySummary(ctx, day, branchID)
	if err != nil {
		return nil, err
	}
	return &DailySummaryContract{
		Date:             summary.Date,
		BranchID:         summary.BranchID,
		TotalRevenue:     summary.TotalRevenue,
		TotalTax:         summary.TotalTax,
		NumberOfSales:    summary.TransactionCount,
		AverageSaleValue: summary.AverageBasket,
	}, nil
}

// GetWeeklySummaryContract reshapes the weekly report into the published
// summary contract without recomputing the aggregation.
func (s *ReportService) GetWeeklySummaryContract(ctx context.Context, weekStart *time.Time, branchID *uuid.UUID) (*WeeklySummaryContract, error) {
	report, err := s.GetWeeklyReport(ctx, weekStart, branchID)
	if err != nil {
		return nil, err
	}
	return weeklySummaryContract(report), nil
}

func weeklySummaryContract(report *WeeklyReport) *WeeklySummaryContract {
	days := make([]WeeklyDayContract, 0, len(report.DailyBreakdown))
	for _, day := range report.DailyBreakdown {
		days = append(days, WeeklyDayContract{
			Date:          day.Date,
			TotalRevenue:  day.TotalRevenue,
			NumberOfSales: day.TransactionCount,
		})
	}

	items := make([]WeeklyTopItemContract, 0, len(report.TopItems))
	for _, item := range report.TopItems {
		items = append(items, WeeklyTopItemContract{
			ItemDescription: item.Description,
			QuantitySold:    item.QuantitySold,
			Revenue:         item.TotalRevenue,
		})
	}

	return &WeeklySummaryContract{
		WeekStart:      report.WeekStart,
		WeekEnd:        report.WeekEnd,
		BranchID:       report.BranchID,
		TotalRevenue:   report.Totals.TotalRevenue,
		TotalTax:       report.Totals.TotalTax,
		NumberOfSales:  report.Totals.TransactionCount,
		DailyBreakdown: days,
		TopItems:       items,
	}
}

// currency returns the display currency from the oldest business profile,
// defaulting to USD.
func (s *ReportService) currency(ctx context.Context) (string, error) {
	setting, err := s.settingsRepo.First(ctx)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "USD", nil
	}
	return setting.Currency, nil
}
