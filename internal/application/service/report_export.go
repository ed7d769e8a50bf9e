package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tillpoint/tillpoint-api/pkg/pdf"
)

// GetWeeklyCSV renders the weekly report as literal comma-separated text:
// the daily table, a blank separator line, then the top-item table with
// descriptions double-quote-escaped and wrapped in quotes.
func (s *ReportService) GetWeeklyCSV(ctx context.Context, weekStart *time.Time, branchID *uuid.UUID) (string, error) {
	report, err := s.GetWeeklyReport(ctx, weekStart, branchID)
	if err != nil {
		return "", err
	}
	return renderWeeklyCSV(report), nil
}

func renderWeeklyCSV(report *WeeklyReport) string {
	rows := make([]string, 0, len(report.DailyBreakdown)+len(report.TopItems)+3)

	rows = append(rows, "date,transaction_count,total_revenue,total_tax,average_basket")
	for _, day := range report.DailyBreakdown {
		rows = append(rows, fmt.Sprintf("%s,%d,%s,%s,%s",
			day.Date,
			day.TransactionCount,
			formatCSVNumber(day.TotalRevenue),
			formatCSVNumber(day.TotalTax),
			formatCSVNumber(day.AverageBasket),
		))
	}

	rows = append(rows, "", "top_item,quantity_sold,total_revenue")
	for _, item := range report.TopItems {
		rows = append(rows, fmt.Sprintf("%s,%d,%s",
			quoteCSVField(item.Description),
			item.QuantitySold,
			formatCSVNumber(item.TotalRevenue),
		))
	}

	return strings.Join(rows, "\n")
}

// formatCSVNumber renders a money value the same way it appears as a JSON
// number (no trailing zeros).
func formatCSVNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quoteCSVField doubles internal quotes and wraps the field in quotes
func quoteCSVField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// GetWeeklySummaryXLSX renders the weekly summary contract as an XLSX
// workbook with a totals block, the daily breakdown and the top items.
func (s *ReportService) GetWeeklySummaryXLSX(ctx context.Context, weekStart *time.Time, branchID *uuid.UUID) ([]byte, error) {
	contract, err := s.GetWeeklySummaryContract(ctx, weekStart, branchID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Weekly Summary"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Week start")
	f.SetCellValue(sheet, "B1", contract.WeekStart)
	f.SetCellValue(sheet, "A2", "Week end")
	f.SetCellValue(sheet, "B2", contract.WeekEnd)
	f.SetCellValue(sheet, "A3", "Number of sales")
	f.SetCellValue(sheet, "B3", contract.NumberOfSales)
	f.SetCellValue(sheet, "A4", "Total revenue")
	f.SetCellValue(sheet, "B4", contract.TotalRevenue)
	f.SetCellValue(sheet, "A5", "Total tax")
	f.SetCellValue(sheet, "B5", contract.TotalTax)

	row := 7
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "date")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "number_of_sales")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "total_revenue")
	for _, day := range contract.DailyBreakdown {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), day.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), day.NumberOfSales)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), day.TotalRevenue)
	}

	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "item_description")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "quantity_sold")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "revenue")
	for _, item := range contract.TopItems {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.ItemDescription)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.QuantitySold)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Revenue)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetWeeklyPDF renders the weekly report as a printable PDF document
func (s *ReportService) GetWeeklyPDF(ctx context.Context, weekStart *time.Time, branchID *uuid.UUID) ([]byte, error) {
	report, err := s.GetWeeklyReport(ctx, weekStart, branchID)
	if err != nil {
		return nil, err
	}
	currency, err := s.currency(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]pdf.DailySummaryData, 0, len(report.DailyBreakdown))
	for _, day := range report.DailyBreakdown {
		days = append(days, dailySummaryPDFData(day))
	}
	items := make([]pdf.TopItemData, 0, len(report.TopItems))
	for _, item := range report.TopItems {
		items = append(items, pdf.TopItemData{
			Description:  item.Description,
			QuantitySold: item.QuantitySold,
			TotalRevenue: item.TotalRevenue,
		})
	}

	return pdf.RenderWeeklyReport(pdf.WeeklyReportData{
		WeekStart:      report.WeekStart,
		WeekEnd:        report.WeekEnd,
		DailyBreakdown: days,
		TopItems:       items,
		Totals: pdf.WeeklyTotalsData{
			TransactionCount: report.Totals.TransactionCount,
			TotalRevenue:     report.Totals.TotalRevenue,
			TotalTax:         report.Totals.TotalTax,
			AverageBasket:    report.Totals.AverageBasket,
		},
	}, currency)
}

// GetDailyPDF renders a daily summary as a printable PDF document
func (s *ReportService) GetDailyPDF(ctx context.Context, day time.Time, branchID *uuid.UUID) ([]byte, error) {
	summary, err := s.GetDailySummary(ctx, day, branchID)
	if err != nil {
		return nil, err
	}
	currency, err := s.currency(ctx)
	if err != nil {
		return nil, err
	}
	return pdf.RenderDailySummary(dailySummaryPDFData(*summary), currency)
}

func dailySummaryPDFData(day DailySummary) pdf.DailySummaryData {
	return pdf.DailySummaryData{
		Date:             day.Date,
		TransactionCount: day.TransactionCount,
		TotalRevenue:     day.TotalRevenue,
		TotalTax:         day.TotalTax,
		AverageBasket:    day.AverageBasket,
	}
}
