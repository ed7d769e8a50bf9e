// Package pdf renders receipts and report documents with gofpdf. Callers
// pass plain data structs; all monetary values arrive already rounded to two
// decimal places.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptLineData is one sale line on a receipt
type ReceiptLineData struct {
	Description string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// ReceiptData is everything a rendered receipt shows
type ReceiptData struct {
	BusinessName    string
	BusinessAddress string
	ReceiptNumber   string
	SaleTimestamp   string
	BranchName      string
	CashierName     string
	CustomerName    string
	Lines           []ReceiptLineData
	TotalBeforeTax  float64
	TaxAmount       float64
	TotalAmount     float64
	Currency        string
	Footer          string
}

// DailySummaryData is one day of aggregates for report documents
type DailySummaryData struct {
	Date             string
	TransactionCount int
	TotalRevenue     float64
	TotalTax         float64
	AverageBasket    float64
}

// TopItemData is one ranked line-item group for report documents
type TopItemData struct {
	Description  string
	QuantitySold int64
	TotalRevenue float64
}

// WeeklyTotalsData holds the week-level aggregates for report documents
type WeeklyTotalsData struct {
	TransactionCount int
	TotalRevenue     float64
	TotalTax         float64
	AverageBasket    float64
}

// WeeklyReportData is everything a rendered weekly report shows
type WeeklyReportData struct {
	WeekStart      string
	WeekEnd        string
	DailyBreakdown []DailySummaryData
	TopItems       []TopItemData
	Totals         WeeklyTotalsData
}

func moneyCell(currency string, v float64) string {
	return fmt.Sprintf("%s %.2f", currency, v)
}

// RenderReceipt renders a sale receipt as a single-page PDF
func RenderReceipt(data ReceiptData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, data.BusinessName, "", 1, "C", false, 0, "")
	if data.BusinessAddress != "" {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 6, data.BusinessAddress, "", 1, "C", false, 0, "")
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Receipt: "+data.ReceiptNumber, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Date: "+data.SaleTimestamp, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Branch: "+data.BranchName, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Cashier: "+data.CashierName, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Customer: "+data.CustomerName, "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(90, 7, "Item", "B", 0, "L", false, 0, "")
	doc.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Unit", "B", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Total", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, line := range data.Lines {
		doc.CellFormat(90, 7, line.Description, "", 0, "L", false, 0, "")
		doc.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, moneyCell(data.Currency, line.UnitPrice), "", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, moneyCell(data.Currency, line.LineTotal), "", 1, "R", false, 0, "")
	}
	doc.Ln(2)

	doc.CellFormat(145, 7, "Subtotal", "T", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, moneyCell(data.Currency, data.TotalBeforeTax), "T", 1, "R", false, 0, "")
	doc.CellFormat(145, 7, "Tax", "", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, moneyCell(data.Currency, data.TaxAmount), "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(145, 8, "Total", "", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, moneyCell(data.Currency, data.TotalAmount), "", 1, "R", false, 0, "")

	if data.Footer != "" {
		doc.Ln(8)
		doc.SetFont("Helvetica", "I", 9)
		doc.CellFormat(0, 6, data.Footer, "", 1, "C", false, 0, "")
	}

	return output(doc)
}

// RenderDailySummary renders a one-day summary as a PDF
func RenderDailySummary(day DailySummaryData, currency string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Daily Summary", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, day.Date, "", 1, "C", false, 0, "")
	doc.Ln(6)

	summaryRow(doc, "Transactions", fmt.Sprintf("%d", day.TransactionCount))
	summaryRow(doc, "Total revenue", moneyCell(currency, day.TotalRevenue))
	summaryRow(doc, "Total tax", moneyCell(currency, day.TotalTax))
	summaryRow(doc, "Average basket", moneyCell(currency, day.AverageBasket))

	return output(doc)
}

// RenderWeeklyReport renders the weekly report as a PDF
func RenderWeeklyReport(report WeeklyReportData, currency string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Weekly Report", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, report.WeekStart+" to "+report.WeekEnd, "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(40, 7, "Date", "B", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, "Sales", "B", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, "Revenue", "B", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Tax", "B", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Avg basket", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, day := range report.DailyBreakdown {
		doc.CellFormat(40, 7, day.Date, "", 0, "L", false, 0, "")
		doc.CellFormat(30, 7, fmt.Sprintf("%d", day.TransactionCount), "", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, moneyCell(currency, day.TotalRevenue), "", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, moneyCell(currency, day.TotalTax), "", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, moneyCell(currency, day.AverageBasket), "", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(110, 7, "Week totals ("+fmt.Sprintf("%d", report.Totals.TransactionCount)+" sales)", "T", 0, "L", false, 0, "")
	doc.CellFormat(35, 7, moneyCell(currency, report.Totals.TotalRevenue), "T", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, moneyCell(currency, report.Totals.TotalTax), "T", 1, "R", false, 0, "")
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Top Items", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(110, 7, "Item", "B", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, "Qty", "B", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, "Revenue", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, item := range report.TopItems {
		doc.CellFormat(110, 7, item.Description, "", 0, "L", false, 0, "")
		doc.CellFormat(30, 7, fmt.Sprintf("%d", item.QuantitySold), "", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, moneyCell(currency, item.TotalRevenue), "", 1, "R", false, 0, "")
	}

	return output(doc)
}

func summaryRow(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
