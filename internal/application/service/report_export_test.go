package service

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestRenderWeeklyCSVLayout(t *testing.T) {
	report := &WeeklyReport{
		WeekStart: "2024-06-10",
		WeekEnd:   "2024-06-16",
		DailyBreakdown: []DailySummary{
			{Date: "2024-06-10", TransactionCount: 2, TotalRevenue: 55.60, TotalTax: 7.60, AverageBasket: 27.80},
			{Date: "2024-06-11", TransactionCount: 0, TotalRevenue: 0, TotalTax: 0, AverageBasket: 0},
		},
		TopItems: []TopItem{
			{Description: "Coffee", QuantitySold: 4, TotalRevenue: 40.00},
		},
	}

	got := renderWeeklyCSV(report)
	lines := strings.Split(got, "\n")

	want := []string{
		"date,transaction_count,total_revenue,total_tax,average_basket",
		"2024-06-10,2,55.6,7.6,27.8",
		"2024-06-11,0,0,0,0",
		"",
		"top_item,quantity_sold,total_revenue",
		`"Coffee",4,40`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderWeeklyCSVEscapesQuotes(t *testing.T) {
	report := &WeeklyReport{
		TopItems: []TopItem{
			{Description: `Tom's "Special" Blend`, QuantitySold: 1, TotalRevenue: 9.99},
		},
	}

	got := renderWeeklyCSV(report)

	wantLine := `"Tom's ""Special"" Blend",1,9.99`
	if !strings.Contains(got, wantLine) {
		t.Fatalf("output does not contain %q:\n%s", wantLine, got)
	}

	// The item table must survive a round trip through a standard CSV reader
	itemSection := got[strings.Index(got, "top_item"):]
	records, err := csv.NewReader(strings.NewReader(itemSection)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 item", len(records))
	}
	if records[1][0] != `Tom's "Special" Blend` {
		t.Errorf("parsed description = %q, want original text back", records[1][0])
	}
}

func TestFormatCSVNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{55.60, "55.6"},
		{7.6, "7.6"},
		{12.34, "12.34"},
		{100, "100"},
	}
	for _, tc := range cases {
		if got := formatCSVNumber(tc.in); got != tc.want {
			t.Errorf("formatCSVNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
