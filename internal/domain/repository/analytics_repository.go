package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
)

// SaleTotalsRow carries the monetary columns of one completed sale as read
// by the aggregation engine. Sums happen in the service layer with decimal
// arithmetic so rounding follows the money rules.
type SaleTotalsRow struct {
	TotalAmount decimal.Decimal
	TaxAmount   decimal.Decimal
}

// TopItemRow represents one line-item group ranked by revenue. Grouping keys
// on the free-text description, not an item identifier.
type TopItemRow struct {
	Description  string
	QuantitySold int64
	TotalRevenue decimal.Decimal
}

// RecentSaleRow represents a recently completed sale with its item count
type RecentSaleRow struct {
	ID            uuid.UUID
	ReceiptNumber string
	SaleTimestamp time.Time
	CustomerName  *string
	ItemCount     int64
	TotalAmount   decimal.Decimal
	Status        enum.SaleStatus
}

// AnalyticsRepository defines the aggregation queries the reporting core
// depends on. All ranges are half-open UTC intervals [start, end); a nil
// branchID means all branches.
type AnalyticsRepository interface {
	// CompletedSaleTotals returns tax/total amounts of completed sales with
	// sale_timestamp in [start, end).
	CompletedSaleTotals(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]SaleTotalsRow, error)

	// TopItemsByRevenue groups completed sale line items in range by
	// description, summing quantity and line total, ordered by summed line
	// total descending, limited to limit.
	TopItemsByRevenue(ctx context.Context, start, end time.Time, branchID *uuid.UUID, limit int) ([]TopItemRow, error)

	// RecentCompletedSales returns the most recent completed sales with
	// their item counts, irrespective of date range.
	RecentCompletedSales(ctx context.Context, branchID *uuid.UUID, limit int) ([]RecentSaleRow, error)
}
