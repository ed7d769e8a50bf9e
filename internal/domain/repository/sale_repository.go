package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
)

// SaleFilterParams holds the filters for listing sales
type SaleFilterParams struct {
	From     *time.Time
	To       *time.Time
	Status   *enum.SaleStatus
	Page     int
	PageSize int
}

// SaleRepository defines data access for sales.
// Lookup methods return (nil, nil) when no row matches.
type SaleRepository interface {
	// CreateGraph persists the sale, its items and the receipt placeholder
	// as one atomic unit; partial writes are never observable.
	CreateGraph(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, receipt *entity.Receipt) error
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetReceiptContext loads a sale with its items, branch and cashier for
	// receipt rendering.
	GetReceiptContext(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}
