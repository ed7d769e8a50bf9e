package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	domainRepo "github.com/tillpoint/tillpoint-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CompletedSaleTotals(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]domainRepo.SaleTotalsRow, error) {
	var rows []domainRepo.SaleTotalsRow

	query := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Select("total_amount", "tax_amount").
		Where("status = ?", enum.SaleStatusCompleted).
		Where("sale_timestamp >= ? AND sale_timestamp < ?", start, end)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) TopItemsByRevenue(ctx context.Context, start, end time.Time, branchID *uuid.UUID, limit int) ([]domainRepo.TopItemRow, error) {
	var rows []domainRepo.TopItemRow

	sql := `
		SELECT
			si.description,
			COALESCE(SUM(si.quantity), 0) AS quantity_sold,
			COALESCE(SUM(si.line_total), 0) AS total_revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = ?
		AND s.sale_timestamp >= ? AND s.sale_timestamp < ?`
	args := []interface{}{enum.SaleStatusCompleted, start, end}

	if branchID != nil {
		sql += `
		AND s.branch_id = ?`
		args = append(args, *branchID)
	}

	sql += `
		GROUP BY si.description
		ORDER BY total_revenue DESC
		LIMIT ?`
	args = append(args, limit)

	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) RecentCompletedSales(ctx context.Context, branchID *uuid.UUID, limit int) ([]domainRepo.RecentSaleRow, error) {
	var rows []domainRepo.RecentSaleRow

	sql := `
		SELECT
			s.id,
			s.receipt_number,
			s.sale_timestamp,
			s.customer_name,
			s.total_amount,
			s.status,
			COALESCE(SUM(si.quantity), 0) AS item_count
		FROM sales s
		LEFT JOIN sale_items si ON si.sale_id = s.id
		WHERE s.status = ?`
	args := []interface{}{enum.SaleStatusCompleted}

	if branchID != nil {
		sql += `
		AND s.branch_id = ?`
		args = append(args, *branchID)
	}

	sql += `
		GROUP BY s.id, s.receipt_number, s.sale_timestamp, s.customer_name, s.total_amount, s.status
		ORDER BY s.sale_timestamp DESC
		LIMIT ?`
	args = append(args, limit)

	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
