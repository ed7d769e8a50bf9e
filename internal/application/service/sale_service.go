package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/money"
)

// receiptCreateAttempts bounds the retry loop on receipt number collisions
const receiptCreateAttempts = 3

// SaleService handles sale creation and retrieval
type SaleService struct {
	saleRepo     repository.SaleRepository
	branchRepo   repository.BranchRepository
	settingsRepo repository.SettingsRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	branchRepo repository.BranchRepository,
	settingsRepo repository.SettingsRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		branchRepo:   branchRepo,
		settingsRepo: settingsRepo,
	}
}

// CreateSaleItemInput represents one line of a sale creation input
type CreateSaleItemInput struct {
	ItemID      *uuid.UUID
	Description string
	Quantity    int
	UnitPrice   float64
	TaxRate     *float64
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID        uuid.UUID
	BranchID      *uuid.UUID
	CustomerName  *string
	CustomerEmail *string
	Currency      *string
	Items         []CreateSaleItemInput
}

// SaleItemDetail is one persisted sale line in API shape
type SaleItemDetail struct {
	ID                 string  `json:"id"`
	ItemID             *string `json:"item_id"`
	Description        string  `json:"description"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	TaxRate            float64 `json:"tax_rate"`
	LineTotalBeforeTax float64 `json:"line_total_before_tax"`
	TaxAmount          float64 `json:"tax_amount"`
	LineTotal          float64 `json:"line_total"`
}

// SaleDetail is a persisted sale in API shape
type SaleDetail struct {
	ID             string           `json:"id"`
	ReceiptNumber  string           `json:"receipt_number"`
	BranchID       string           `json:"branch_id"`
	UserID         string           `json:"user_id"`
	SaleTimestamp  string           `json:"sale_timestamp"`
	Status         string           `json:"status"`
	Currency       string           `json:"currency"`
	CustomerName   *string          `json:"customer_name"`
	CustomerEmail  *string          `json:"customer_email"`
	TotalBeforeTax float64          `json:"total_before_tax"`
	TaxAmount      float64          `json:"tax_amount"`
	TotalAmount    float64          `json:"total_amount"`
	Items          []SaleItemDetail `json:"items"`
}

// SaleListItem is one row of the sale listing
type SaleListItem struct {
	ID            string  `json:"id"`
	ReceiptNumber string  `json:"receipt_number"`
	SaleTimestamp string  `json:"sale_timestamp"`
	Status        string  `json:"status"`
	CustomerName  *string `json:"customer_name"`
	TotalAmount   float64 `json:"total_amount"`
}

// ListSalesResult is the paginated sale listing
type ListSalesResult struct {
	Sales    []SaleListItem
	Page     int
	PageSize int
	Total    int64
}

// CreateSale computes line and sale totals with fixed-point arithmetic and
// persists the sale, its items and the receipt placeholder atomically. On a
// receipt number collision the whole graph is rebuilt with a fresh number.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*SaleDetail, error) {
	branch, err := s.resolveSaleBranch(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}

	setting, err := s.settingsRepo.First(ctx)
	if err != nil {
		return nil, err
	}

	defaultTaxRate := decimal.Zero
	currency := "USD"
	if setting != nil {
		defaultTaxRate = setting.DefaultTaxRate
		currency = setting.Currency
	}
	if input.Currency != nil && *input.Currency != "" {
		currency = strings.ToUpper(*input.Currency)
	}

	items := make([]entity.SaleItem, 0, len(input.Items))
	lineTotalsBeforeTax := make([]decimal.Decimal, 0, len(input.Items))
	lineTaxes := make([]decimal.Decimal, 0, len(input.Items))
	lineTotals := make([]decimal.Decimal, 0, len(input.Items))
	for _, line := range input.Items {
		taxRate := defaultTaxRate
		if line.TaxRate != nil {
			taxRate = money.Percent(*line.TaxRate)
		}

		unitPrice := money.FromFloat(line.UnitPrice)
		beforeTax := money.Amount(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		tax := money.Amount(beforeTax.Mul(taxRate).Div(decimal.NewFromInt(100)))
		total := money.Sum(beforeTax, tax)

		items = append(items, entity.SaleItem{
			ItemID:             line.ItemID,
			Description:        line.Description,
			Quantity:           line.Quantity,
			UnitPrice:          unitPrice,
			TaxRate:            taxRate,
			LineTotalBeforeTax: beforeTax,
			TaxAmount:          tax,
			LineTotal:          total,
		})
		lineTotalsBeforeTax = append(lineTotalsBeforeTax, beforeTax)
		lineTaxes = append(lineTaxes, tax)
		lineTotals = append(lineTotals, total)
	}

	// Sale totals are sums of already-rounded line parts so the receipt
	// always adds up to the cent.
	totalBeforeTax := money.Sum(lineTotalsBeforeTax...)
	taxAmount := money.Sum(lineTaxes...)
	totalAmount := money.Sum(lineTotals...)

	var sale *entity.Sale
	for attempt := 1; attempt <= receiptCreateAttempts; attempt++ {
		candidate := &entity.Sale{
			BranchID:       branch.ID,
			UserID:         input.UserID,
			Status:         enum.SaleStatusCompleted,
			Currency:       currency,
			CustomerName:   input.CustomerName,
			CustomerEmail:  input.CustomerEmail,
			ReceiptNumber:  generateReceiptNumber(time.Now().UTC()),
			TotalBeforeTax: totalBeforeTax,
			TaxAmount:      taxAmount,
			TotalAmount:    totalAmount,
		}

		graphItems := make([]entity.SaleItem, len(items))
		copy(graphItems, items)

		err = s.saleRepo.CreateGraph(ctx, candidate, graphItems, &entity.Receipt{})
		if err == nil {
			candidate.Items = graphItems
			sale = candidate
			break
		}
		if !errors.Is(err, repository.ErrDuplicateReceiptNumber) {
			return nil, err
		}
		logrus.WithField("attempt", attempt).Warn("Receipt number collision, regenerating")
	}
	if sale == nil {
		return nil, apperror.New(500, "RECEIPT_NUMBER_EXHAUSTED", "Could not allocate a unique receipt number")
	}

	return saleDetail(sale), nil
}

// resolveSaleBranch resolves the branch a sale is recorded against. Unlike
// report resolution, a missing branch here is a hard failure.
func (s *SaleService) resolveSaleBranch(ctx context.Context, branchID *uuid.UUID) (*entity.Branch, error) {
	if branchID != nil {
		branch, err := s.branchRepo.GetByID(ctx, *branchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, apperror.NewBadRequest("BRANCH_NOT_FOUND", "Branch not found")
		}
		return branch, nil
	}

	branch, err := s.branchRepo.FirstActive(ctx)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewBadRequest("BRANCH_NOT_FOUND", "No active branch configured")
	}
	return branch, nil
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*SaleDetail, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFound("Sale", "SALE_NOT_FOUND")
	}
	return saleDetail(sale), nil
}

// ListSales lists sales filtered by status and timestamp range, newest first
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*ListSalesResult, error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	rows := make([]SaleListItem, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, SaleListItem{
			ID:            sale.ID.String(),
			ReceiptNumber: sale.ReceiptNumber,
			SaleTimestamp: sale.SaleTimestamp.UTC().Format(time.RFC3339),
			Status:        sale.Status.String(),
			CustomerName:  sale.CustomerName,
			TotalAmount:   money.ToNumber(sale.TotalAmount),
		})
	}

	return &ListSalesResult{
		Sales:    rows,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	}, nil
}

func saleDetail(sale *entity.Sale) *SaleDetail {
	items := make([]SaleItemDetail, 0, len(sale.Items))
	for _, item := range sale.Items {
		var itemID *string
		if item.ItemID != nil {
			id := item.ItemID.String()
			itemID = &id
		}
		rate, _ := item.TaxRate.Float64()
		items = append(items, SaleItemDetail{
			ID:                 item.ID.String(),
			ItemID:             itemID,
			Description:        item.Description,
			Quantity:           item.Quantity,
			UnitPrice:          money.ToNumber(item.UnitPrice),
			TaxRate:            rate,
			LineTotalBeforeTax: money.ToNumber(item.LineTotalBeforeTax),
			TaxAmount:          money.ToNumber(item.TaxAmount),
			LineTotal:          money.ToNumber(item.LineTotal),
		})
	}

	return &SaleDetail{
		ID:             sale.ID.String(),
		ReceiptNumber:  sale.ReceiptNumber,
		BranchID:       sale.BranchID.String(),
		UserID:         sale.UserID.String(),
		SaleTimestamp:  sale.SaleTimestamp.UTC().Format(time.RFC3339),
		Status:         sale.Status.String(),
		Currency:       sale.Currency,
		CustomerName:   sale.CustomerName,
		CustomerEmail:  sale.CustomerEmail,
		TotalBeforeTax: money.ToNumber(sale.TotalBeforeTax),
		TaxAmount:      money.ToNumber(sale.TaxAmount),
		TotalAmount:    money.ToNumber(sale.TotalAmount),
		Items:          items,
	}
}

// generateReceiptNumber builds a receipt number from the UTC second and a
// random 4-digit suffix, e.g. RCPT-20240115093042-4821.
func generateReceiptNumber(now time.Time) string {
	return fmt.Sprintf("RCPT-%s-%04d", now.Format("20060102150405"), 1000+rand.Intn(9000))
}
