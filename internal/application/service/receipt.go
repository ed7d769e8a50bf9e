package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/money"
	"github.com/tillpoint/tillpoint-api/pkg/pdf"
)

// ReceiptPDF renders the receipt document for a sale on demand
func (s *SaleService) ReceiptPDF(ctx context.Context, saleID uuid.UUID) ([]byte, error) {
	sale, err := s.saleRepo.GetReceiptContext(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFound("Sale", "SALE_NOT_FOUND")
	}

	businessName := "My Business"
	businessAddress := ""
	footer := "Thank you for your business."
	setting, err := s.settingsRepo.GetByOwnerUserID(ctx, sale.UserID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting, err = s.settingsRepo.First(ctx)
		if err != nil {
			return nil, err
		}
	}
	if setting != nil {
		businessName = setting.BusinessName
		businessAddress = setting.BusinessAddress
		if setting.ReceiptFooter != "" {
			footer = setting.ReceiptFooter
		}
	}

	customerName := "Walk-in"
	if sale.CustomerName != nil && *sale.CustomerName != "" {
		customerName = *sale.CustomerName
	}

	lines := make([]pdf.ReceiptLineData, 0, len(sale.Items))
	for _, item := range sale.Items {
		lines = append(lines, pdf.ReceiptLineData{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   money.ToNumber(item.UnitPrice),
			LineTotal:   money.ToNumber(item.LineTotal),
		})
	}

	return pdf.RenderReceipt(pdf.ReceiptData{
		BusinessName:    businessName,
		BusinessAddress: businessAddress,
		ReceiptNumber:   sale.ReceiptNumber,
		SaleTimestamp:   sale.SaleTimestamp.UTC().Format(time.RFC3339),
		BranchName:      sale.Branch.Name,
		CashierName:     sale.User.Name,
		CustomerName:    customerName,
		Lines:           lines,
		TotalBeforeTax:  money.ToNumber(sale.TotalBeforeTax),
		TaxAmount:       money.ToNumber(sale.TaxAmount),
		TotalAmount:     money.ToNumber(sale.TotalAmount),
		Currency:        sale.Currency,
		Footer:          footer,
	})
}
