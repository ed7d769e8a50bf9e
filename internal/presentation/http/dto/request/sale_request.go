package request

import "github.com/google/uuid"

// SaleItemRequest represents one line of a sale creation request
type SaleItemRequest struct {
	ItemID      *uuid.UUID `json:"item_id"`
	Description string     `json:"description" binding:"required,max=255"`
	Quantity    int        `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64    `json:"unit_price" binding:"gte=0"`
	TaxRate     *float64   `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	BranchID      *uuid.UUID        `json:"branch_id"`
	CustomerName  *string           `json:"customer_name" binding:"omitempty,max=255"`
	CustomerEmail *string           `json:"customer_email" binding:"omitempty,email"`
	Currency      *string           `json:"currency" binding:"omitempty,len=3"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleFilterRequest represents sale listing filter parameters
type SaleFilterRequest struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
