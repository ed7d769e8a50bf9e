package request

// UpdateSettingsRequest represents a partial business profile update
type UpdateSettingsRequest struct {
	BusinessName    *string  `json:"business_name" binding:"omitempty,min=1,max=255"`
	BusinessAddress *string  `json:"business_address" binding:"omitempty,max=500"`
	Phone           *string  `json:"phone" binding:"omitempty,max=50"`
	Email           *string  `json:"email" binding:"omitempty,email"`
	Currency        *string  `json:"currency" binding:"omitempty,len=3"`
	DefaultTaxRate  *float64 `json:"default_tax_rate" binding:"omitempty,gte=0,lte=100"`
	ReceiptFooter   *string  `json:"receipt_footer" binding:"omitempty,max=500"`
}
