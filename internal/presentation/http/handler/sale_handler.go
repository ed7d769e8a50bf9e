package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create records a new sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	items := make([]service.CreateSaleItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, service.CreateSaleItemInput{
			ItemID:      line.ItemID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxRate:     line.TaxRate,
		})
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		UserID:        *userID,
		BranchID:      req.BranchID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Currency:      req.Currency,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, sale)
}

// Get retrieves a sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewValidation([]apperror.FieldError{
			{Field: "id", Message: "must be a valid UUID"},
		}))
		return
	}

	sale, svcErr := h.saleService.GetSale(c.Request.Context(), id)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}

	response.OK(c, sale)
}

// List returns sales filtered by status and timestamp range, newest first
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	params := &repository.SaleFilterParams{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	if req.From != "" {
		from, appErr := parseDateParam("from", req.From)
		if appErr != nil {
			response.Error(c, appErr)
			return
		}
		params.From = &from
	}
	if req.To != "" {
		to, appErr := parseDateParam("to", req.To)
		if appErr != nil {
			response.Error(c, appErr)
			return
		}
		params.To = &to
	}
	if req.Status != "" {
		status := enum.SaleStatus(req.Status)
		if !status.IsValid() {
			response.Error(c, apperror.NewValidation([]apperror.FieldError{
				{Field: "status", Message: "must be one of COMPLETED, REFUNDED, VOID"},
			}))
			return
		}
		params.Status = &status
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMeta(c, result.Sales, response.Meta{
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
	})
}

// Receipt renders the receipt PDF for a sale
func (h *SaleHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewValidation([]apperror.FieldError{
			{Field: "id", Message: "must be a valid UUID"},
		}))
		return
	}

	doc, svcErr := h.saleService.ReceiptPDF(c.Request.Context(), id)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+id.String()+`.pdf"`)
	c.Data(200, "application/pdf", doc)
}
