package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// BranchHandler handles branch HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// List returns all branches
func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, branches)
}

// Create creates a new active branch
func (h *BranchHandler) Create(c *gin.Context) {
	var req request.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), &service.CreateBranchInput{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, branch)
}

// Update applies a partial update to a branch
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewValidation([]apperror.FieldError{
			{Field: "id", Message: "must be a valid UUID"},
		}))
		return
	}

	var req request.UpdateBranchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		response.ValidationError(c, bindErr)
		return
	}

	branch, svcErr := h.branchService.UpdateBranch(c.Request.Context(), id, &service.UpdateBranchInput{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
		IsActive: req.IsActive,
	})
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}
	response.OK(c, branch)
}
