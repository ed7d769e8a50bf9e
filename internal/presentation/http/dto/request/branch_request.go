package request

// CreateBranchRequest represents a branch creation request
type CreateBranchRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Address  string  `json:"address" binding:"omitempty,max=500"`
	Timezone *string `json:"timezone" binding:"omitempty,max=32"`
}

// UpdateBranchRequest represents a partial branch update
type UpdateBranchRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	Timezone *string `json:"timezone" binding:"omitempty,max=32"`
	IsActive *bool   `json:"is_active"`
}
