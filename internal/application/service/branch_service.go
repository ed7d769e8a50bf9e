package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// BranchService manages branches
type BranchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// BranchDetail is a branch in API shape. The timezone stays internal to
// report range computation and is not exposed here.
type BranchDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// CreateBranchInput represents the create branch input
type CreateBranchInput struct {
	Name     string
	Address  string
	Timezone *string
}

// UpdateBranchInput carries the partial update; nil fields are untouched
type UpdateBranchInput struct {
	Name     *string
	Address  *string
	Timezone *string
	IsActive *bool
}

// ListBranches returns all branches, oldest first
func (s *BranchService) ListBranches(ctx context.Context) ([]BranchDetail, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]BranchDetail, 0, len(branches))
	for i := range branches {
		details = append(details, branchDetail(&branches[i]))
	}
	return details, nil
}

// CreateBranch creates an active branch; the timezone defaults to UTC
func (s *BranchService) CreateBranch(ctx context.Context, input *CreateBranchInput) (*BranchDetail, error) {
	timezone := "UTC"
	if input.Timezone != nil && *input.Timezone != "" {
		timezone = *input.Timezone
	}

	branch := &entity.Branch{
		Name:     input.Name,
		Address:  input.Address,
		Timezone: timezone,
		IsActive: true,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	detail := branchDetail(branch)
	return &detail, nil
}

// UpdateBranch applies a partial update to a branch
func (s *BranchService) UpdateBranch(ctx context.Context, id uuid.UUID, input *UpdateBranchInput) (*BranchDetail, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFound("Branch", "BRANCH_NOT_FOUND")
	}

	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = *input.Address
	}
	if input.Timezone != nil {
		branch.Timezone = *input.Timezone
	}
	if input.IsActive != nil {
		branch.IsActive = *input.IsActive
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	detail := branchDetail(branch)
	return &detail, nil
}

func branchDetail(branch *entity.Branch) BranchDetail {
	return BranchDetail{
		ID:        branch.ID.String(),
		Name:      branch.Name,
		Address:   branch.Address,
		IsActive:  branch.IsActive,
		CreatedAt: branch.CreatedAt.UTC().Format(time.RFC3339),
	}
}
