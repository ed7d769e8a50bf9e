package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the authenticated user's role from the Gin context
func GetUserRole(c *gin.Context) enum.UserRole {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(enum.UserRole)
	if !ok {
		return ""
	}
	return role
}

// parseDateParam parses a strict YYYY-MM-DD calendar date. Malformed and
// impossible dates (e.g. 2024-02-31) are validation errors, never silently
// normalized into a neighboring day.
func parseDateParam(field, value string) (time.Time, *apperror.AppError) {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, apperror.NewValidation([]apperror.FieldError{
			{Field: field, Message: "must be a valid date in YYYY-MM-DD format"},
		})
	}
	return t, nil
}

// parseBranchIDParam parses an optional branch_id query value
func parseBranchIDParam(value string) (*uuid.UUID, *apperror.AppError) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, apperror.NewValidation([]apperror.FieldError{
			{Field: "branch_id", Message: "must be a valid UUID"},
		})
	}
	return &id, nil
}
