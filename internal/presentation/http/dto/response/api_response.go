package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// DataResponse wraps a successful payload
type DataResponse struct {
	Data interface{} `json:"data"`
}

// Meta carries pagination metadata for list responses
type Meta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// DataMetaResponse wraps a paginated payload
type DataMetaResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// ErrorResponse wraps an error payload
type ErrorResponse struct {
	Error *apperror.AppError `json:"error"`
}

// OK sends a 200 response with the payload under "data"
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// Created sends a 201 response with the payload under "data"
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// OKWithMeta sends a 200 response with pagination metadata
func OKWithMeta(c *gin.Context, data interface{}, meta Meta) {
	c.JSON(http.StatusOK, DataMetaResponse{Data: data, Meta: meta})
}

// Error sends the error envelope for err. Unclassified errors are logged and
// mapped to a generic internal error so raw messages never reach clients.
func Error(c *gin.Context, err error) {
	if !apperror.Is(err) {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled error")
	}
	appErr := apperror.From(err)
	c.JSON(appErr.Status, ErrorResponse{Error: appErr})
}

// ValidationError sends a 400 validation error, mapping validator tag
// failures to per-field details.
func ValidationError(c *gin.Context, err error) {
	var details []apperror.FieldError
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrs {
			details = append(details, apperror.FieldError{
				Field:   fieldErr.Field(),
				Message: validationMessage(fieldErr),
			})
		}
	}
	appErr := apperror.NewValidation(details)
	c.JSON(appErr.Status, ErrorResponse{Error: appErr})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "len":
		return "has the wrong length"
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	default:
		return "is invalid"
	}
}
