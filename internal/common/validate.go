package common

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body returned by all handlers.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func SendValidationError(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: map[string]string{"field": field},
	})
}

func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{Code: "BAD_REQUEST", Message: message})
}

func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, &ErrorResponse{Code: "NOT_FOUND", Message: resource + " not found"})
}

func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, &ErrorResponse{Code: "INTERNAL_ERROR", Message: message})
}

func SendUpstreamError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadGateway, &ErrorResponse{Code: "UPSTREAM_ERROR", Message: message})
}

func ValidateUUID(idStr, fieldName string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", fieldName)
	}
	return id, nil
}

func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

var phoneDigits = regexp.MustCompile(`^\+[0-9]{10,15}$`)

// NormalizePhoneNumber strips formatting and checks the number is
// E.164-able. Returns the normalized "+<digits>" form.
func NormalizePhoneNumber(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return "", fmt.Errorf("phonenumber is required")
	}
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	if !phoneDigits.MatchString(cleaned) {
		return "", fmt.Errorf("phonenumber must be a valid international number")
	}
	return cleaned, nil
}

func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
