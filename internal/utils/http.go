package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// AcceptedResponse sends a 202 for work that completes asynchronously
func AcceptedResponse(c echo.Context, message string) error {
	return SuccessResponse(c, http.StatusAccepted, message, nil)
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
