package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
)

// ErrorBody is the envelope returned on every failed request
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// DeleteBody confirms a delete and echoes the removed record
type DeleteBody struct {
	Message string      `json:"message"`
	Record  interface{} `json:"record"`
}

// JSON writes a success response
func JSON(c echo.Context, status int, body interface{}) error {
	return c.JSON(status, body)
}

// Created writes a 201 response with the created record
func Created(c echo.Context, body interface{}) error {
	return c.JSON(http.StatusCreated, body)
}

// Deleted writes a 200 confirmation carrying the deleted record
func Deleted(c echo.Context, message string, record interface{}) error {
	return c.JSON(http.StatusOK, DeleteBody{Message: message, Record: record})
}

// Error writes the failure envelope for any error, mapping unknown errors
// to a 500 with a generic code
func Error(c echo.Context, err error) error {
	appErr := apperrors.From(err)
	return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message, Code: appErr.Code})
}

// ErrorResponse writes an explicit failure envelope
func ErrorResponse(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorBody{Error: message, Code: code})
}

// BadRequestResponse writes a 400 failure envelope
func BadRequestResponse(c echo.Context, code, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, code, message)
}

// UnauthorizedResponse writes a 401 failure envelope
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Authentication required"
	}
	return ErrorResponse(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, message)
}

// NotFoundResponse writes a 404 failure envelope
func NotFoundResponse(c echo.Context, code, message string) error {
	return ErrorResponse(c, http.StatusNotFound, code, message)
}
