package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/oangelo/homebox-mcp/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeHomeboxError = "HOMEBOX_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeTimeout      = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapHomeboxError converts a client.APIError or other error into a
// coded error for the tool response.
func WrapHomeboxError(err error) error {
	if err == nil {
		return nil
	}

	coded := &CodedError{Code: ErrCodeHomeboxError, Message: err.Error(), Cause: err}

	var apiErr *client.APIError
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr):
		coded.Message = apiErr.Message
		if apiErr.StatusCode == http.StatusNotFound {
			coded.Code = ErrCodeNotFound
		}
	case errors.As(err, &netErr) && netErr.Timeout(),
		errors.Is(err, context.DeadlineExceeded):
		coded.Code = ErrCodeTimeout
		coded.Message = "request timed out"
	}

	slog.Warn("homebox API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)
	return coded
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{Code: ErrCodeInvalidInput, Message: message}
}
