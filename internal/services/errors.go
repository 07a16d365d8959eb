package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"alfredoptarigan/career-gateway/internal/models"
)

// ErrContractViolation marks a downstream response that is missing a field
// the gateway depends on.
var ErrContractViolation = errors.New("downstream contract violation")

// InputError is returned before any downstream call when the query itself
// is unusable.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
}

// DownstreamError describes a failed call to one of the downstream services.
type DownstreamError struct {
	Service    models.ServiceName
	Op         string
	StatusCode int
	Payload    []byte
	Err        error
}

func (e *DownstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Service, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}

func (e *DownstreamError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// Detail returns the downstream error payload when one was received,
// otherwise the error message.
func (e *DownstreamError) Detail() any {
	if len(e.Payload) > 0 {
		if json.Valid(e.Payload) {
			return json.RawMessage(e.Payload)
		}
		return string(e.Payload)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}

// IsInputError reports whether err was caused by the caller's input.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
