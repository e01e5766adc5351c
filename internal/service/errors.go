package service

import (
	"errors"
	"fmt"

	"routine-advisor/internal/llm"
)

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// UpstreamStatus reports the provider status code carried by err, if any.
func UpstreamStatus(err error) (int, bool) {
	var upstreamErr *llm.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode, true
	}
	return 0, false
}
