// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrService is the base error for backend service failures.
	ErrService = errors.New("service error")

	// ErrAuth indicates an authentication or authorization failure.
	ErrAuth = fmt.Errorf("%w: authentication", ErrService)

	// ErrInvalidRequest indicates the request was malformed or invalid.
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrService)

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = fmt.Errorf("%w: not found", ErrService)

	// ErrRun is the base error for run lifecycle failures.
	ErrRun = errors.New("run error")

	// ErrRunNotCompleted is returned when a polled run reaches a terminal
	// state other than completed.
	ErrRunNotCompleted = fmt.Errorf("%w: not completed", ErrRun)

	// ErrApprovalPolicy indicates the injected approval policy failed to
	// produce a decision for a pending tool call.
	ErrApprovalPolicy = fmt.Errorf("%w: approval policy", ErrRun)
)

// ServiceError provides rich context for backend service failures.
// Use errors.As to extract it from a wrapped error chain.
type ServiceError struct {
	StatusCode int
	Message    string
	Code       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("service error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("service error %d: %s", e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// RunFailedError reports the terminal non-completed status of a run, with
// the service's failure detail when present.
type RunFailedError struct {
	RunID  string
	Status RunStatus
	Detail *RunError
}

func (e *RunFailedError) Error() string {
	if e.Detail != nil && e.Detail.Message != "" {
		return fmt.Sprintf("run %s ended %s: %s", e.RunID, e.Status, e.Detail.Message)
	}
	return fmt.Sprintf("run %s ended %s", e.RunID, e.Status)
}

func (e *RunFailedError) Unwrap() error { return ErrRunNotCompleted }
