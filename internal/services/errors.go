package services

import (
	"fmt"
	"strings"
)

// ValidationError reports form input rejected before any vendor was contacted.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", strings.Join(e.Fields, ", "), e.Message)
}

// GenerationFailure wraps anything that kept the text-generation endpoint
// from producing usable content. It is recovered by the keyword fallback.
type GenerationFailure struct {
	Stage string
	Err   error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationFailure) Unwrap() error { return e.Err }

// DispatchError is returned when the scheduling vendor rejected a call or
// could not be reached.
type DispatchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *DispatchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dispatch failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("dispatch failed: %s", e.Message)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// FetchError is returned when the call log could not be loaded.
type FetchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch calls (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("failed to fetch calls: %s", e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }
