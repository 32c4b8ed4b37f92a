package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSpec            = errors.New("invalid asset spec")
	ErrMissingCredential      = errors.New("missing credential")
	ErrUnknownCategory        = errors.New("unknown category")
	ErrGenerationFailure      = errors.New("generation failure")
	ErrNoImagePayload         = errors.New("no image payload in response")
	ErrPostProcessUnavailable = errors.New("post-processing unavailable")
)

// UnknownCategoryError reports a category filter that matches no catalog group.
type UnknownCategoryError struct {
	Name       string
	Available  []string
	Suggestion string
}

func (e *UnknownCategoryError) Error() string {
	msg := fmt.Sprintf("unknown category %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}
