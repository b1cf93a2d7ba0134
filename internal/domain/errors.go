package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError carries a field-keyed error map so callers can render
// per-field messages. Msg summarizes when only one thing went wrong.
type ValidationError struct {
	Field  string
	Msg    string
	Fields map[string]string
	Err    error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// FieldMap returns per-field messages, synthesizing one from Field/Msg
// when no map was attached.
func (e ValidationError) FieldMap() map[string]string {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Field != "" {
		msg := e.Msg
		if msg == "" {
			msg = "invalid value"
		}
		return map[string]string{e.Field: msg}
	}
	return nil
}

type ConflictError struct {
	Resource string
	Field    string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnauthorizedError covers both missing sessions and insufficient roles.
// The message stays generic so callers leak nothing about why.
type UnauthorizedError struct {
	Err error
}

func (e UnauthorizedError) Error() string { return "admin access required" }

func (e UnauthorizedError) Unwrap() error { return e.Err }

// ReferentialError blocks deleting a row that other rows still point at.
type ReferentialError struct {
	Resource   string
	Dependents int
	Err        error
}

func (e ReferentialError) Error() string {
	if e.Resource == "" {
		return "row is still referenced"
	}
	return fmt.Sprintf("%s is still referenced by %d listing(s); reassign or delete them first", e.Resource, e.Dependents)
}

func (e ReferentialError) Unwrap() error { return e.Err }

// PartialBatchError reports a best-effort batch where some row updates
// failed. Rows that succeeded are not rolled back.
type PartialBatchError struct {
	Failed int
	Total  int
	Err    error
}

func (e PartialBatchError) Error() string {
	return fmt.Sprintf("%d of %d row updates failed", e.Failed, e.Total)
}

func (e PartialBatchError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsReferential(err error) bool {
	var target ReferentialError
	return errors.As(err, &target)
}

func IsPartialBatch(err error) bool {
	var target PartialBatchError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
