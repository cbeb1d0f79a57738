// Package apperr defines the recoverable, user-facing error kinds the
// services return. Controllers map kinds to HTTP statuses; messages are safe
// to show to the caller.
package apperr

import "errors"

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidState
	KindValidation
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func InvalidState(msg string) error { return &Error{Kind: KindInvalidState, Message: msg} }
func Validation(msg string) error   { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }

// KindOf returns the kind of err, or 0 when err is not an apperr.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }
