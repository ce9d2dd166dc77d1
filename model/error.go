package model

import "errors"

type Kind string

const (
	KindInvalidURL          Kind = "invalid_url"
	KindNoCaptions          Kind = "no_captions"
	KindCaptionsUnavailable Kind = "captions_unavailable"
	KindFetchError          Kind = "fetch_error"
	KindUnexpected          Kind = "unexpected"
)

// Error is a failure with a message meant for the end user and a stable kind
// for programmatic handling.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func NewError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err, KindUnexpected if it is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnexpected
}
