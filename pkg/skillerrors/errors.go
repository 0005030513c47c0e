// Package skillerrors defines the error kinds shared across providers, the
// reader, and the resolver. Kinds make failure classes inspectable without
// string matching while staying compatible with pkg/errors wrapping.
package skillerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a skill operation failure.
type Kind string

const (
	// KindIO is a filesystem failure.
	KindIO Kind = "io"
	// KindParse is malformed manifest content after a successful read.
	KindParse Kind = "parse"
	// KindNotFound is a named skill or content being absent.
	KindNotFound Kind = "not_found"
	// KindUnsupportedFormat is a manifest dialect no adapter understands.
	KindUnsupportedFormat Kind = "unsupported_format"
	// KindConfig is a configuration failure, including dependency cycles.
	KindConfig Kind = "config"
	// KindInstall is an adapter-specific installation failure.
	KindInstall Kind = "install"
)

// Error is a kinded skill error. It may wrap an underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a kinded error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a kinded error wrapping an underlying cause. Returns nil if
// err is nil.
func Wrap(err error, kind Kind, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// IO wraps a filesystem error.
func IO(err error, format string, args ...any) error {
	return Wrap(err, KindIO, format, args...)
}

// Parse creates a manifest parse error.
func Parse(err error, format string, args ...any) error {
	if err == nil {
		return New(KindParse, format, args...)
	}
	return Wrap(err, KindParse, format, args...)
}

// NotFound creates a not-found error for a named skill or file.
func NotFound(name string) error {
	return New(KindNotFound, "skill not found: %s", name)
}

// Install creates an installation failure error.
func Install(format string, args ...any) error {
	return New(KindInstall, format, args...)
}

// Config creates a configuration error.
func Config(format string, args ...any) error {
	return New(KindConfig, format, args...)
}

// KindOf extracts the Kind from an error chain, or empty string if the chain
// contains no kinded error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether the error chain contains a kinded error of the given
// kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
