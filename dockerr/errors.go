// Package dockerr defines the error-kind taxonomy shared by every package in
// the docking core (see SPEC_FULL.md section 1, "Error handling"). Errors are distinguished by
// kind, not by Go type hierarchy, so callers can dispatch with errors.Is.
package dockerr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind identifies one of the error categories of the core error taxonomy.
type Kind int

const (
	// ParseFailure: malformed input record; surfaces to user unchanged.
	ParseFailure Kind = iota
	// MissingParameter: required key absent in a parameter section.
	MissingParameter
	// InvalidRequest: query against nonexistent snapshot / saved coord.
	InvalidRequest
	// BadArgument: out-of-range query, e.g. maxDist > gridBorder.
	BadArgument
	// ModelTopology: inconsistency detected during setup.
	ModelTopology
	// ObjectLifetime: pointer to a destroyed atom; should never surface
	// in practice, reserved here only so callers can recognise it if a
	// lower layer ever returns it.
	ObjectLifetime
)

func (k Kind) String() string {
	switch k {
	case ParseFailure:
		return "ParseFailure"
	case MissingParameter:
		return "MissingParameter"
	case InvalidRequest:
		return "InvalidRequest"
	case BadArgument:
		return "BadArgument"
	case ModelTopology:
		return "ModelTopology"
	case ObjectLifetime:
		return "ObjectLifetime"
	default:
		return "Unknown"
	}
}

// Error is a taxonomy-tagged error. Wrap with fmt.Errorf("...: %w", err) to
// add context while keeping Is/As dispatch on Kind working.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is(err, dockerr.New(dockerr.BadArgument, "")) to match any
// error of the same Kind regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds a taxonomy error, formatting msg like fmt.Sprintf.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel values for use with errors.Is(err, dockerr.ErrInvalidRequest) etc.
var (
	ErrParseFailure     = &Error{Kind: ParseFailure}
	ErrMissingParameter = &Error{Kind: MissingParameter}
	ErrInvalidRequest   = &Error{Kind: InvalidRequest}
	ErrBadArgument      = &Error{Kind: BadArgument}
	ErrModelTopology    = &Error{Kind: ModelTopology}
	ErrObjectLifetime   = &Error{Kind: ObjectLifetime}
)

// Panic raises an unrecoverable setup inconsistency (ModelTopology cases
// that poison scoring, e.g. 2-D-only coordinates). Grounded on the
// teacher's fem/errorhandler.go PanicOrNot, built on gosl/chk rather than
// a bare panic(fmt.Sprintf(...)) so stack context is captured consistently.
func Panic(format string, args ...interface{}) {
	chk.Panic(format, args...)
}

// Warn reports a recoverable ModelTopology inconsistency: the teacher's
// LogErr pattern logs and continues rather than aborting.
func Warn(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}

// Logger is the minimal interface the core needs from a logging backend.
// The default production implementation is backed by zap (see log.go);
// tests use a no-op or buffering stub.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
