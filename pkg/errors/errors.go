package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindConnection
	KindStore
	KindNotFound
	KindGenerator
	KindSerialization
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConnection:
		return "connection"
	case KindStore:
		return "store"
	case KindNotFound:
		return "not found"
	case KindGenerator:
		return "generator"
	case KindSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by cordial's packages.
// The message is what clients see in error response bodies.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func isKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

func NewConfigurationError(variable string) error {
	return &Error{
		Kind: KindConfiguration,
		Msg:  fmt.Sprintf("environment variable %s is not set", variable),
	}
}

func NewInvalidConfigurationError(format string, args ...any) error {
	return &Error{Kind: KindConfiguration, Msg: fmt.Sprintf(format, args...)}
}

func IsConfigurationError(err error) bool {
	return isKind(err, KindConfiguration)
}

func NewConnectionError(op string, err error) error {
	return &Error{Kind: KindConnection, Op: op, Msg: op, Err: err}
}

// NewPoolTimeoutError is returned when no pooled connection became free within timeout.
func NewPoolTimeoutError(timeout time.Duration) error {
	return &Error{
		Kind: KindConnection,
		Op:   "acquire",
		Msg:  fmt.Sprintf("timed out after %s waiting for a pooled connection", timeout),
		Err:  ErrPoolTimeout,
	}
}

var ErrPoolTimeout = errors.New("pool timed out")

func IsConnectionError(err error) bool {
	return isKind(err, KindConnection)
}

func IsPoolTimeoutError(err error) bool {
	return errors.Is(err, ErrPoolTimeout)
}

func NewStoreError(op string, err error) error {
	return &Error{Kind: KindStore, Op: op, Msg: op, Err: err}
}

func IsStoreError(err error) bool {
	return isKind(err, KindStore)
}

func NewResourceNotFoundError(resource string, id string) error {
	return &Error{
		Kind: KindNotFound,
		Msg:  fmt.Sprintf("%s %s not found", resource, id),
	}
}

func IsResourceNotFoundError(err error) bool {
	return isKind(err, KindNotFound)
}

func NewGeneratorError(format string, args ...any) error {
	return &Error{Kind: KindGenerator, Msg: fmt.Sprintf(format, args...)}
}

func WrapGeneratorError(err error) error {
	return &Error{Kind: KindGenerator, Msg: "generator failed", Err: err}
}

func IsGeneratorError(err error) bool {
	return isKind(err, KindGenerator)
}

func NewSerializationError(msg string, err error) error {
	return &Error{Kind: KindSerialization, Msg: msg, Err: err}
}

func IsSerializationError(err error) bool {
	return isKind(err, KindSerialization)
}
