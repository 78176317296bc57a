package invest

import (
	"errors"
	"fmt"
)

var (
	// ErrInput matches every *InputError.
	ErrInput = errors.New("invalid input")
	// ErrNotFound matches a *LookupError of kind NotFound.
	ErrNotFound = errors.New("not found")
	// ErrNetwork matches a *LookupError of kind Network.
	ErrNetwork = errors.New("network error")

	errMissing   = errors.New("missing value")
	errNotFinite = errors.New("must be a finite number")
)

// InputError reports a user input that cannot be evaluated.
type InputError struct {
	Field string // human name of the offending field
	Value string // raw value, if any
	Err   error
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error        { return e.Err }
func (e *InputError) Is(target error) bool { return target == ErrInput }

// LookupKind classifies a failed price lookup.
type LookupKind int

const (
	NotFound LookupKind = iota // unknown ticker or no history
	Network                    // transport failure, timeout or unexpected response
)

func (k LookupKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Network:
		return "network error"
	default:
		return fmt.Sprintf("LookupKind(%d)", int(k))
	}
}

// LookupError reports a failed price lookup for a ticker.
type LookupError struct {
	Ticker string
	Kind   LookupKind
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Ticker, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrNetwork:
		return e.Kind == Network
	}
	return false
}
