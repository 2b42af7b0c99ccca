package bbs

import "fmt"

// ErrorKind classifies a structural failure reported by the core. It never
// describes a failed cryptographic check: verify and proof verification
// report those as (false, nil), not as an error.
type ErrorKind int

const (
	// InvalidEncoding covers wrong lengths, malformed Zcash point encodings,
	// identity where forbidden, scalars out of range, and points outside the
	// prime-order subgroup.
	InvalidEncoding ErrorKind = iota
	// InvalidArgument covers caller mistakes: key material too short,
	// key_info too long, disclosed indexes out of range or mismatched with
	// disclosed messages, or a generator count beyond what's representable.
	InvalidArgument
	// CryptoFailure covers the negligible-probability internal aborts the
	// draft mandates, such as SK + e reducing to zero during signing.
	CryptoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidEncoding:
		return "InvalidEncoding"
	case InvalidArgument:
		return "InvalidArgument"
	case CryptoFailure:
		return "CryptoFailure"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every structural failure in this
// package. Use errors.As to recover the Kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func errInvalidEncoding(format string, args ...interface{}) *Error {
	return newError(InvalidEncoding, format, args...)
}

func errInvalidArgument(format string, args ...interface{}) *Error {
	return newError(InvalidArgument, format, args...)
}

func errCryptoFailure(format string, args ...interface{}) *Error {
	return newError(CryptoFailure, format, args...)
}
