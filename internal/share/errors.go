package share

import (
	"errors"
	"fmt"

	"github.com/iudanet/divelog/internal/transform"
)

var (
	// ErrUnknownProtocol matches any *UnknownProtocolError via errors.Is
	ErrUnknownProtocol = errors.New("unknown share protocol")

	// ErrMalformedPayload matches any *MalformedPayloadError via errors.Is
	ErrMalformedPayload = errors.New("malformed share payload")

	// ErrDecodeFailed matches any *DecodeFailedError via errors.Is
	ErrDecodeFailed = errors.New("share token decode failed")

	// ErrNotShareURL indicates that a URL has no /single-dive/<token> fragment
	ErrNotShareURL = errors.New("not a shared dive link")

	// ErrPending is returned by Pending.Result while the decode is still running
	ErrPending = errors.New("decode still pending")
)

// UnknownProtocolError is returned when the leading tag of a token does not
// name a supported protocol. Tag holds the offending prefix including the
// separator, or the whole token when it has no separator.
type UnknownProtocolError struct {
	Tag string
}

func (e *UnknownProtocolError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownProtocol, e.Tag)
}

func (e *UnknownProtocolError) Is(target error) bool { return target == ErrUnknownProtocol }

// MalformedPayloadError is returned when the decompressed bytes are not UTF-8
// JSON or do not describe a dive.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedPayload, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

func (e *MalformedPayloadError) Is(target error) bool { return target == ErrMalformedPayload }

// DecodeFailedError wraps a failure from one of the decode stages: a
// *transform.InvalidEncodingError, a *transform.CorruptStreamError or a
// *MalformedPayloadError.
type DecodeFailedError struct {
	Err error
}

func (e *DecodeFailedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDecodeFailed, e.Err)
}

func (e *DecodeFailedError) Unwrap() error { return e.Err }

func (e *DecodeFailedError) Is(target error) bool { return target == ErrDecodeFailed }

// Error kinds reported by Kind.
const (
	KindOK               = "ok"
	KindUnknownProtocol  = "unknown_protocol"
	KindInvalidEncoding  = "invalid_encoding"
	KindCorruptStream    = "corrupt_stream"
	KindMalformedPayload = "malformed_payload"
	KindOther            = "other"
)

// Kind classifies a decode error for diagnostics and metrics labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrUnknownProtocol):
		return KindUnknownProtocol
	case errors.Is(err, transform.ErrInvalidEncoding):
		return KindInvalidEncoding
	case errors.Is(err, transform.ErrCorruptStream):
		return KindCorruptStream
	case errors.Is(err, ErrMalformedPayload):
		return KindMalformedPayload
	default:
		return KindOther
	}
}

// IsForeignLink reports whether err means the link was not produced by this
// codec at all (unknown protocol or bad text encoding), as opposed to a link
// that was produced here and later damaged.
func IsForeignLink(err error) bool {
	switch Kind(err) {
	case KindUnknownProtocol, KindInvalidEncoding:
		return true
	}
	return false
}
