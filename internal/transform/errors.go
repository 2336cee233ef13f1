package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptStream matches any *CorruptStreamError via errors.Is
	ErrCorruptStream = errors.New("corrupt compressed stream")

	// ErrTooLarge is wrapped by the *CorruptStreamError DecompressLimit returns
	// when the output would exceed the limit
	ErrTooLarge = errors.New("decompressed data exceeds limit")

	// ErrInvalidEncoding matches any *InvalidEncodingError via errors.Is
	ErrInvalidEncoding = errors.New("invalid url-safe encoding")
)

// CorruptStreamError is returned by Decompress when the input is not a valid
// zlib stream: bad header, damaged deflate block, truncation or checksum mismatch.
// DecompressLimit also returns it for a stream that inflates past its limit.
type CorruptStreamError struct {
	Err error
}

func (e *CorruptStreamError) Error() string {
	if e.Err == nil {
		return ErrCorruptStream.Error()
	}
	return fmt.Sprintf("%s: %v", ErrCorruptStream, e.Err)
}

func (e *CorruptStreamError) Unwrap() error { return e.Err }

// Is reports ErrCorruptStream as a match so callers can use errors.Is.
func (e *CorruptStreamError) Is(target error) bool { return target == ErrCorruptStream }

// InvalidEncodingError is returned by DecodeText when the text contains a byte
// outside the base64url alphabet or has a length no encoder could produce.
// Offset is the position of the first offending byte, or -1 when the problem
// is the length or the trailing bits.
type InvalidEncodingError struct {
	Err    error
	Offset int64
}

func (e *InvalidEncodingError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %v", ErrInvalidEncoding, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrInvalidEncoding, e.Err)
}

func (e *InvalidEncodingError) Unwrap() error { return e.Err }

// Is reports ErrInvalidEncoding as a match so callers can use errors.Is.
func (e *InvalidEncodingError) Is(target error) bool { return target == ErrInvalidEncoding }
