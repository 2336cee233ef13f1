// Package transform holds the byte-level primitives behind share tokens:
// zlib compression and base64url text encoding. It knows nothing about dives.
package transform

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// chunkSize is the read size used when draining a decompressor.
const chunkSize = 32 * 1024

// Compress deflates data inside a zlib container (RFC 1950). This is the same
// framing a browser CompressionStream("deflate") emits, so tokens produced here
// open in the web viewer and vice versa.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush zlib writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress is the inverse of Compress. Every failure, including an empty
// input, is reported as *CorruptStreamError.
func Decompress(data []byte) ([]byte, error) {
	return DecompressLimit(data, -1)
}

// DecompressLimit is Decompress with a cap on the output size. A stream that
// inflates to more than maxSize bytes is reported as *CorruptStreamError
// wrapping ErrTooLarge. A negative maxSize means no limit.
func DecompressLimit(data []byte, maxSize int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &CorruptStreamError{Err: noEOF(err)}
	}
	defer func() {
		_ = zr.Close()
	}()

	if maxSize < 0 {
		out, err := drain(zr)
		if err != nil {
			return nil, &CorruptStreamError{Err: err}
		}
		return out, nil
	}

	// читаем на байт больше лимита, чтобы отличить "ровно maxSize" от переполнения
	out, err := drain(io.LimitReader(zr, maxSize+1))
	if err != nil {
		return nil, &CorruptStreamError{Err: err}
	}
	if int64(len(out)) > maxSize {
		return nil, &CorruptStreamError{Err: fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxSize)}
	}
	return out, nil
}

// drain reads r to the end chunk by chunk. Chunks are appended in the order the
// reader produced them; a short read is never discarded.
func drain(r io.Reader) ([]byte, error) {
	var out []byte
	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			out = append(out, chunk[:n]...)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, noEOF(err)
		}
	}
}

// noEOF turns a bare io.EOF into io.ErrUnexpectedEOF: a stream that ends before
// its header or trailer is truncated, not finished.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
