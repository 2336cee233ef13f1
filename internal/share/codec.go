// Package share implements the versioned share-token protocol for dives.
//
// A token is "<tag><payload>", where tag is a small integer followed by '-'
// and names the compression and encoding scheme. Protocol 1 is
//
//	"1-" + base64url-no-padding(zlib(utf8(JSON(dive))))
//
// Tokens live only inside URLs of the form <base>#/single-dive/<token>.
package share

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/transform"
)

const (
	// Separator ends the protocol tag.
	Separator = "-"

	// ProtocolV1 is zlib + base64url without padding.
	ProtocolV1 = "1" + Separator

	// CurrentProtocol is the tag written by Encode.
	CurrentProtocol = ProtocolV1

	// MaxPayloadSize caps the decompressed JSON accepted by Decode and
	// DecodeInto. A larger payload fails as a corrupt stream.
	MaxPayloadSize = 16 << 20
)

var (
	errNotUTF8   = errors.New("payload is not valid UTF-8 text")
	errNotObject = errors.New("payload is not a JSON object")
)

// Encode serializes v to JSON without filtering any field, compresses it and
// returns a URL-safe token tagged with CurrentProtocol. Errors from JSON
// serialization or compression are returned as-is.
func Encode(v any) (string, error) {
	payload, err := marshal(v)
	if err != nil {
		return "", err
	}

	compressed, err := transform.Compress(payload)
	if err != nil {
		return "", err
	}

	return CurrentProtocol + transform.EncodeText(compressed), nil
}

// Decode turns a token back into a dive. The payload must be a JSON object
// whose samples each carry four numbers. The returned dive keeps the payload
// in Raw.
func Decode(token string) (*models.Dive, error) {
	return DecodeLimit(token, MaxPayloadSize)
}

// DecodeLimit is Decode with its own cap on the decompressed payload size.
func DecodeLimit(token string, maxSize int64) (*models.Dive, error) {
	payload, err := decodePayload(token, maxSize)
	if err != nil {
		return nil, err
	}
	if !isJSONObject(payload) {
		return nil, &DecodeFailedError{Err: &MalformedPayloadError{Err: errNotObject}}
	}

	var dive models.Dive
	if err := json.Unmarshal(payload, &dive); err != nil {
		return nil, &DecodeFailedError{Err: &MalformedPayloadError{Err: err}}
	}
	return &dive, nil
}

// DecodeInto decodes a token into dst, which must be a non-nil pointer. dst is
// left untouched unless every stage succeeds. Use *json.RawMessage to get the
// exact payload with fields the Dive model does not know about.
func DecodeInto(token string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("share: DecodeInto needs a non-nil pointer, got %T", dst)
	}

	payload, err := decodePayload(token, MaxPayloadSize)
	if err != nil {
		return err
	}

	// Декодируем во временное значение, чтобы не оставить dst заполненным наполовину
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(payload, tmp.Interface()); err != nil {
		return &DecodeFailedError{Err: &MalformedPayloadError{Err: err}}
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

// ProtocolTag returns the tag of a token: everything up to and including the
// first separator. ok is false when the token has no separator.
func ProtocolTag(token string) (tag string, ok bool) {
	i := strings.Index(token, Separator)
	if i < 0 {
		return token, false
	}
	return token[:i+len(Separator)], true
}

// decodePayload runs the text and compression stages and returns the JSON text.
func decodePayload(token string, maxSize int64) ([]byte, error) {
	tag, ok := ProtocolTag(token)
	if !ok {
		return nil, &UnknownProtocolError{Tag: tag}
	}

	switch tag {
	case ProtocolV1:
		compressed, err := transform.DecodeText(token[len(tag):])
		if err != nil {
			return nil, &DecodeFailedError{Err: err}
		}
		payload, err := transform.DecompressLimit(compressed, maxSize)
		if err != nil {
			return nil, &DecodeFailedError{Err: err}
		}
		if !utf8.Valid(payload) {
			return nil, &DecodeFailedError{Err: &MalformedPayloadError{Err: errNotUTF8}}
		}
		return payload, nil
	default:
		return nil, &UnknownProtocolError{Tag: tag}
	}
}

// marshal produces the same text JSON.stringify would for plain data: no HTML
// escaping and no trailing newline.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isJSONObject(payload []byte) bool {
	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
