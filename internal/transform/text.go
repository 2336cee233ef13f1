package transform

import (
	"encoding/base64"
	"errors"
)

// urlEncoding is base64url without padding; Strict rejects non-zero trailing bits.
var urlEncoding = base64.RawURLEncoding.Strict()

var errBadLength = errors.New("length is not a valid unpadded base64 length")

// EncodeText encodes data with the base64url alphabet and no '=' padding, so the
// result can be placed in a URL fragment without percent-encoding.
func EncodeText(data []byte) string {
	return urlEncoding.EncodeToString(data)
}

// DecodeText is the inverse of EncodeText.
//
// encoding/base64 silently skips '\r' and '\n'; the alphabet check below runs
// first so that those bytes are rejected like any other foreign character.
func DecodeText(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isURLSafe(s[i]) {
			return nil, &InvalidEncodingError{
				Offset: int64(i),
				Err:    base64.CorruptInputError(i),
			}
		}
	}
	if len(s)%4 == 1 {
		return nil, &InvalidEncodingError{Offset: -1, Err: errBadLength}
	}

	out, err := urlEncoding.DecodeString(s)
	if err != nil {
		return nil, &InvalidEncodingError{Offset: -1, Err: err}
	}
	return out, nil
}

func isURLSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
