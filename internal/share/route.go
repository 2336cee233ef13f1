package share

import (
	"fmt"
	"net/url"
	"strings"
)

// RoutePrefix is the fragment path that carries a token.
const RoutePrefix = "/single-dive/"

// URL returns base with its fragment replaced by /single-dive/<token>.
func URL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid share base URL: %w", err)
	}
	u.Fragment = RoutePrefix + token
	u.RawFragment = ""
	return u.String(), nil
}

// TokenFromURL extracts the token from a share URL. A bare token such as
// "1-eJyr..." is returned unchanged. The token is taken verbatim from the
// parsed fragment.
func TokenFromURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNotShareURL
	}
	if !strings.Contains(raw, "#") && !strings.Contains(raw, "/") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotShareURL, err)
	}

	token, ok := strings.CutPrefix(u.Fragment, RoutePrefix)
	if !ok || token == "" {
		return "", ErrNotShareURL
	}
	return token, nil
}
