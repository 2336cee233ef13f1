// Package l10n negotiates the display language and looks up translated
// messages. Message bundles are embedded YAML files, one per locale, loaded on
// first use in priority order.
package l10n

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// DefaultLocale is used when nothing better matches.
var DefaultLocale = language.AmericanEnglish

// Available lists the locales that have a bundle, default first.
var Available = []language.Tag{
	language.AmericanEnglish,
	language.MustParse("fr-FR"),
}

// rtlLanguages are the base languages written right to left.
var rtlLanguages = map[string]bool{"ar": true, "he": true, "fa": true, "ps": true, "ur": true}

var matcher = language.NewMatcher(Available)

// Args are the named arguments of a message.
type Args map[string]any

// Bundle holds the messages of one locale.
type Bundle struct {
	Messages map[string]string
	Tag      language.Tag
}

// Loader produces a bundle on demand.
type Loader func() (*Bundle, error)

// Localizer resolves messages against an ordered chain of bundles. Bundles are
// loaded lazily: a loader runs only when every bundle before it lacks the
// requested message, and each loader runs at most once.
type Localizer struct {
	loaders []Loader
	bundles []*Bundle
	tag     language.Tag
	mu      sync.Mutex
	next    int
}

// New negotiates requested (BCP 47 tags or Accept-Language strings) against
// Available and returns a Localizer backed by the embedded bundles.
func New(requested ...string) *Localizer {
	chain := Negotiate(requested...)
	loaders := make([]Loader, 0, len(chain))
	for _, tag := range chain {
		loaders = append(loaders, EmbeddedLoader(tag))
	}
	return NewWithLoaders(chain[0], loaders...)
}

// NewWithLoaders builds a Localizer whose primary locale is tag.
func NewWithLoaders(tag language.Tag, loaders ...Loader) *Localizer {
	return &Localizer{tag: tag, loaders: loaders}
}

// Negotiate returns the locale chain for the requested languages: the best
// available match followed by DefaultLocale when it differs.
func Negotiate(requested ...string) []language.Tag {
	var desired []language.Tag
	for _, r := range requested {
		tags, _, err := language.ParseAcceptLanguage(r)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}

	_, idx, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return []language.Tag{DefaultLocale}
	}

	best := Available[idx]
	if best == DefaultLocale {
		return []language.Tag{best}
	}
	return []language.Tag{best, DefaultLocale}
}

// SystemLocales reads the POSIX locale variables in priority order and turns
// values such as "fr_FR.UTF-8" into BCP 47 tags.
func SystemLocales(getenv func(string) string) []string {
	var out []string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		out = append(out, strings.ReplaceAll(v, "_", "-"))
	}
	return out
}

// IsRTL reports whether tag is written right to left.
func IsRTL(tag language.Tag) bool {
	base, _ := tag.Base()
	return rtlLanguages[base.String()]
}

// EmbeddedLoader loads the embedded bundle of tag.
func EmbeddedLoader(tag language.Tag) Loader {
	return func() (*Bundle, error) {
		data, err := localesFS.ReadFile("locales/" + tag.String() + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read bundle %s: %w", tag, err)
		}
		return ParseBundle(tag, data)
	}
}

// ParseBundle parses a flat YAML mapping of message id to template.
func ParseBundle(tag language.Tag, data []byte) (*Bundle, error) {
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse bundle %s: %w", tag, err)
	}
	return &Bundle{Tag: tag, Messages: messages}, nil
}

// Tag returns the primary locale.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Direction returns "rtl" or "ltr" for the primary locale.
func (l *Localizer) Direction() string {
	if IsRTL(l.tag) {
		return "rtl"
	}
	return "ltr"
}

// Get returns the message id formatted with args. When no bundle has the
// message, the id itself is returned.
func (l *Localizer) Get(id string, args Args) string {
	bundle, tmpl, ok := l.lookup(id)
	if !ok {
		return id
	}
	return format(message.NewPrinter(bundle.Tag), tmpl, args)
}

func (l *Localizer) lookup(id string) (*Bundle, string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := 0; ; i++ {
		if i == len(l.bundles) && !l.loadNext() {
			return nil, "", false
		}
		b := l.bundles[i]
		if tmpl, ok := b.Messages[id]; ok {
			return b, tmpl, true
		}
	}
}

// loadNext runs loaders until one succeeds. It reports whether a bundle was added.
func (l *Localizer) loadNext() bool {
	for l.next < len(l.loaders) {
		loader := l.loaders[l.next]
		l.next++

		b, err := loader()
		if err != nil {
			slog.Warn("failed to load message bundle", "error", err)
			continue
		}
		l.bundles = append(l.bundles, b)
		return true
	}
	return false
}

// format substitutes {name} placeholders. Unknown names are left as they are.
func format(p *message.Printer, tmpl string, args Args) string {
	var sb strings.Builder
	for {
		start := strings.IndexByte(tmpl, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(tmpl[start:], '}')
		if end < 0 {
			break
		}
		end += start

		name := tmpl[start+1 : end]
		sb.WriteString(tmpl[:start])
		if v, ok := args[name]; ok {
			sb.WriteString(formatArg(p, v))
		} else {
			sb.WriteString(tmpl[start : end+1])
		}
		tmpl = tmpl[end+1:]
	}
	sb.WriteString(tmpl)
	return sb.String()
}

// formatArg prints numbers with locale separators and at most one decimal.
func formatArg(p *message.Printer, v any) string {
	switch n := v.(type) {
	case float64:
		return p.Sprint(number.Decimal(n, number.MaxFractionDigits(1)))
	case float32:
		return p.Sprint(number.Decimal(n, number.MaxFractionDigits(1)))
	case int, int32, int64, uint, uint32, uint64:
		return p.Sprint(number.Decimal(n))
	case string:
		return n
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprint(v)
	}
}
