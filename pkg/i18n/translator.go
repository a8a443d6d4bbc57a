package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// DefaultLanguage is used when neither the caller nor the request names one.
const DefaultLanguage = "en"

// Translator renders messages from a loaded catalog.
// The catalog is read once at construction; a Translator is safe for concurrent use.
type Translator struct {
	catalog       Catalog
	languages     []string
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads the catalog from src.
func NewTranslator(ctx context.Context, src Source, opts ...Option) (*Translator, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	cat, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tree := range cat {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: language %q has no messages", ErrInvalidCatalog, lang)
		}
		t.languages = append(t.languages, lang)
	}
	slices.Sort(t.languages)
	t.catalog = cat

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	return t, nil
}

// Languages returns the sorted language codes of the catalog.
func (t *Translator) Languages() []string {
	return slices.Clone(t.languages)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Has reports whether lang defines key as a string message.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// Negotiate picks the best catalog language for an Accept-Language header.
func (t *Translator) Negotiate(header string) string {
	return ParseAcceptLanguage(header, t.languages, t.defaultLang)
}

// T renders key in lang, substituting args given as name/value pairs.
// Missing messages fall back to the default language, then to the key itself
// (or the empty string when key fallback is disabled).
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return format(msg, args)
	}
	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// Td is T with an explicit fallback message.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return format(msg, args)
	}
	return format(defaultValue, args)
}

// Tc renders key in the language stored in ctx by Middleware or SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if msg, ok := t.lookup(lang, key); ok {
		return msg, true
	}
	if lang != t.defaultLang {
		if msg, ok := t.lookup(t.defaultLang, key); ok {
			return msg, true
		}
	}
	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// lookup walks the dot-separated key through the language tree.
func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.catalog[lang]
	if !ok || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		node, ok = asTree(node[part])
		if !ok {
			return "", false
		}
	}

	switch v := node[parts[len(parts)-1]].(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func asTree(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// format replaces %{name} placeholders. Unknown placeholders are kept as is
// and a trailing unpaired argument is ignored.
func format(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
