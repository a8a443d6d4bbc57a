package i18n

import (
	"cmp"
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds the part of the header that is parsed.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

type localeContextKey struct{}

// SetLocale stores the request language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
		return locale
	}
	return DefaultLanguage
}

type weightedLang struct {
	tag string
	q   float64
}

// parseAcceptLanguage returns lowercased tags ordered by descending quality.
// Entries with equal quality keep their header order.
func parseAcceptLanguage(header string) []weightedLang {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		langs = append(langs, weightedLang{tag: tag, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}

// ParseAcceptLanguage picks the best supported language for header.
// Exact tags win over base-language matches ("es-MX" falls back to "es").
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}

	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = strings.ToLower(s)
	}

	langs := parseAcceptLanguage(header)
	for _, l := range langs {
		if slices.Contains(normalized, l.tag) {
			return l.tag
		}
	}
	for _, l := range langs {
		if base, _, found := strings.Cut(l.tag, "-"); found && slices.Contains(normalized, base) {
			return base
		}
	}
	return defaultLang
}

// LangExtractor reads the preferred language from a request.
type LangExtractor func(r *http.Request) string

// NewLangExtractor checks the "lang" query parameter, then the "lang"
// cookie, then Accept-Language. Only supported languages are returned;
// the empty string means no match.
func NewLangExtractor(supported []string) LangExtractor {
	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = strings.ToLower(s)
	}

	match := func(lang string) string {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if slices.Contains(normalized, lang) {
			return lang
		}
		if base, _, found := strings.Cut(lang, "-"); found && slices.Contains(normalized, base) {
			return base
		}
		return ""
	}

	return func(r *http.Request) string {
		if lang := match(r.URL.Query().Get("lang")); lang != "" {
			return lang
		}
		if c, err := r.Cookie("lang"); err == nil {
			if lang := match(c.Value); lang != "" {
				return lang
			}
		}
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), normalized, "")
	}
}

// Middleware stores the extracted language in the request context.
// fallback is used when the extractor finds nothing.
func Middleware(extract LangExtractor, fallback string) func(http.Handler) http.Handler {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extract != nil {
				lang = extract(r)
			}
			if lang == "" {
				lang = fallback
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
