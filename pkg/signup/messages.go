package signup

import (
	"context"
	"embed"
	"fmt"
	"slices"

	"github.com/dmitrymomot/signupkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the bundled sign-up message catalogs (en, es).
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSSource(i18n.NewYAMLParser(), locales, "locales"), opts...)
}

// Translator renders a message key with an explicit fallback.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// Localize renders the message of o in lang. The English message of the
// outcome is used when the catalog has no entry. Valid outcomes render empty.
func Localize(t Translator, lang string, o Outcome) string {
	if o.IsValid() {
		return ""
	}
	if t == nil || o.TranslationKey == "" {
		return o.Message
	}
	return t.Td(lang, o.TranslationKey, o.Message, translationArgs(o.TranslationValues)...)
}

// LocalizeResult renders a full set of outcomes as a Result.
func LocalizeResult(t Translator, lang string, outcomes map[Field]Outcome) Result {
	res := make(Result, len(outcomes))
	for f, o := range outcomes {
		res[f] = Localize(t, lang, o)
	}
	return res
}

// translationArgs flattens values into sorted name/value pairs.
func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
