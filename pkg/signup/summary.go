package signup

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one labelled line of the success summary.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Summarize lists every key of snap in declaration order, showPassword included.
func Summarize(snap Snapshot) []Entry {
	entries := make([]Entry, 0, len(allFields))
	for _, f := range allFields {
		var value string
		if f == ShowPassword {
			value = strconv.FormatBool(snap.ShowPassword)
		} else {
			value, _ = snap.Get(f)
		}
		entries = append(entries, Entry{
			Key:   string(f),
			Label: Humanize(string(f)),
			Value: value,
		})
	}
	return entries
}

// Humanize turns a camelCase key into a title-cased label:
// "countryCode" becomes "Country Code".
func Humanize(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English, cases.NoLower).String(b.String())
}
