package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/signup"
)

func TestHumanize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"firstName":    "First Name",
		"countryCode":  "Country Code",
		"showPassword": "Show Password",
		"email":        "Email",
		"pan":          "Pan",
		"aadhar":       "Aadhar",
		"":             "",
	}

	for in, want := range tests {
		assert.Equal(t, want, signup.Humanize(in), "Humanize(%q)", in)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	snap := validSnapshot().WithShowPassword(true)
	entries := signup.Summarize(snap)
	require.Len(t, entries, 12)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	want := make([]string, 0, 12)
	for _, f := range signup.AllFields() {
		want = append(want, f.String())
	}
	assert.Equal(t, want, keys)

	assert.Equal(t, signup.Entry{Key: "firstName", Label: "First Name", Value: "Ada"}, entries[0])
	assert.Equal(t, signup.Entry{Key: "showPassword", Label: "Show Password", Value: "true"}, entries[5])
	assert.Equal(t, signup.Entry{Key: "countryCode", Label: "Country Code", Value: "+91"}, entries[6])
	assert.Equal(t, signup.Entry{Key: "aadhar", Label: "Aadhar", Value: "123456789012"}, entries[11])

	hidden := signup.Summarize(signup.Snapshot{})
	assert.Equal(t, "false", hidden[5].Value)
	assert.Empty(t, hidden[0].Value)
}
