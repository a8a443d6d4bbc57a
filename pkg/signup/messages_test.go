package signup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/i18n"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

func newSignupTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	tr, err := signup.NewTranslator(context.Background())
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	tr := newSignupTranslator(t)
	assert.Equal(t, []string{"en", "es"}, tr.Languages())
	assert.True(t, tr.Has("es", "signup.phone.length"))
}

func TestLocalize(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	tr := newSignupTranslator(t)

	phone, err := engine.Validate(signup.Phone, "123", validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "El teléfono debe tener exactamente 10 dígitos", signup.Localize(tr, "es", phone))
	assert.Equal(t, phone.Message, signup.Localize(tr, "en", phone))
	assert.Equal(t, phone.Message, signup.Localize(tr, "fr", phone), "unknown language uses the default catalog")
	assert.Equal(t, phone.Message, signup.Localize(nil, "es", phone))

	city, err := engine.Validate(signup.City, "London", validSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "Selecciona una ciudad de India", signup.Localize(tr, "es", city))

	valid, err := engine.Validate(signup.Email, "ada@example.com", validSnapshot())
	require.NoError(t, err)
	assert.Empty(t, signup.Localize(tr, "es", valid))
}

func TestLocalize_MissingKeyFallsBackToMessage(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapSource{Data: i18n.Catalog{"en": {}}})
	require.NoError(t, err)

	out := signup.Outcome{
		Field:          signup.Email,
		Kind:           signup.FormatInvalid,
		Message:        "Please enter a valid email (e.g., user@example.com)",
		TranslationKey: "signup.email.format",
	}
	assert.Equal(t, out.Message, signup.Localize(tr, "en", out))
}

func TestLocalizeResult_EnglishMatchesSweep(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	tr := newSignupTranslator(t)

	snapshots := []signup.Snapshot{
		{},
		validSnapshot(),
		{
			FirstName:   "A",
			LastName:    "L0velace",
			Username:    "ab",
			Email:       "nope",
			Password:    "password",
			CountryCode: "+44",
			Phone:       "12345",
			Country:     "Atlantis",
			City:        "Paris",
			PAN:         "abcde1234f",
			Aadhar:      "12345",
		},
		{
			Username: "user-name",
			Password: "Password1",
			Phone:    "12ab",
			Country:  "India",
			City:     "London",
			Aadhar:   "1234567890ab",
		},
	}

	for _, snap := range snapshots {
		got := signup.LocalizeResult(tr, "en", engine.SweepOutcomes(snap))
		assert.Equal(t, engine.Sweep(snap), got)
	}
}
