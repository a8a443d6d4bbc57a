package country_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/country"
)

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		records, err := country.NewFileSource("testdata/countries.json").Records(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, country.Record{Name: "Singapore", Code: "+65", NationalNumberLength: 8, Cities: []string{"Singapore"}}, records[1])
	})

	t.Run("yaml", func(t *testing.T) {
		records, err := country.NewFileSource("testdata/countries.yml").Records(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"Sydney", "Perth"}, records[0].Cities)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := country.NewFileSource("testdata/nope.json").Records(context.Background())
		assert.ErrorIs(t, err, country.ErrFailedToReadDataset)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := country.NewFileSource("testdata/countries.json").Records(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data/c.yaml":   {Data: []byte("- {name: Singapore, code: \"+65\", nationalNumberLength: 8, cities: [Singapore]}\n")},
		"data/c.toml":   {Data: []byte("x = 1")},
		"data/bad.json": {Data: []byte("{not json")},
	}

	records, err := country.NewFSSource(fsys, "data/c.yaml").Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+65", records[0].Code)

	_, err = country.NewFSSource(fsys, "data/c.toml").Records(context.Background())
	assert.ErrorIs(t, err, country.ErrUnsupportedFormat)

	_, err = country.NewFSSource(fsys, "data/bad.json").Records(context.Background())
	assert.ErrorIs(t, err, country.ErrFailedToParseDataset)
}

func TestDecode_ExtensionForms(t *testing.T) {
	t.Parallel()

	content := []byte(`[{"name":"India","code":"+91","nationalNumberLength":10,"cities":["Delhi"]}]`)
	for _, ext := range []string{"json", ".json", ".JSON", "yaml"} {
		records, err := country.Decode(context.Background(), ext, content)
		require.NoError(t, err, ext)
		assert.Equal(t, "India", records[0].Name, ext)
	}
}

func TestInline(t *testing.T) {
	t.Parallel()

	records, err := country.Inline().Records(context.Background())
	require.NoError(t, err)

	codes := make([]string, 0, len(records))
	for _, r := range records {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{"+91", "+1", "+44"}, codes)

	records[0].Name = "Tampered"
	again, _ := country.Inline().Records(context.Background())
	assert.Equal(t, "India", again[0].Name)
}
