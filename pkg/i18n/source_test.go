package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/pkg/i18n"
)

func TestParsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewYAMLParser().Parse(ctx, []byte("en:\n  a:\n    b: hello\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"b": "hello"}, cat["en"]["a"])
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewJSONParser().Parse(ctx, []byte(`{"es":{"a":"hola"}}`))
		require.NoError(t, err)
		assert.Equal(t, "hola", cat["es"]["a"])
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewJSONParser().Parse(ctx, []byte(`{`))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

		_, err = i18n.NewYAMLParser().Parse(ctx, []byte("en: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language must hold a map", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewYAMLParser().Parse(ctx, []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewJSONParser().Parse(ctx, []byte(`{}`))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := i18n.NewYAMLParser().Parse(cctx, []byte("en: {a: b}"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParserFor(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.ParserFor(".json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserFor("yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.ParserFor(".YAML"))
	assert.Nil(t, i18n.ParserFor(".toml"))
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("en:\n  hello: Hello\n"), 0o600))

	t.Run("parser from extension", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewFileSource(nil, path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", cat["en"]["hello"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileSource(nil, filepath.Join(dir, "absent.json")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileSource(nil, filepath.Join(dir, "messages.toml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNilParser)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte("en:\n  hello: Hello\n")},
		"locales/es.yml":    {Data: []byte("es:\n  hello: Hola\n")},
		"locales/extra.yml": {Data: []byte("en:\n  bye: Bye\n")},
		"locales/notes.txt": {Data: []byte("ignored")},
		"broken/en.yaml":    {Data: []byte("en: [")},
		"empty/readme.md":   {Data: []byte("nothing")},
	}

	t.Run("merges matching files", func(t *testing.T) {
		t.Parallel()
		cat, err := i18n.NewFSSource(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"hello": "Hello", "bye": "Bye"}, cat["en"])
		assert.Equal(t, map[string]any{"hello": "Hola"}, cat["es"])
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSSource(i18n.NewYAMLParser(), fsys, "broken").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("no matching files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSSource(i18n.NewYAMLParser(), fsys, "empty").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSSource(i18n.NewYAMLParser(), fsys, "absent").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("nil parser", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSSource(nil, fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNilParser)
	})
}
