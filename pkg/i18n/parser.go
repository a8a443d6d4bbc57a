package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps a language code to its message tree.
type Catalog map[string]map[string]any

// Parser decodes catalog content of one file format.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalog, error)
	// SupportsExtension accepts extensions with or without the leading dot.
	SupportsExtension(ext string) bool
}

// ParserFor returns the parser for a file extension, or nil.
func ParserFor(ext string) Parser {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toCatalog(data)
}

func (p *JSONParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toCatalog(data)
}

func (p *YAMLParser) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// toCatalog requires every top-level value to be a message tree.
func toCatalog(data map[string]any) (Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages defined", ErrInvalidCatalog)
	}

	cat := make(Catalog, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, want a map", ErrInvalidCatalog, lang, val)
		}
		cat[lang] = tree
	}
	return cat, nil
}
