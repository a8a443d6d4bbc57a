package country

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies the ordered country records a Directory is built from.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Record, error)

func (f SourceFunc) Records(ctx context.Context) ([]Record, error) {
	return f(ctx)
}

// StaticSource serves records held in memory.
type StaticSource []Record

func (s StaticSource) Records(_ context.Context) ([]Record, error) {
	out := make([]Record, len(s))
	for i, r := range s {
		out[i] = r.clone()
	}
	return out, nil
}

// FileSource reads a dataset file from disk. The format is picked from the
// extension: .json, .yaml or .yml.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDataset, err)
	}

	return Decode(ctx, filepath.Ext(s.Path), content)
}

// FSSource reads a dataset file from any fs.FS, e.g. an embed.FS.
type FSSource struct {
	FS   fs.FS
	Path string
}

func NewFSSource(fsys fs.FS, path string) *FSSource {
	return &FSSource{FS: fsys, Path: path}
}

func (s *FSSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDataset, err)
	}

	return Decode(ctx, filepath.Ext(s.Path), content)
}

// Decode parses dataset content. ext may be given with or without the leading dot.
func Decode(ctx context.Context, ext string, content []byte) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []Record
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		if err := json.Unmarshal(content, &records); err != nil {
			return nil, errors.Join(ErrFailedToParseDataset, err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &records); err != nil {
			return nil, errors.Join(ErrFailedToParseDataset, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return records, nil
}

//go:embed data/countries.yaml
var embeddedData embed.FS

// Embedded returns the dataset bundled with the package.
func Embedded() Source {
	return NewFSSource(embeddedData, "data/countries.yaml")
}

// inlineRecords is the compact three-code table used by the minimal form
// variant, kept for callers that need that exact option list.
var inlineRecords = []Record{
	{Name: "India", Code: "+91", NationalNumberLength: 10, Cities: []string{"Mumbai", "Delhi", "Bengaluru"}},
	{Name: "United States", Code: "+1", NationalNumberLength: 10, Cities: []string{"New York", "Los Angeles", "Chicago"}},
	{Name: "United Kingdom", Code: "+44", NationalNumberLength: 10, Cities: []string{"London", "Manchester", "Birmingham"}},
}

// Inline returns the three-country table (+91, +1, +44).
func Inline() Source {
	return StaticSource(slices.Clone(inlineRecords))
}
