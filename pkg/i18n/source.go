package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Source loads a catalog.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapSource serves an in-memory catalog.
type MapSource struct {
	Data Catalog
}

func (s *MapSource) Load(_ context.Context) (Catalog, error) {
	if s.Data == nil {
		return Catalog{}, nil
	}
	return s.Data, nil
}

// FileSource reads a single catalog file from disk.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource picks the parser from the file extension when parser is nil.
func NewFileSource(parser Parser, filename string) *FileSource {
	if parser == nil {
		parser = ParserFor(path.Ext(filename))
	}
	return &FileSource{parser: parser, path: filename}
}

func (s *FileSource) Load(ctx context.Context) (Catalog, error) {
	if s.parser == nil {
		return nil, ErrNilParser
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	cat, err := s.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", s.path, err))
	}
	return cat, nil
}

// FSSource merges every file of dir in fsys that the parser supports.
// Files are read in lexical order; later files override earlier keys of the
// same language at the top level.
type FSSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewFSSource(parser Parser, fsys fs.FS, dir string) *FSSource {
	return &FSSource{parser: parser, fsys: fsys, dir: dir}
}

func (s *FSSource) Load(ctx context.Context) (Catalog, error) {
	if s.parser == nil {
		return nil, ErrNilParser
	}
	if s.fsys == nil {
		return nil, ErrNilSource
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	merged := make(Catalog)
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !s.parser.SupportsExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := path.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		cat, err := s.parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}

		for lang, tree := range cat {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any, len(tree))
			}
			maps.Copy(merged[lang], tree)
		}
		files++
	}

	if files == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, s.dir)
	}
	return merged, nil
}
