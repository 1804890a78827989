// Package storage provides recipe file persistence.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/rcpe"
)

// Compile-time interface check.
var _ domain.RecipeStore = (*FileStore)(nil)

// DefaultDir is where recipes are kept when no directory is configured.
const DefaultDir = "recipes"

// FileStore reads and writes one recipe per file under a library directory.
// Each call is a synchronous whole-file read or write; nothing is cached.
type FileStore struct {
	dir string
	ext string
	log *logger.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithExtension overrides the ".rcpe" extension appended on write.
func WithExtension(ext string) Option {
	return func(s *FileStore) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.ext = ext
	}
}

// NewFileStore creates a store rooted at dir. An empty dir means DefaultDir.
func NewFileStore(dir string, log *logger.Logger, opts ...Option) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	s := &FileStore{dir: dir, ext: rcpe.Extension, log: log}
	for _, o := range opts {
		o(s)
	}
	if s.ext == "" {
		s.ext = rcpe.Extension
	}
	return s
}

// Dir returns the library directory.
func (s *FileStore) Dir() string { return s.dir }

// Resolve maps a user-supplied path to a file path. Bare file names resolve
// under the library directory; anything with a directory part is used as is.
func (s *FileStore) Resolve(path string) string {
	if filepath.IsAbs(path) || filepath.Base(path) != path {
		return path
	}
	return filepath.Join(s.dir, path)
}

// withExt appends the store extension unless path already has it.
func (s *FileStore) withExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), s.ext) {
		return path
	}
	return path + s.ext
}

// Read loads and decodes one recipe file.
func (s *FileStore) Read(ctx context.Context, path string) (*domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full := s.Resolve(path)
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) && filepath.Ext(full) == "" {
		full = s.withExt(full)
		data, err = os.ReadFile(full)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, full)
		}
		return nil, fmt.Errorf("reading %s: %w", full, err)
	}

	r, err := rcpe.Decode(data)
	if err != nil {
		s.log.Warn("decode failed for %s: %v", full, err)
		return nil, fmt.Errorf("%s: %w", full, err)
	}
	s.log.Debug("read recipe %q from %s (%s)", r.Name, full, rcpe.DetectFormat(data))
	return r, nil
}

// Write encodes r and writes it, appending the extension when missing and
// creating the parent directory. It returns the path written.
func (s *FileStore) Write(ctx context.Context, path string, r *domain.Recipe) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := rcpe.Encode(r)
	if err != nil {
		return "", err
	}
	full := s.withExt(s.Resolve(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", full, err)
	}
	s.log.Info("wrote recipe %q to %s", r.Name, full)
	return full, nil
}

// List returns the recipe files in the library directory, sorted by name.
// A missing directory is an empty library.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), s.ext) {
			continue
		}
		out = append(out, filepath.Join(s.dir, e.Name()))
	}
	sort.Strings(out)
	s.log.Debug("listing recipe files, count=%d", len(out))
	return out, nil
}

// Convert rewrites src in the canonical format. An empty dst overwrites src.
// It returns the written path and the format src was in.
func (s *FileStore) Convert(ctx context.Context, src, dst string) (string, rcpe.Format, error) {
	if err := ctx.Err(); err != nil {
		return "", rcpe.FormatUnknown, err
	}
	src = s.Resolve(src)
	data, err := os.ReadFile(src)
	if err != nil {
		return "", rcpe.FormatUnknown, fmt.Errorf("reading %s: %w", src, err)
	}
	out, format, err := rcpe.Migrate(data)
	if err != nil {
		return "", format, fmt.Errorf("%s: %w", src, err)
	}

	if dst == "" {
		dst = src
	} else {
		dst = s.withExt(dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", format, fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return "", format, fmt.Errorf("writing %s: %w", dst, err)
	}
	s.log.Info("converted %s (%s) to %s", src, format, dst)
	return dst, format, nil
}
