package export

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// WriterFunc serializes a table to w.
type WriterFunc func(w io.Writer, t Table) error

// Registry holds format name → writer mappings.
type Registry struct {
	writers map[string]WriterFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{writers: make(map[string]WriterFunc)}
}

// NewDefault returns a Registry with the csv and xlsx writers registered.
func NewDefault() *Registry {
	r := New()
	r.Register(FormatCSV, WriteCSV)
	r.Register(FormatXLSX, WriteXLSX)
	return r
}

// Register adds or replaces the writer for format.
func (r *Registry) Register(format string, fn WriterFunc) {
	r.writers[strings.ToLower(format)] = fn
}

// Lookup returns the writer registered for format.
func (r *Registry) Lookup(format string) (WriterFunc, error) {
	fn, ok := r.writers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (known: %s)", format, strings.Join(r.Formats(), ", "))
	}
	return fn, nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFor resolves the output format: an explicit override wins, then a
// registered file extension, then csv.
func (r *Registry) FormatFor(path, override string) string {
	if override != "" {
		return strings.ToLower(override)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := r.writers[ext]; ok {
		return ext
	}
	return FormatCSV
}
