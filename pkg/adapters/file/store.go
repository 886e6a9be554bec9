package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

var extensions = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// lookup order when several files share a name
var searchOrder = []string{".yaml", ".yml", ".json"}

// Store implements ports.DefinitionStore over a directory of YAML/JSON files,
// one definition per file named after the definition.
type Store struct {
	BasePath string
	format   Format
}

// Option configures a Store.
type Option func(*Store)

// WithFormat sets the encoding used by Save (default YAML).
func WithFormat(format Format) Option {
	return func(s *Store) {
		s.format = format
	}
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".automata/definitions".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".automata", "definitions")
	}
	s := &Store{BasePath: basePath, format: FormatYAML}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) extension() string {
	if s.format == FormatJSON {
		return ".json"
	}
	return ".yaml"
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &domain.StructuralError{Automaton: name, Reason: "definition name is not a valid file name"}
	}
	return nil
}

// Save writes the definition atomically, replacing any file of the same name.
func (s *Store) Save(ctx context.Context, def *domain.Definition) error {
	if err := ports.ValidateName(def); err != nil {
		return err
	}
	if err := validName(def.Name); err != nil {
		return err
	}

	data, err := Encode(def, s.format)
	if err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure definitions directory: %w", err)
	}

	dest := filepath.Join(s.BasePath, def.Name+s.extension())
	if err := writeAtomic(s.BasePath, dest, data); err != nil {
		return err
	}

	// drop stale copies written under another extension
	for ext := range extensions {
		if ext == s.extension() {
			continue
		}
		if err := os.Remove(filepath.Join(s.BasePath, def.Name+ext)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale definition file: %w", err)
		}
	}
	return nil
}

// writeAtomic writes to a temp file in the same directory, fsyncs, then renames.
func writeAtomic(dir, dest string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "tmp-*"+filepath.Ext(dest))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Windows refuses to rename over an existing file.
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to replace definition file: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads the definition stored under name.
func (s *Store) Load(ctx context.Context, name string) (*domain.Definition, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	for _, ext := range searchOrder {
		path := filepath.Join(s.BasePath, name+ext)
		def, err := LoadFile(path)
		if err == nil {
			return def, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, domain.ErrDefinitionNotFound
}

// LoadFile decodes a single definition file.
// When the document carries no name, the file name (minus extension) is used.
func LoadFile(path string) (*domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		base := filepath.Base(path)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return def, nil
}

// Delete removes every file stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	for ext := range extensions {
		err := os.Remove(filepath.Join(s.BasePath, name+ext))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete definition file: %w", err)
		}
	}
	return nil
}

// List returns the names of all definition files.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	seen := map[string]bool{}
	names := []string{}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "tmp-") {
			continue
		}
		if _, ok := extensions[ext]; !ok {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
