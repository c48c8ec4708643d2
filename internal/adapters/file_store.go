package adapters

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/quotesort/pkg/codec"
	"github.com/aretw0/quotesort/pkg/domain"
)

// DefaultPath is the location of the quotes file relative to the project directory.
var DefaultPath = filepath.Join("public", "quotes.json")

// FileStore implements ports.QuoteStore using a single JSON file.
type FileStore struct {
	Path   string
	Logger *slog.Logger // Optional; reports content dropped while decoding
}

// NewFileStore creates a FileStore for the quotes file under dir.
// If dir is empty, it defaults to the working directory.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{Path: filepath.Join(dir, DefaultPath)}
}

// Location returns the file path.
func (f *FileStore) Location() string {
	return f.Path
}

// Load reads the whole file and decodes it.
// The file is closed before Load returns.
func (f *FileStore) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to read quotes file: %w", err)
	}

	doc, details, err := codec.DecodeDetailed(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}

	if f.Logger != nil && (len(details.IgnoredKeys) > 0 || details.TruncatedEntries > 0) {
		f.Logger.Warn("Dropping extra content",
			"path", f.Path,
			"ignored_keys", details.IgnoredKeys,
			"truncated_entries", details.TruncatedEntries,
		)
	}

	return doc, nil
}

// Save encodes doc and overwrites the file, truncating prior content.
// Nothing is written if encoding fails. An existing file keeps its permissions.
func (f *FileStore) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := codec.Encode(doc)
	if err != nil {
		return err
	}

	perm := fs.FileMode(0644)
	if info, err := os.Stat(f.Path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("failed to ensure quotes directory: %w", err)
	}

	if err := os.WriteFile(f.Path, data, perm); err != nil {
		return fmt.Errorf("failed to write quotes file: %w", err)
	}

	return nil
}
