package tindahan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Store loads and saves the whole book document. Implementations must degrade
// a missing or corrupt document to an empty but valid book instead of failing:
// a freshly-empty book is a legitimate "new ledger" state, not an error.
type Store interface {
	Load() (*Book, error)
	Save(*Book) error
}

// FileStore persists the book as a single JSON file on disk.
type FileStore struct {
	Path     string
	Currency string // currency for a freshly created book
	Shop     string // shop name for a freshly created book
}

// NewFileStore returns a store writing to path. currency is only used when
// the document does not exist yet.
func NewFileStore(path, currency string) *FileStore {
	return &FileStore{Path: path, Currency: currency}
}

// newBook creates the empty book a missing or corrupt document degrades to.
func (s *FileStore) newBook() *Book {
	b := NewBook(s.Currency)
	b.Shop = s.Shop
	return b
}

// Load reads the document. A missing file yields a new empty book; a corrupt
// one is logged and replaced by a new empty book on the next save.
func (s *FileStore) Load() (*Book, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("file", s.Path).Info("book does not exist yet, starting empty")
		return s.newBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", s.Path, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		logrus.WithField("file", s.Path).WithError(err).Warn("book file is corrupt, starting empty")
		return s.newBook(), nil
	}
	return b, nil
}

// Save writes the document atomically: encode to a temp file in the same
// directory, then rename over the target.
func (s *FileStore) Save(b *Book) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", s.Path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBook(tmp, b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("could not replace book file %q: %w", s.Path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
