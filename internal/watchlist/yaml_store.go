package watchlist

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type watchlistFile struct {
	Version int    `yaml:"version"`
	Books   []Book `yaml:"books"`
}

// YAMLStore persists one profile's watchlist as a single YAML file. The
// whole list is loaded into memory and rewritten as one unit; dataset size
// is dozens of entries at most.
type YAMLStore struct {
	path  string
	books []Book
	mu    sync.RWMutex
}

// PathFor returns the watchlist file path for the given profile. The
// default profile ("") lives at watchlist.yaml.
func PathFor(dataDir, profile string) string {
	if profile == "" {
		return filepath.Join(dataDir, "watchlist.yaml")
	}
	return filepath.Join(dataDir, "watchlist-"+profile+".yaml")
}

func NewYAMLStore(path string) (*YAMLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &YAMLStore{path: path}, nil
}

func (s *YAMLStore) Add(b Book) error {
	if err := ValidateTitle(b.Title); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := b.Key()
	for _, existing := range s.books {
		if existing.Key() == key {
			return fmt.Errorf("%w: %s", ErrDuplicate, existing.Title)
		}
	}

	s.books = append(s.books, b)
	return nil
}

func (s *YAMLStore) Get(id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (s *YAMLStore) Update(b Book) error {
	if err := ValidateTitle(b.Title); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	key := b.Key()
	for i, existing := range s.books {
		if existing.ID == b.ID {
			idx = i
		} else if existing.Key() == key {
			return fmt.Errorf("%w: %s", ErrDuplicate, existing.Title)
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	s.books[idx] = b
	return nil
}

// Remove deletes every book whose title matches, ignoring case. Removing
// an absent title is not an error.
func (s *YAMLStore) Remove(title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.books[:0]
	removed := false
	for _, b := range s.books {
		if b.TitleEquals(title) {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	s.books = kept
	return removed, nil
}

func (s *YAMLStore) List() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]Book, len(s.books))
	copy(books, s.books)
	return books
}

func (s *YAMLStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Save rewrites the watchlist file atomically: a crash mid-write leaves
// the previous file intact.
func (s *YAMLStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := watchlistFile{
		Version: 1,
		Books:   s.books,
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *YAMLStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read watchlist file: %w", err)
	}

	var file watchlistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse watchlist file %q: %w", s.path, err)
	}

	s.books = file.Books
	return nil
}
