package watchlist

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

var ErrEmptyTitle = errors.New("book title cannot be empty")

// Status tracks whether a watched book has appeared in its library's
// lendable collection. Transitions are one-way: not_found -> found.
type Status string

const (
	StatusNotFound Status = "not_found"
	StatusFound    Status = "found"
)

type Book struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Author      string     `yaml:"author,omitempty"`
	Library     string     `yaml:"library"`
	Status      Status     `yaml:"status"`
	AddedAt     time.Time  `yaml:"added_at"`
	LastChecked *time.Time `yaml:"last_checked,omitempty"`
	FoundOn     *time.Time `yaml:"found_on,omitempty"`
}

func NewBook(title, author, library string) Book {
	return Book{
		ID:      uuid.New().String(),
		Title:   strings.TrimSpace(title),
		Author:  strings.TrimSpace(author),
		Library: library,
		Status:  StatusNotFound,
		AddedAt: time.Now(),
	}
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Key identifies a book within a profile: the case-folded title/author
// pair. Two books with the same key are duplicates.
func Key(title, author string) string {
	return fold(title) + "\x00" + fold(author)
}

func (b Book) Key() string {
	return Key(b.Title, b.Author)
}

// TitleEquals reports whether the book's title matches the given one,
// ignoring case and surrounding whitespace.
func (b Book) TitleEquals(title string) bool {
	return fold(b.Title) == fold(title)
}

// RecordCheck applies the outcome of one catalogue check. The status can
// only move not_found -> found; a book that later disappears from the
// catalogue stays found. FoundOn is set at the first owning match and never
// changes afterwards. Reports whether this check newly found the book.
func (b *Book) RecordCheck(found bool, now time.Time) bool {
	checked := now
	b.LastChecked = &checked

	if !found || b.Status == StatusFound {
		return false
	}

	b.Status = StatusFound
	if b.FoundOn == nil {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		b.FoundOn = &day
	}
	return true
}
