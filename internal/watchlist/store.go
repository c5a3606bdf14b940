package watchlist

import "errors"

var (
	ErrDuplicate = errors.New("book is already on the watchlist")
	ErrNotFound  = errors.New("book not found on the watchlist")
)

// Store holds one profile's watchlist. List order is insertion order; the
// backing file is the sole source of truth between invocations.
type Store interface {
	Add(b Book) error
	Get(id string) (Book, error)
	Update(b Book) error
	Remove(title string) (bool, error)
	List() []Book
	Count() int
	Save() error
	Load() error
}
