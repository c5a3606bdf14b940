package proptest

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"

	"libbymon/internal/watchlist"
)

func assertBooksEqual(t *rapid.T, expected, actual watchlist.Book) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateApproxTime(0),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
}

// verifyStoreInvariants checks the structural properties any watchlist
// store must hold after an arbitrary operation sequence.
func verifyStoreInvariants(t *rapid.T, store watchlist.Store) {
	count := store.Count()
	list := store.List()

	if count != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", count, len(list))
	}

	keysSeen := make(map[string]bool)
	for _, b := range list {
		if b.ID == "" {
			t.Fatalf("book %q has empty ID", b.Title)
		}
		if keysSeen[b.Key()] {
			t.Fatalf("duplicate title/author pair in List(): %q / %q", b.Title, b.Author)
		}
		keysSeen[b.Key()] = true

		switch b.Status {
		case watchlist.StatusNotFound, watchlist.StatusFound:
		default:
			t.Fatalf("book %q has invalid status %q", b.Title, b.Status)
		}
		if b.FoundOn != nil && b.Status != watchlist.StatusFound {
			t.Fatalf("book %q has found_on set while status is %q", b.Title, b.Status)
		}
	}
}
