package proptest

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"libbymon/internal/watchlist"
)

// Status may only move not_found -> found, FoundOn is set at the first
// owning match and never changes, and every check stamps LastChecked.
func TestProperty_RecordCheck_StatusMonotone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := GenBook(rt)
		now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

		outcomes := rapid.SliceOfN(rapid.Bool(), 1, 30).Draw(rt, "outcomes")

		var firstFoundOn *time.Time
		everFound := false
		transitions := 0

		for _, found := range outcomes {
			now = now.Add(time.Duration(rapid.IntRange(1, 72).Draw(rt, "hours")) * time.Hour)
			newlyFound := b.RecordCheck(found, now)

			if b.LastChecked == nil || !b.LastChecked.Equal(now) {
				rt.Fatalf("LastChecked not stamped: got %v, want %v", b.LastChecked, now)
			}

			if newlyFound {
				transitions++
				if everFound {
					rt.Fatalf("book transitioned to found a second time")
				}
			}
			if found {
				everFound = true
			}

			if everFound && b.Status != watchlist.StatusFound {
				rt.Fatalf("status reverted to %q after being found", b.Status)
			}
			if !everFound && b.Status != watchlist.StatusNotFound {
				rt.Fatalf("status %q without any owning match", b.Status)
			}

			if b.Status == watchlist.StatusFound {
				if b.FoundOn == nil {
					rt.Fatalf("found book has no FoundOn")
				}
				if firstFoundOn == nil {
					firstFoundOn = b.FoundOn
				} else if !b.FoundOn.Equal(*firstFoundOn) {
					rt.Fatalf("FoundOn changed from %v to %v", *firstFoundOn, *b.FoundOn)
				}
			}
		}

		if everFound && transitions != 1 {
			rt.Fatalf("expected exactly one transition, got %d", transitions)
		}
	})
}

func TestProperty_Key_FoldInsensitive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		title := titleGen().Draw(rt, "title")
		author := authorGen.Draw(rt, "author")

		variants := []string{
			title,
			"  " + title + "  ",
		}
		for _, v := range variants {
			if watchlist.Key(v, author) != watchlist.Key(title, author) {
				rt.Fatalf("key differs for whitespace variant %q", v)
			}
		}

		if watchlist.Key(flipCase(rt, title), author) != watchlist.Key(title, author) {
			rt.Fatalf("key differs for case variant of %q", title)
		}
	})
}
