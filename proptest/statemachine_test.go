package proptest

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"

	"libbymon/internal/watchlist"
)

// Exercises random operation sequences against a map model and checks
// that the store never drifts from it.
func TestProperty_StateMachine_StoreOperations(t *testing.T) {
	RunWithStore(t, func(h *StoreHarness) {
		model := make(map[string]watchlist.Book)
		now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

		modelIDs := func() []string {
			ids := make([]string, 0, len(model))
			for id := range model {
				ids = append(ids, id)
			}
			return ids
		}

		h.T.Repeat(map[string]func(*rapid.T){
			"add": func(rt *rapid.T) {
				b := GenBook(rt)
				dup := false
				for _, existing := range model {
					if existing.Key() == b.Key() {
						dup = true
						break
					}
				}

				err := h.Store.Add(b)
				if dup && !errors.Is(err, watchlist.ErrDuplicate) {
					rt.Fatalf("expected duplicate error for %q, got %v", b.Title, err)
				}
				if !dup && err != nil {
					rt.Fatalf("unexpected add error for %q: %v", b.Title, err)
				}
				if err == nil {
					model[b.ID] = b
				}
			},

			"remove": func(rt *rapid.T) {
				ids := modelIDs()
				if len(ids) == 0 {
					rt.Skip("no books to remove")
				}
				title := model[rapid.SampledFrom(ids).Draw(rt, "id")].Title

				removed, err := h.Store.Remove(title)
				if err != nil {
					rt.Fatalf("remove failed: %v", err)
				}
				if !removed {
					rt.Fatalf("remove of watched title %q reported no match", title)
				}
				for id, b := range model {
					if b.TitleEquals(title) {
						delete(model, id)
					}
				}
			},

			"get": func(rt *rapid.T) {
				ids := modelIDs()
				if len(ids) == 0 {
					rt.Skip("no books")
				}
				id := rapid.SampledFrom(ids).Draw(rt, "id")

				b, err := h.Store.Get(id)
				if err != nil {
					rt.Fatalf("get of known ID %s failed: %v", id, err)
				}
				assertBooksEqual(rt, model[id], b)
			},

			"recordCheck": func(rt *rapid.T) {
				ids := modelIDs()
				if len(ids) == 0 {
					rt.Skip("no books to check")
				}
				id := rapid.SampledFrom(ids).Draw(rt, "id")
				now = now.Add(time.Hour)

				b := model[id]
				b.RecordCheck(rapid.Bool().Draw(rt, "found"), now)
				if err := h.Store.Update(b); err != nil {
					rt.Fatalf("update after check failed: %v", err)
				}
				model[id] = b
			},

			"saveLoad": func(rt *rapid.T) {
				if err := h.Store.Save(); err != nil {
					rt.Fatalf("save failed: %v", err)
				}
				store2, err := watchlist.NewYAMLStore(filepath.Join(h.Dir, "watchlist.yaml"))
				if err != nil {
					rt.Fatalf("failed to create second store: %v", err)
				}
				if err := store2.Load(); err != nil {
					rt.Fatalf("load failed: %v", err)
				}
				if store2.Count() != len(model) {
					rt.Fatalf("reloaded count %d, model has %d", store2.Count(), len(model))
				}
			},

			"": func(rt *rapid.T) {
				verifyStoreInvariants(rt, h.Store)

				list := h.Store.List()
				if len(list) != len(model) {
					rt.Fatalf("store has %d books, model has %d", len(list), len(model))
				}
				for _, b := range list {
					if _, ok := model[b.ID]; !ok {
						rt.Fatalf("store contains unknown book %s (%q)", b.ID, b.Title)
					}
				}
			},
		})
	})
}
