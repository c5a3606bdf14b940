package overdrive_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libbymon/internal/overdrive"
)

func TestClient_Search(t *testing.T) {
	t.Run("maps response items to catalogue entries", func(t *testing.T) {
		var gotPath, gotQuery, gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("query")
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte(`{
				"totalItems": 2,
				"items": [
					{"title": "Dune", "firstCreatorName": "Frank Herbert", "ownedCopies": 3, "isOwned": true, "isAvailable": true, "availableCopies": 1},
					{"title": "Dune Messiah", "firstCreatorName": "Frank Herbert", "isOwned": false}
				]
			}`))
		}))
		defer srv.Close()

		client := overdrive.NewClientWithBaseURL(srv.URL)
		entries, err := client.Search(context.Background(), "telaviv", "dune herbert")

		require.NoError(t, err)
		assert.Equal(t, "/telaviv/media", gotPath)
		assert.Equal(t, "dune herbert", gotQuery)
		assert.Contains(t, gotUA, "libbymon")

		require.Len(t, entries, 2)
		assert.Equal(t, overdrive.CatalogEntry{
			Title:           "Dune",
			Author:          "Frank Herbert",
			OwnedCopies:     3,
			IsOwned:         true,
			IsAvailable:     true,
			AvailableCopies: 1,
		}, entries[0])

		// Missing optional fields default to zero values.
		assert.Equal(t, "Dune Messiah", entries[1].Title)
		assert.Zero(t, entries[1].OwnedCopies)
		assert.False(t, entries[1].IsOwned)
	})

	t.Run("returns empty slice when no items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"totalItems": 0, "items": []}`))
		}))
		defer srv.Close()

		client := overdrive.NewClientWithBaseURL(srv.URL)
		entries, err := client.Search(context.Background(), "telaviv", "nothing")

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("non-2xx status yields StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		client := overdrive.NewClientWithBaseURL(srv.URL)
		_, err := client.Search(context.Background(), "nosuchlib", "dune")

		require.Error(t, err)
		var statusErr *overdrive.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.Code)
	})

	t.Run("malformed body yields decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		}))
		defer srv.Close()

		client := overdrive.NewClientWithBaseURL(srv.URL)
		_, err := client.Search(context.Background(), "telaviv", "dune")

		assert.ErrorIs(t, err, overdrive.ErrDecode)
	})

	t.Run("connection failure surfaces as wrapped error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := overdrive.NewClientWithBaseURL(srv.URL)
		_, err := client.Search(context.Background(), "telaviv", "dune")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "telaviv")
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := overdrive.NewClientWithBaseURL(srv.URL)
		_, err := client.Search(ctx, "telaviv", "dune")

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
