package overdrive

// CatalogEntry is one item from a library's search results. Entries are
// matched against the watchlist and discarded, never persisted.
type CatalogEntry struct {
	Title           string
	Author          string
	OwnedCopies     int
	IsOwned         bool
	IsAvailable     bool
	AvailableCopies int
}

type searchResponse struct {
	TotalItems int       `json:"totalItems"`
	Items      []apiItem `json:"items"`
}

type apiItem struct {
	Title            string `json:"title"`
	FirstCreatorName string `json:"firstCreatorName"`
	OwnedCopies      int    `json:"ownedCopies"`
	IsOwned          bool   `json:"isOwned"`
	IsAvailable      bool   `json:"isAvailable"`
	AvailableCopies  int    `json:"availableCopies"`
}

func convertItem(it apiItem) CatalogEntry {
	return CatalogEntry{
		Title:           it.Title,
		Author:          it.FirstCreatorName,
		OwnedCopies:     it.OwnedCopies,
		IsOwned:         it.IsOwned,
		IsAvailable:     it.IsAvailable,
		AvailableCopies: it.AvailableCopies,
	}
}
