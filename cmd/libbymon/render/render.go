package render

import "time"

type Renderer interface {
	RenderWatchlist(view WatchlistView) string
}

type WatchlistView struct {
	Profile string
	Items   []WatchlistItem
}

type WatchlistItem struct {
	Title       string
	Author      string
	Library     string
	Found       bool
	FoundOn     time.Time
	LastChecked time.Time
}

func (v WatchlistView) IsEmpty() bool {
	return len(v.Items) == 0
}
