package main

import (
	"fmt"
	"time"

	"libbymon/cmd/libbymon/render"
	"libbymon/internal/watchlist"
)

type ListCmd struct {
	Titles bool `short:"t" help:"Output only titles (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	books := g.Store.List()

	if cmd.Titles {
		for _, b := range books {
			fmt.Fprintln(g.Out, b.Title)
		}
		return nil
	}

	view := render.WatchlistView{Profile: g.Profile}
	for _, b := range books {
		view.Items = append(view.Items, render.WatchlistItem{
			Title:       b.Title,
			Author:      b.Author,
			Library:     g.Config.LibraryName(b.Library),
			Found:       b.Status == watchlist.StatusFound,
			FoundOn:     deref(b.FoundOn),
			LastChecked: deref(b.LastChecked),
		})
	}

	fmt.Fprint(g.Out, g.Render.RenderWatchlist(view))
	return nil
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
