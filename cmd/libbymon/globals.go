package main

import (
	"io"
	"time"

	"libbymon/cmd/libbymon/render"
	"libbymon/internal/config"
	"libbymon/internal/monitor"
	"libbymon/internal/watchlist"
)

type Globals struct {
	Store   watchlist.Store
	Client  monitor.Searcher
	Config  config.Config
	Profile string
	Out     io.Writer
	Render  render.Renderer

	// Sleep overrides the inter-call throttle during check; nil means
	// time.Sleep.
	Sleep func(time.Duration)
}
