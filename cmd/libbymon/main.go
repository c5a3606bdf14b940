package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"libbymon/cmd/libbymon/render"
	"libbymon/internal/config"
	"libbymon/internal/overdrive"
	"libbymon/internal/watchlist"
)

type CLI struct {
	Search  SearchCmd  `cmd:"" aliases:"s" help:"Search a library catalogue"`
	Watch   WatchCmd   `cmd:"" aliases:"w" help:"Add a book to the watchlist"`
	Unwatch UnwatchCmd `cmd:"" help:"Remove a book from the watchlist"`
	List    ListCmd    `cmd:"" aliases:"ls" help:"Show the watchlist"`
	Check   CheckCmd   `cmd:"" help:"Check the watchlist against the catalogue"`

	DataDir string `name:"data-dir" help:"Data directory (default: ~/.libby-book-monitor, or $LIBBY_BOOK_MONITOR_DATA)"`
	Profile string `short:"p" help:"Profile name for a separate watchlist"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	dataDir := config.DataDir(c.DataDir)

	cfg, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := watchlist.NewYAMLStore(watchlist.PathFor(dataDir, c.Profile))
	if err != nil {
		return fmt.Errorf("failed to open watchlist: %w", err)
	}
	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load watchlist: %w", err)
	}

	globals := &Globals{
		Store:   store,
		Client:  overdrive.NewClient(),
		Config:  cfg,
		Profile: c.Profile,
		Out:     os.Stdout,
		Render:  render.NewLipglossRendererAuto(os.Stdout),
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	_ = godotenv.Load()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("libbymon"),
		kong.Description("Track book availability on Libby/OverDrive libraries"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
