package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"

	"libbymon/internal/config"
	"libbymon/internal/ui"
	"libbymon/internal/watchlist"
)

type WatchCmd struct {
	Title   string `arg:"" optional:"" help:"Book title (omit for interactive mode)"`
	Author  string `short:"a" help:"Book author"`
	Library string `short:"l" help:"Library code (default: from config)"`
}

func (cmd *WatchCmd) Run(g *Globals) error {
	title := strings.TrimSpace(cmd.Title)
	author := cmd.Author
	library := cmd.Library
	interactive := false

	if title == "" {
		var err error
		title, author, library, err = runWatchForm(g.Config)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		interactive = true
	}

	if library == "" {
		library = g.Config.DefaultLibrary
	}

	b := watchlist.NewBook(title, author, library)
	if err := g.Store.Add(b); err != nil {
		if errors.Is(err, watchlist.ErrDuplicate) {
			fmt.Fprintf(g.Out, "Already watching: %s\n", b.Title)
			return nil
		}
		return fmt.Errorf("failed to add %q: %w", b.Title, err)
	}

	if err := g.Store.Save(); err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}

	if interactive {
		fmt.Fprint(g.Out, ui.RenderSummary("Watching "+b.Title, []ui.Field{
			{Label: "Author", Value: b.Author},
			{Label: "Library", Value: g.Config.LibraryName(b.Library)},
		}))
		return nil
	}

	fmt.Fprintf(g.Out, "Added to watchlist: %s\n", b.Title)
	if b.Author != "" {
		fmt.Fprintf(g.Out, "  Author: %s\n", b.Author)
	}
	fmt.Fprintf(g.Out, "  Library: %s\n", g.Config.LibraryName(b.Library))
	return nil
}

func validateWatchTitle(title string) error {
	if err := watchlist.ValidateTitle(title); err != nil {
		return errors.New("Title cannot be empty")
	}
	return nil
}

func runWatchForm(cfg config.Config) (title, author, library string, err error) {
	library = cfg.DefaultLibrary

	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Value(&title).
			Validate(validateWatchTitle),
		huh.NewInput().
			Title("Author").
			Description("Optional, tightens matching").
			Value(&author),
	}

	if len(cfg.Libraries) > 1 {
		codes := make([]string, 0, len(cfg.Libraries))
		for code := range cfg.Libraries {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		options := make([]huh.Option[string], 0, len(codes))
		for _, code := range codes {
			options = append(options, huh.NewOption(cfg.LibraryName(code), code))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Library").
			Options(options...).
			Value(&library))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(ui.WizardTheme())
	if err := form.Run(); err != nil {
		return "", "", "", err
	}

	return strings.TrimSpace(title), strings.TrimSpace(author), library, nil
}
