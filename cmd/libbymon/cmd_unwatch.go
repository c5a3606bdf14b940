package main

import "fmt"

type UnwatchCmd struct {
	Title string `arg:"" help:"Book title"`
}

func (cmd *UnwatchCmd) Run(g *Globals) error {
	removed, err := g.Store.Remove(cmd.Title)
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", cmd.Title, err)
	}

	if !removed {
		fmt.Fprintf(g.Out, "Not watching: %s\n", cmd.Title)
		return nil
	}

	if err := g.Store.Save(); err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}

	fmt.Fprintf(g.Out, "Removed: %s\n", cmd.Title)
	return nil
}
