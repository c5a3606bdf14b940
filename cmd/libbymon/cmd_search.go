package main

import (
	"context"
	"fmt"
)

type SearchCmd struct {
	LibraryCode string `arg:"" name:"library-code" help:"Library code (e.g. telaviv, nypl, lapl)"`
	Query       string `arg:"" help:"Search query (title, author, etc.)"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Out, "Searching %q in %s...\n\n", cmd.Query, g.Config.LibraryName(cmd.LibraryCode))

	entries, err := g.Client.Search(context.Background(), cmd.LibraryCode, cmd.Query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(g.Out, "No results found.")
		return nil
	}

	for i, e := range entries {
		status := "Not owned"
		if e.IsOwned {
			status = "In catalogue"
		}
		avail := "No"
		if e.IsAvailable {
			avail = fmt.Sprintf("Yes (%d)", e.AvailableCopies)
		}

		author := e.Author
		if author == "" {
			author = "Unknown"
		}

		fmt.Fprintf(g.Out, "  %d. %s - %s\n", i+1, e.Title, author)
		fmt.Fprintf(g.Out, "     %s | Copies: %d | Available: %s\n\n", status, e.OwnedCopies, avail)
	}

	fmt.Fprintf(g.Out, "%d result(s)\n", len(entries))
	return nil
}
