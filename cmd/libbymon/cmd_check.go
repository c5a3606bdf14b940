package main

import (
	"context"
	"fmt"
	"time"

	"libbymon/internal/monitor"
	"libbymon/internal/watchlist"
)

type CheckCmd struct {
	Notify bool          `help:"Only print newly found books (for cron/automation)"`
	Delay  time.Duration `hidden:"" default:"1s" help:"Delay between catalogue calls"`
}

func (cmd *CheckCmd) Run(g *Globals) error {
	if g.Store.Count() == 0 {
		if !cmd.Notify {
			fmt.Fprintln(g.Out, "Watchlist is empty.")
		}
		return nil
	}

	m := monitor.New(g.Store, g.Client)
	m.Delay = cmd.Delay
	if g.Sleep != nil {
		m.Sleep = g.Sleep
	}

	results, err := m.Check(context.Background())
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if cmd.Notify {
		cmd.printNewFinds(g, results)
	} else {
		cmd.printReport(g, results)
	}
	return nil
}

// printNewFinds prints only this run's not_found -> found transitions and
// stays silent otherwise, so cron wrappers can alert on any output.
func (cmd *CheckCmd) printNewFinds(g *Globals, results []monitor.Result) {
	var finds []monitor.Result
	for _, r := range results {
		if r.NewlyFound() {
			finds = append(finds, r)
		}
	}
	if len(finds) == 0 {
		return
	}

	fmt.Fprintln(g.Out, "New on Libby:")
	fmt.Fprintln(g.Out)
	for _, r := range finds {
		title, author := r.Book.Title, r.Book.Author
		copies := 0
		avail := "No"
		if r.Entry != nil {
			title, author = r.Entry.Title, r.Entry.Author
			copies = r.Entry.OwnedCopies
			if r.Entry.IsAvailable {
				avail = "Yes"
			}
		}
		fmt.Fprintf(g.Out, "  %s - %s\n", title, author)
		fmt.Fprintf(g.Out, "    Library: %s | Copies: %d | Available: %s\n\n",
			g.Config.LibraryName(r.Book.Library), copies, avail)
	}
}

func (cmd *CheckCmd) printReport(g *Globals, results []monitor.Result) {
	newFinds := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(g.Out, "  ! %s: %v\n", r.Book.Title, r.Err)
			continue
		}
		if r.NewlyFound() {
			newFinds++
		}
	}

	fmt.Fprintf(g.Out, "Checked %d book(s).\n", len(results))
	if newFinds > 0 {
		fmt.Fprintf(g.Out, "%d new addition(s) found!\n", newFinds)
	}

	var found []watchlist.Book
	for _, b := range g.Store.List() {
		if b.Status == watchlist.StatusFound {
			found = append(found, b)
		}
	}
	if len(found) > 0 {
		fmt.Fprintf(g.Out, "\n%d book(s) already in catalogue:\n", len(found))
		for _, b := range found {
			fmt.Fprintf(g.Out, "  - %s\n", b.Title)
		}
		fmt.Fprintln(g.Out, "Consider removing them with 'unwatch'.")
	}
}
