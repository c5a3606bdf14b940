package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	foundMarker   = "✓"
	pendingMarker = "•"
)

type LipglossRenderer struct {
	width int
	now   func() time.Time
	r     *lipgloss.Renderer

	titleStyle      lipgloss.Style
	foundStyle      lipgloss.Style
	metaStyle       lipgloss.Style
	timeStyle       lipgloss.Style
	recentTimeStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:           width,
		now:             time.Now,
		r:               r,
		titleStyle:      r.NewStyle().Bold(true),
		foundStyle:      r.NewStyle().Foreground(lipgloss.Color("10")),
		metaStyle:       r.NewStyle().Faint(true),
		timeStyle:       r.NewStyle().Faint(true),
		recentTimeStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithClock(now func() time.Time) *LipglossRenderer {
	r.now = now
	return r
}

func (r *LipglossRenderer) RenderWatchlist(view WatchlistView) string {
	if view.IsEmpty() {
		return "Watchlist is empty.\n"
	}

	now := r.now()
	var sb strings.Builder
	sb.WriteString(header(view))
	sb.WriteString("\n\n")
	for i, item := range view.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.renderItem(item, now))
	}
	return sb.String()
}

func header(view WatchlistView) string {
	noun := "books"
	if len(view.Items) == 1 {
		noun = "book"
	}
	if view.Profile != "" {
		return fmt.Sprintf("Watchlist [%s] (%d %s):", view.Profile, len(view.Items), noun)
	}
	return fmt.Sprintf("Watchlist (%d %s):", len(view.Items), noun)
}

func (r *LipglossRenderer) renderItem(item WatchlistItem, now time.Time) string {
	marker := r.metaStyle.Render(pendingMarker)
	if item.Found {
		marker = r.foundStyle.Render(foundMarker)
	}

	timeStyle := r.timeStyle
	if !item.LastChecked.IsZero() && now.Sub(item.LastChecked) < time.Hour {
		timeStyle = r.recentTimeStyle
	}

	title := marker + " " + r.titleStyle.Render(item.Title)
	timeEl := timeStyle.Render(r.formatTime(item.LastChecked, now))

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(timeEl))

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(timeEl)
	sb.WriteString("\n")
	if item.Author != "" {
		sb.WriteString(r.metaStyle.Render("  by " + item.Author))
		sb.WriteString("\n")
	}
	sb.WriteString(r.metaStyle.Render("  " + item.Library + " · " + statusLabel(item)))
	sb.WriteString("\n")
	return sb.String()
}

func statusLabel(item WatchlistItem) string {
	if !item.Found {
		return "not found yet"
	}
	if item.FoundOn.IsZero() {
		return "found"
	}
	return "found " + item.FoundOn.Format("Jan 2, 2006")
}

func (r *LipglossRenderer) formatTime(t, now time.Time) string {
	if t.IsZero() {
		return "never checked"
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	days := int(today.Sub(target).Hours() / 24)

	timeStr := t.Format("15:04")

	switch {
	case days == 0:
		return timeStr
	case days == 1:
		return "Yesterday " + timeStr
	case days < 7:
		return t.Format("Mon") + " " + timeStr
	case t.Year() == now.Year():
		return t.Format("Jan 2") + " " + timeStr
	default:
		return t.Format("Jan 2 '06") + " " + timeStr
	}
}
