package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/killallgit/podcast-browser/internal/navigation"
)

func (m model) View() string {
	if current := m.nav.Current(); current.Screen == navigation.ScreenDetails && current.Podcast != nil {
		return m.detailsView(current)
	}
	return m.listView()
}

func (m model) listView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Best Podcasts"))
	b.WriteString("\n")

	switch {
	case m.status != "" && m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	case m.source.Loading():
		b.WriteString(statusStyle.Render("Loading..."))
	case m.source.LastError() != nil:
		b.WriteString(errorStyle.Render("Showing last known list: " + m.source.LastError().Message))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	if m.filtering || m.query != "" {
		cursor := ""
		if m.filtering {
			cursor = "_"
		}
		b.WriteString(filterStyle.Render(fmt.Sprintf("/%s%s  (%d of %d)", m.query, cursor, len(m.visible), len(m.podcasts))))
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		if len(m.podcasts) == 0 {
			b.WriteString(mutedStyle.Render("No podcasts yet."))
		} else {
			b.WriteString(mutedStyle.Render("Nothing matches the filter."))
		}
		b.WriteString("\n")
	}

	end := min(len(m.visible), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		p := m.visible[i]
		line := fmt.Sprintf("%2d. %s", i+1, p.Title)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		if p.Publisher != "" {
			b.WriteString(" " + publisherStyle.Render("· "+p.Publisher))
		}
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("↑/↓ move · enter open · / filter · r refresh · q quit"))
	return b.String()
}

func (m model) detailsView(current navigation.Route) string {
	p := current.Podcast

	var b strings.Builder
	title := detailsTitle.Render(p.Title)
	if m.favourite {
		title += " " + favouriteStyle.Render("★")
	} else {
		title += " " + mutedStyle.Render("☆")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(publisherStyle.Render(p.Publisher))
	b.WriteString("\n")
	if p.Image != "" {
		b.WriteString(mutedStyle.Render(p.Image))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := m.descWidth
	if m.width > 0 && m.width < width {
		width = m.width
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(PlainText(p.Description)))
	b.WriteString("\n")

	b.WriteString(footerStyle.Render("esc back · f favourite · q quit"))
	return b.String()
}
