package catalog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the outer width of one card, borders included.
const CardWidth = 38

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2e7bff")).
			Padding(0, 1).
			Width(CardWidth - 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffd166"))

	cardDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9bffb2"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2e7bff")).
			MarginTop(1)
)

// RenderCard draws one record as a bordered card.
func RenderCard(r Record) string {
	var lines []string

	title := cardTitleStyle.Render(r.Title)
	if r.Featured {
		title += " " + tagStyle.Render("★")
	}
	lines = append(lines, title)

	if r.Description != "" {
		lines = append(lines, cardDescStyle.Render(r.Description))
	}

	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = "#" + t
		}
		lines = append(lines, tagStyle.Render(strings.Join(tags, " ")))
	}

	lines = append(lines, "")
	if id, ok := r.LocalGame(); ok {
		lines = append(lines, linkStyle.Render("▶ ringtrap play "+id))
	} else {
		lines = append(lines, linkStyle.Render("▶ "+r.PlayURL))
	}
	if r.SourceURL != "" {
		lines = append(lines, linkStyle.Render("⌂ "+r.SourceURL))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderCards lays records out in a grid as wide as width allows.
func RenderCards(records []Record, width int) string {
	if len(records) == 0 {
		return ""
	}

	perRow := max(1, width/(CardWidth+1))
	var rows []string
	for start := 0; start < len(records); start += perRow {
		end := min(start+perRow, len(records))

		cards := make([]string, 0, 2*(end-start))
		for i, r := range records[start:end] {
			if i > 0 {
				cards = append(cards, " ")
			}
			cards = append(cards, RenderCard(r))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderSection draws a heading followed by a card grid.
// Empty sections render nothing.
func RenderSection(heading string, records []Record, width int) string {
	if len(records) == 0 {
		return ""
	}
	return sectionStyle.Render(heading) + "\n" + RenderCards(records, width)
}

// RenderCatalog draws the featured section followed by one section per
// category.
func RenderCatalog(c *Catalog, width int) string {
	var sections []string
	if s := RenderSection("Featured", c.Featured(), width); s != "" {
		sections = append(sections, s)
	}
	for _, name := range c.Categories() {
		if s := RenderSection(heading(name), c.Category(name), width); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

// heading capitalizes a category name for display.
func heading(name string) string {
	if name == "" {
		return "Other"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
