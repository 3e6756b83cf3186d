package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	styleCell = lipgloss.NewStyle().
			Padding(0, 1)

	styleBest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Padding(0, 1)

	styleBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var headers = []string{"build", "damage", "dps", "kills", "shots"}

func rows(results []Result) [][]string {
	p := message.NewPrinter(language.English)
	out := make([][]string, 0, len(results))
	for _, r := range results {
		out = append(out, []string{
			r.Build,
			p.Sprintf("%d", int64(math.Round(r.Damage))),
			p.Sprintf("%.1f", r.DPS),
			p.Sprintf("%d", r.Kills),
			p.Sprintf("%d", r.Shots),
		})
	}
	return out
}

// Render formats results as a table. Plain output is tab separated for
// scripts.
func Render(results []Result, plain bool) string {
	if plain {
		var sb strings.Builder
		sb.WriteString(strings.Join(headers, "\t") + "\n")
		for _, r := range results {
			fmt.Fprintf(&sb, "%s\t%.0f\t%.1f\t%d\t%d\n", r.Build, r.Damage, r.DPS, r.Kills, r.Shots)
		}
		return sb.String()
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows(results)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row == 0:
				return styleBest
			default:
				return styleCell
			}
		})
	return t.Render() + "\n"
}
