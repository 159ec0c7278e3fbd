package main

import (
	"fmt"
	"strconv"

	"github.com/Sword-zgz/deeplearning4j/internal/graph"
	"github.com/Sword-zgz/deeplearning4j/random"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderResults(results []graph.Result) string {
	t := newTable("node", "op", "fill", "size", "mean", "stddev", "min", "max", "checksum")
	for _, r := range results {
		t.Row(
			r.Node,
			r.Op,
			strconv.Itoa(r.Fill),
			strconv.Itoa(r.Len()),
			fmt.Sprintf("%.5f", r.Summary.Mean()),
			fmt.Sprintf("%.5f", r.Summary.StdDev()),
			fmt.Sprintf("%.5g", r.Summary.Min),
			fmt.Sprintf("%.5g", r.Summary.Max),
			fmt.Sprintf("%016x", r.Checksum),
		)
	}
	return t.String()
}

func renderSamples(g *random.Generator, indices []int64) string {
	t := newTable("index", "relative int", "relative long", "unit float")
	for _, idx := range indices {
		t.Row(
			strconv.FormatInt(idx, 10),
			formatUint(uint64(g.RelativeInt(idx))),
			formatUint(g.RelativeLong(idx)),
			fmt.Sprintf("%.9f", random.RelativeFloat(g, idx, 0.0, 1.0)),
		)
	}
	return t.String()
}
