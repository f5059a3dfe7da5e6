package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lanrat/sortbench"
)

// chartWidth is the length of the longest bar of a series
const chartWidth = 40

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorBorder  = lipgloss.Color("#16858E")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")

	// one bar color per series, in Results.Series order
	seriesColors = []lipgloss.Color{"#2CD7C7", "#F4D03F", "#E67E22"}
)

var styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Number  lipgloss.Style
	Muted   lipgloss.Style
	Caption lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
	Number:  lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Caption: lipgloss.NewStyle().Italic(true),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
}

// renderTable draws one row per result. ranked adds a position column.
func renderTable(results sortbench.Results, ranked bool) string {
	headers := []string{"Algoritmo", "Tempo (ms)", "Comparações", "Trocas"}
	if ranked {
		headers = append([]string{"#"}, headers...)
	}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		row := []string{
			r.Name,
			strconv.FormatFloat(r.ElapsedMs, 'f', 3, 64),
			strconv.FormatUint(r.Comparisons, 10),
			strconv.FormatUint(r.Swaps, 10),
		}
		if ranked {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}
	nameCol := 0
	if ranked {
		nameCol = 1
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col == nameCol:
				return styles.Cell
			default:
				return styles.Number
			}
		})
	return t.String()
}

// renderChart draws every series as horizontal bars scaled to its own maximum
func renderChart(series []sortbench.Series, width int) string {
	labelWidth := 0
	for _, s := range series {
		for _, p := range s.Points {
			labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		}
	}
	label := lipgloss.NewStyle().Width(labelWidth + 1)

	var b strings.Builder
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		bar := lipgloss.NewStyle().Foreground(seriesColors[i%len(seriesColors)])
		top := 0.0
		for _, p := range s.Points {
			top = math.Max(top, p.Value)
		}

		b.WriteString(styles.Title.Render(s.Name))
		b.WriteByte('\n')
		for _, p := range s.Points {
			b.WriteString(label.Render(p.Label))
			b.WriteString(bar.Render(strings.Repeat("█", barLength(p.Value, top, width))))
			b.WriteByte(' ')
			b.WriteString(formatValue(s.Name, p.Value))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// barLength scales v against top, drawing at least one cell for any non-zero value
func barLength(v, top float64, width int) int {
	if v <= 0 || top <= 0 {
		return 0
	}
	return max(1, int(math.Round(v/top*float64(width))))
}

func formatValue(series string, v float64) string {
	if series == sortbench.SeriesTime {
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// renderSorted prints one value per line
func renderSorted[E any](values []E) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintln(&b, v)
	}
	return b.String()
}

// renderAlgorithms draws the complexity table of every algorithm
func renderAlgorithms() string {
	rows := make([][]string, 0, len(sortbench.Algorithms))
	for _, a := range sortbench.Algorithms {
		rows = append(rows, []string{a.String(), a.Complexity()})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Algoritmo", "Complexidade").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		String()
}
