// Package report renders the result of an average distance run.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-avgdist/pkg/algorithms"
	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
	"github.com/dd0wney/cluso-avgdist/pkg/graph"
)

// Line returns the single result line printed on stdout.
func Line(avg float64) string {
	return fmt.Sprintf("Average distance between pairs of vertices: %.2f", avg)
}

// Summary collects everything shown in the run summary box.
type Summary struct {
	RunID  string
	Input  string
	Parsed *edgelist.Result
	Graph  graph.Statistics
	Result algorithms.Result
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)
)

// Render formats s as a bordered table for a terminal.
func (s Summary) Render() string {
	rows := [][2]string{
		{"input", s.Input},
		{"run id", s.RunID},
	}
	if s.Parsed != nil {
		rows = append(rows,
			[2]string{"lines", fmt.Sprintf("%d", s.Parsed.Lines)},
			[2]string{"skipped", fmt.Sprintf("%d", s.Parsed.Skipped)},
			[2]string{"digest", shortDigest(s.Parsed.Digest)},
		)
	}
	rows = append(rows,
		[2]string{"vertices", fmt.Sprintf("%d", s.Graph.VertexCount)},
		[2]string{"arcs", fmt.Sprintf("%d", s.Graph.EdgeCount)},
		[2]string{"self loops", fmt.Sprintf("%d", s.Graph.SelfLoops)},
		[2]string{"sinks", fmt.Sprintf("%d", s.Graph.SinkCount)},
		[2]string{"pairs", fmt.Sprintf("%d", s.Result.Pairs)},
		[2]string{"total distance", fmt.Sprintf("%d", s.Result.TotalDistance)},
		[2]string{"max distance", fmt.Sprintf("%d", s.Result.MaxDistance)},
		[2]string{"average", fmt.Sprintf("%.4f", s.Result.Average)},
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("avgdist summary"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(row[0]),
			valueStyle.Render(row[1]),
		))
	}
	return boxStyle.Render(b.String())
}

func shortDigest(d string) string {
	if len(d) > 16 {
		return d[:16]
	}
	return d
}
