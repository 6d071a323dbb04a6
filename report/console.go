// SPDX-License-Identifier: EPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/gensound/evolve"
)

// Console prints one line per generation. Colors are only used when w is a
// terminal that supports them.
type Console struct {
	w io.Writer

	label lipgloss.Style
	value lipgloss.Style
	best  lipgloss.Style
	gen   lipgloss.Style
}

func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)

	return &Console{
		w:     w,
		label: r.NewStyle().Foreground(lipgloss.Color("241")),
		value: r.NewStyle(),
		best:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		gen:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
}

func (c *Console) field(name, value string, style lipgloss.Style) string {
	return c.label.Render(name) + " " + style.Render(value)
}

// Line renders the progress line of g without a trailing newline.
func (c *Console) Line(g evolve.Generation) string {
	s := g.Summary

	parts := []string{
		c.field("gen", fmt.Sprintf("%d", s.Generation), c.gen),
		c.field("best", fmt.Sprintf("%d", s.Best), c.best),
		c.field("worst", fmt.Sprintf("%d", s.Worst), c.value),
		c.field("mean", fmt.Sprintf("%.1f", s.Mean), c.value),
		c.field("sd", fmt.Sprintf("%.1f", s.StdDev), c.value),
		c.field("cv", fmt.Sprintf("%.2f%%", s.CV), c.value),
		c.field("p", fmt.Sprintf("%.4f", g.Probability), c.value),
		c.field("elites", fmt.Sprintf("%d", g.Elites), c.value),
		c.field("elapsed", g.Elapsed.Round(time.Millisecond).String(), c.value),
	}

	return strings.Join(parts, "  ")
}

func (c *Console) Report(g evolve.Generation) {
	fmt.Fprintln(c.w, c.Line(g))
}
