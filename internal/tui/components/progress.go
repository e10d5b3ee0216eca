package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ProgressBar displays questionnaire progress with an optional
// remaining-time label.
type ProgressBar struct {
	Percent int
	Width   int
	Label   string
}

// NewProgressBar creates a bar at the given percent.
func NewProgressBar(percent int) *ProgressBar {
	return &ProgressBar{Percent: percent, Width: 40}
}

// WithLabel sets the trailing label.
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width.
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	if width > 0 {
		p.Width = width
	}
	return p
}

// Render returns the styled bar.
func (p *ProgressBar) Render() string {
	percent := p.Percent
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := p.Width * percent / 100
	empty := p.Width - filled

	var b strings.Builder
	b.WriteString("[")
	if filled > 0 {
		b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		b.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	b.WriteString("] ")
	b.WriteString(statsStyle.Render(fmt.Sprintf("%d%%", percent)))
	if p.Label != "" {
		b.WriteString(statsStyle.Render(" • " + p.Label))
	}
	return b.String()
}
