package planview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/swingplan/internal/ui/theme"
)

// Meter displays a 0–100 score as a horizontal bar.
type Meter struct {
	Label      string
	Value      int
	LabelWidth int
	Width      int
}

// View renders the meter.
func (m Meter) View() string {
	label := m.Label
	if pad := m.LabelWidth - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	result := theme.Body.Render(label) + "  "

	barWidth := m.Width - lipgloss.Width(result) - 5 // " 100"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * m.Value / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.MeterFilled.Render(strings.Repeat(" ", filled))
	result += theme.MeterEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += band(m.Value).Render(fmt.Sprintf(" %4d", m.Value))
	return result
}

// band picks the value style: strong from 70, fair from 45.
func band(v int) lipgloss.Style {
	switch {
	case v >= 70:
		return theme.Good
	case v >= 45:
		return theme.Warn
	default:
		return theme.Bad
	}
}
