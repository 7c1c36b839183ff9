// Package planview renders generated plans for the terminal.
package planview

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/metrics"
	"github.com/abhisek/swingplan/internal/planner"
	"github.com/abhisek/swingplan/internal/practice"
	"github.com/abhisek/swingplan/internal/ui/theme"
)

// DefaultWidth is used when the caller passes a non-positive width.
const DefaultWidth = 80

// Render formats plan as a sequence of sections: header, diagnosis, days,
// challenge and metrics.
func Render(plan *practice.GeneratedPlan, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	body := lipgloss.NewStyle().Width(width - 2)

	sections := []string{
		header(plan),
		diagnosisSection(plan, body),
	}
	for _, d := range plan.Days {
		sections = append(sections, daySection(d, body))
	}
	sections = append(sections,
		challengeSection(plan.SelectedChallenge, plan.DefaultChallenge, body),
		metricsSection(plan.PerformanceMetrics, width),
	)
	if plan.Goal != "" {
		sections = append(sections, theme.Hint.Render(plan.Goal))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func header(plan *practice.GeneratedPlan) string {
	title := theme.Title.Render("Practice plan: " + plan.Problem)
	category := "Uncategorized"
	if plan.Category != "" {
		category = string(plan.Category)
	}
	sub := theme.Subtitle.Render(fmt.Sprintf("%s · %d days", category, len(plan.Days)))
	if plan.ID != "" {
		sub += theme.Hint.Render("  " + plan.ID)
	}
	return title + "\n" + sub + "\n"
}

func diagnosisSection(plan *practice.GeneratedPlan, body lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Diagnosis") + "\n")
	b.WriteString(body.Render(plan.Diagnosis) + "\n")
	for _, c := range plan.RootCauses {
		b.WriteString(theme.Indent.Render("• "+c) + "\n")
	}
	return b.String()
}

func daySection(d planner.Day, body lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(d.Focus))
	b.WriteString(theme.Subtitle.Render("  " + d.DurationLabel))
	b.WriteString("\n")
	if len(d.Drills) == 0 {
		b.WriteString(theme.Indent.Render(theme.Hint.Render("Free practice on your weakest area.")) + "\n")
	}
	for i, pd := range d.Drills {
		line := fmt.Sprintf("%d. %s", i+1, pd.Drill.Title)
		b.WriteString(theme.Indent.Render(theme.Body.Render(line) +
			theme.Subtitle.Render(fmt.Sprintf("  %d × %d", pd.Sets, pd.Reps))) + "\n")
		if pd.Drill.ProTip != "" {
			b.WriteString(theme.Indent.Render(theme.Indent.Render(
				theme.Hint.Render(body.Width(body.GetWidth()-4).Render("Tip: "+pd.Drill.ProTip)))) + "\n")
		}
	}
	return b.String()
}

func challengeSection(c catalog.Challenge, isDefault bool, body lipgloss.Style) string {
	var b strings.Builder
	heading := "Challenge"
	if isDefault {
		heading += theme.Subtitle.Render(" (standard)")
	}
	b.WriteString(theme.Heading.Render(heading) + "\n")
	b.WriteString(theme.Body.Bold(true).Render(c.Title))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d attempts", c.EffectiveAttempts())) + "\n")
	if c.Description != "" {
		b.WriteString(body.Render(c.Description) + "\n")
	}
	for i, step := range c.Instructions {
		b.WriteString(theme.Indent.Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
	}
	return b.String()
}

func metricsSection(p metrics.Performance, width int) string {
	var b strings.Builder
	heading := "Performance"
	if p.IsPlaceholder {
		heading += theme.Subtitle.Render(" (typical values, no rounds recorded)")
	}
	b.WriteString(theme.Heading.Render(heading) + "\n")

	rows := []struct {
		label string
		value float64
	}{
		{"Driving", p.Driving},
		{"Iron play", p.IronPlay},
		{"Chipping", p.Chipping},
		{"Bunker", p.Bunker},
		{"Putting", p.Putting},
	}
	for _, r := range rows {
		m := Meter{Label: r.label, Value: int(math.Round(r.value)), LabelWidth: 9, Width: min(width, 60)}
		b.WriteString(m.View() + "\n")
	}
	return b.String()
}
