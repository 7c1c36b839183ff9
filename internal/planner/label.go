package planner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

// dayFocus names a day after the first focus tag of its lead drill, falling
// back to the category name.
func dayFocus(n int, drills []PlannedDrill, category taxonomy.Category) string {
	focus := string(category.Name)
	if len(drills) > 0 {
		for _, tag := range drills[0].Drill.Focus {
			if tag = strings.TrimSpace(tag); tag != "" {
				focus = cases.Title(language.English).String(tag)
				break
			}
		}
	}
	if focus == "" {
		focus = GeneralPractice
	}
	return fmt.Sprintf("Day %d: %s", n, focus)
}

// durationLabel sums the leading minute counts of the drills' duration
// labels ("10 minutes", "15-20 min").
func durationLabel(drills []PlannedDrill) string {
	total := 0
	for _, d := range drills {
		total += leadingMinutes(d.Drill.DurationLabel)
	}
	if total == 0 {
		return DefaultDuration
	}
	return fmt.Sprintf("%d minutes", total)
}

func leadingMinutes(label string) int {
	label = strings.TrimSpace(label)
	end := strings.IndexFunc(label, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		end = len(label)
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return n
}
