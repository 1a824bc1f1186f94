package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ramanasai/habitcal/internal/calendar"
	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/render"
)

const (
	cellGlyph  = "■"
	labelWidth = 4
)

var weekdayLabels = map[int]string{1: "Mon", 3: "Wed", 5: "Fri"}

// Heatmap draws g as a block of colored glyphs, one column per week, with
// month names above and a legend below.
func Heatmap(g calendar.Grid, st Styles) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(monthHeader(g))
	b.WriteByte('\n')

	days := 0
	if len(g.Weeks) > 0 {
		days = len(g.Weeks[0])
	}
	for d := 0; d < days; d++ {
		b.WriteString(st.Label.Render(fmt.Sprintf("%-*s", labelWidth, weekdayLabels[d])))
		for w := range g.Weeks {
			cell := g.Weeks[w][d]
			if cell.Empty {
				b.WriteString("  ")
				continue
			}
			b.WriteString(st.Cells[render.PaletteIndex(cell.Count, g.Max)].Render(cellGlyph))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(st.Hint.Render("Less "))
	for _, s := range st.Cells {
		b.WriteString(s.Render(cellGlyph))
		b.WriteByte(' ')
	}
	b.WriteString(st.Hint.Render("More"))
	b.WriteByte('\n')
	return b.String()
}

// monthHeader places a month abbreviation over the first week that
// starts in that month, skipping labels that would collide.
func monthHeader(g calendar.Grid) string {
	line := []byte(strings.Repeat(" ", len(g.Weeks)*2))
	next := 0
	var prev time.Month
	for w, week := range g.Weeks {
		if len(week) == 0 {
			continue
		}
		m := week[0].Date.Month()
		if m == prev {
			continue
		}
		prev = m
		col := w * 2
		label := m.String()[:3]
		if col < next || col+len(label) > len(line) {
			continue
		}
		copy(line[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}

// Summary reports the current streak and each habit's completion rate over
// the last days days.
func Summary(log habit.Log, today time.Time, habits []string, days int, st Styles) string {
	var b strings.Builder
	streak := calendar.Streak(log, today)
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	b.WriteString(st.Title.Render("Streak"))
	b.WriteString(" ")
	b.WriteString(st.Value.Render(fmt.Sprintf("%d %s", streak, unit)))
	b.WriteByte('\n')

	width := 0
	for _, h := range habits {
		width = max(width, len(h))
	}
	for _, h := range habits {
		rate := calendar.Rate(log, today, h, days)
		filled := int(rate*10 + 0.5)
		bar := st.Done.Render(strings.Repeat("█", filled)) + st.Missed.Render(strings.Repeat("░", 10-filled))
		fmt.Fprintf(&b, "%s %s %s\n",
			st.Label.Render(fmt.Sprintf("%-*s", width, h)),
			bar,
			st.Value.Render(fmt.Sprintf("%3.0f%%", rate*100)),
		)
	}
	b.WriteString(st.Hint.Render(fmt.Sprintf("last %d days", days)))
	b.WriteByte('\n')
	return b.String()
}
