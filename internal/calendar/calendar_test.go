package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/ramanasai/habitcal/internal/habit"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGridStartIsSunday(t *testing.T) {
	start := day(2024, 3, 10)
	for i := 0; i < 7; i++ {
		today := start.AddDate(0, 0, i)
		got := GridStart(today, 1)
		if got.Weekday() != time.Sunday {
			t.Fatalf("%s: expected Sunday start, got %s", today.Format("Mon 2006-01-02"), got.Weekday())
		}
		if !got.Equal(start) {
			t.Fatalf("%s: expected start %s, got %s", today.Format("Mon"), start.Format(habit.DateLayout), got.Format(habit.DateLayout))
		}
	}
}

func TestBuildGridLayout(t *testing.T) {
	today := day(2024, 3, 15) // Friday
	g := BuildGrid(habit.Log{}, today, DefaultWeeks, DefaultDaysPerWeek)

	if len(g.Weeks) != 53 {
		t.Fatalf("expected 53 weeks, got %d", len(g.Weeks))
	}
	if want := day(2023, 3, 12); !g.Start.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, g.Start)
	}
	last := g.Weeks[52]
	if !last[5].Date.Equal(today) || last[5].Empty {
		t.Fatalf("expected today in last column at Friday row, got %+v", last[5])
	}
	if !last[6].Empty {
		t.Fatalf("expected Saturday after today to be empty, got %+v", last[6])
	}
	if g.Max != 1 {
		t.Fatalf("expected max floored at 1, got %d", g.Max)
	}
}

func TestBuildGridIncludesTodayOnSunday(t *testing.T) {
	today := day(2024, 3, 17) // Sunday
	g := BuildGrid(habit.Log{"2024-03-17": {"water": true}}, today, DefaultWeeks, DefaultDaysPerWeek)
	first := g.Weeks[52][0]
	if !first.Date.Equal(today) || first.Count != 1 {
		t.Fatalf("expected today as first cell of last week, got %+v", first)
	}
	for d := 1; d < 7; d++ {
		if !g.Weeks[52][d].Empty {
			t.Fatalf("expected day %d of last week empty, got %+v", d, g.Weeks[52][d])
		}
	}
}

func TestBuildGridDateProperties(t *testing.T) {
	for offset := 0; offset < 14; offset++ {
		today := day(2025, 12, 20).AddDate(0, 0, offset)
		g := BuildGrid(habit.Log{}, today, DefaultWeeks, DefaultDaysPerWeek)

		seen := map[string]bool{}
		var prev time.Time
		for w, col := range g.Weeks {
			for d, c := range col {
				if !prev.IsZero() && !c.Date.Equal(prev.AddDate(0, 0, 1)) {
					t.Fatalf("today=%s: non-consecutive date at [%d][%d]", habit.Key(today), w, d)
				}
				if w > 0 && !c.Date.Equal(g.Weeks[w-1][d].Date.AddDate(0, 0, 7)) {
					t.Fatalf("today=%s: week step is not 7 days at [%d][%d]", habit.Key(today), w, d)
				}
				prev = c.Date
				if c.Date.After(today) != c.Empty {
					t.Fatalf("today=%s: cell %s empty=%v", habit.Key(today), habit.Key(c.Date), c.Empty)
				}
				key := habit.Key(c.Date)
				if seen[key] {
					t.Fatalf("duplicate date %s", key)
				}
				seen[key] = true
			}
		}
		if !seen[habit.Key(today)] {
			t.Fatalf("today=%s missing from grid", habit.Key(today))
		}
	}
}

func TestBuildGridCountsAndMax(t *testing.T) {
	log := habit.Log{
		"2024-03-15": {"water": true, "read": true, "exercise": false},
		"2024-03-14": {"water": true},
		"2024-03-20": {"water": true, "read": true, "journal": true}, // future
	}
	g := BuildGrid(log, day(2024, 3, 15), DefaultWeeks, DefaultDaysPerWeek)
	if g.Weeks[52][5].Count != 2 {
		t.Fatalf("expected count 2 for today, got %+v", g.Weeks[52][5])
	}
	if g.Weeks[52][4].Count != 1 {
		t.Fatalf("expected count 1 for yesterday, got %+v", g.Weeks[52][4])
	}
	if g.Max != 2 {
		t.Fatalf("expected future records ignored for max, got %d", g.Max)
	}
	if n := len(g.Cells()); n != 53*7 {
		t.Fatalf("expected %d flattened cells, got %d", 53*7, n)
	}
}

func TestBuildRows(t *testing.T) {
	log := habit.Log{
		"2024-03-15": {"water": true, "unknown": true},
		"2024-02-24": {"read": true},
		"2024-02-23": {"read": true}, // outside the window
	}
	habits := []string{"water", "read"}
	r := BuildRows(log, day(2024, 3, 15), habits, DefaultRowDays)

	if len(r.Dates) != 21 {
		t.Fatalf("expected 21 dates, got %d", len(r.Dates))
	}
	if !r.Dates[0].Equal(day(2024, 2, 24)) || !r.Dates[20].Equal(day(2024, 3, 15)) {
		t.Fatalf("unexpected window %s..%s", habit.Key(r.Dates[0]), habit.Key(r.Dates[20]))
	}
	if len(r.Done) != 2 {
		t.Fatalf("expected one row per habit, got %d", len(r.Done))
	}
	if !r.Done[0][20] || r.Done[0][0] {
		t.Fatalf("unexpected water row: %v", r.Done[0])
	}
	if !r.Done[1][0] {
		t.Fatalf("expected read done on first day, got %v", r.Done[1])
	}
	habits[0] = "mutated"
	if r.Habits[0] != "water" {
		t.Fatal("rows share the caller's habit slice")
	}
}

func TestBuildRowsMatchesLogKeysIgnoringCase(t *testing.T) {
	log := habit.Log{"2024-03-15": {"Water": true, "READ": true}}
	r := BuildRows(log, day(2024, 3, 15), []string{"water", "read"}, 3)
	if !r.Done[0][2] || !r.Done[1][2] {
		t.Fatalf("expected mixed case keys to count, got %v", r.Done)
	}
	if got := Rate(log, day(2024, 3, 15), "water", 1); got != 1 {
		t.Fatalf("expected rate 1, got %v", got)
	}
}

func TestStreak(t *testing.T) {
	log := habit.Log{
		"2024-03-12": {"water": true},
		"2024-03-13": {"water": true},
		"2024-03-14": {"water": true, "read": true},
		"2024-03-11": {"water": false},
	}
	if got := Streak(log, day(2024, 3, 15)); got != 3 {
		t.Fatalf("expected streak 3 with today pending, got %d", got)
	}
	log["2024-03-15"] = habit.DayRecord{"read": true}
	if got := Streak(log, day(2024, 3, 15)); got != 4 {
		t.Fatalf("expected streak 4, got %d", got)
	}
	if got := Streak(habit.Log{}, day(2024, 3, 15)); got != 0 {
		t.Fatalf("expected empty streak, got %d", got)
	}
}

func TestRate(t *testing.T) {
	log := habit.Log{
		"2024-03-15": {"water": true},
		"2024-03-14": {"water": true},
		"2024-03-13": {"water": false},
		"2024-03-12": {"water": true},
	}
	if got := Rate(log, day(2024, 3, 15), "water", 4); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected 0.75, got %f", got)
	}
	if got := Rate(log, day(2024, 3, 15), "water", 0); got != 0 {
		t.Fatalf("expected 0 for empty window, got %f", got)
	}
}
