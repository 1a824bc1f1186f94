package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/habitcal/internal/calendar"
	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/render"
)

func TestHexBlendsAlpha(t *testing.T) {
	tests := []struct {
		name string
		c    render.Palette
		idx  int
		bg   [3]uint8
		want string
	}{
		{"opaque", render.DefaultConfig().Light.Palette, 4, [3]uint8{255, 255, 255}, "#216e39"},
		{"opaque dark", render.DefaultConfig().Dark.Palette, 4, [3]uint8{13, 17, 23}, "#4a7eff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg := tt.c[0]
			bg.R, bg.G, bg.B, bg.A = tt.bg[0], tt.bg[1], tt.bg[2], 255
			if got := hex(tt.c[tt.idx], bg); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}

	half := render.DefaultConfig().Dark.Palette[1] // alpha 80
	if got := hex(half, darkBackground); got == "#4a7eff" {
		t.Fatalf("expected translucent color to be blended, got %s", got)
	}
}

func TestHeatmapShape(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) // Friday
	log := habit.Log{"2024-03-15": {"water": true}}
	g := calendar.BuildGrid(log, today, calendar.DefaultWeeks, calendar.DefaultDaysPerWeek)

	out := Heatmap(g, NewStyles(render.DefaultConfig(), render.Light))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+7+1 {
		t.Fatalf("expected header, 7 day rows and legend, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "Mon") || !strings.HasPrefix(lines[6], "Fri") {
		t.Fatalf("unexpected weekday labels:\n%s", out)
	}
	// Saturday row ends one week early: the last week's Saturday is in the future.
	if a, b := strings.Count(lines[6], cellGlyph), strings.Count(lines[7], cellGlyph); a != 53 || b != 52 {
		t.Fatalf("expected 53 and 52 cells, got %d and %d", a, b)
	}
	if !strings.Contains(lines[0], "Mar") {
		t.Fatalf("expected month header, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "Less") || !strings.Contains(lines[8], "More") {
		t.Fatalf("expected legend, got %q", lines[8])
	}
}

func TestSummary(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	log := habit.Log{
		"2024-03-13": {"water": true},
		"2024-03-14": {"water": true, "read": true},
		"2024-03-15": {"water": true},
	}
	out := Summary(log, today, []string{"water", "read"}, 4, NewStyles(render.DefaultConfig(), render.Dark))
	for _, want := range []string{"3 days", "water", " 75%", " 25%", "last 4 days"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestCheckinToggleAndSave(t *testing.T) {
	date := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	var gotDate time.Time
	var gotRec habit.DayRecord
	save := func(d time.Time, rec habit.DayRecord) error {
		gotDate, gotRec = d, rec
		return nil
	}
	existing := habit.DayRecord{"read": true, "yoga": true}
	var m tea.Model = NewCheckin(date, []string{"water", "read"}, existing, save, NewStyles(render.DefaultConfig(), render.Light))

	m, _ = m.Update(runes("x"))                     // water on
	m, _ = m.Update(runes("j"))                     // cursor to read
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace}) // read off
	m, cmd := m.Update(runes("s"))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	m, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatal("expected quit after save")
	}

	c := m.(Checkin)
	if !c.Saved() || c.Err() != nil {
		t.Fatalf("expected saved without error, got saved=%v err=%v", c.Saved(), c.Err())
	}
	if habit.Key(gotDate) != "2024-03-15" {
		t.Fatalf("unexpected save date %v", gotDate)
	}
	want := habit.DayRecord{"water": true, "read": false, "yoga": true}
	if len(gotRec) != len(want) {
		t.Fatalf("unexpected record %v", gotRec)
	}
	for k, v := range want {
		if gotRec[k] != v {
			t.Fatalf("expected %s=%v, got %v", k, v, gotRec)
		}
	}
	if !existing["read"] {
		t.Fatal("existing record was mutated")
	}
}

func TestCheckinSaveErrorKeepsRunning(t *testing.T) {
	save := func(time.Time, habit.DayRecord) error { return errors.New("disk full") }
	var m tea.Model = NewCheckin(time.Now(), []string{"water"}, nil, save, NewStyles(render.DefaultConfig(), render.Light))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(cmd())
	if cmd != nil {
		t.Fatal("expected model to keep running after a failed save")
	}
	c := m.(Checkin)
	if c.Saved() || c.Err() == nil {
		t.Fatalf("expected save error, got saved=%v err=%v", c.Saved(), c.Err())
	}
	if !strings.Contains(c.View(), "disk full") {
		t.Fatalf("expected error in view:\n%s", c.View())
	}
}

func TestCheckinQuitWithoutSaving(t *testing.T) {
	called := false
	save := func(time.Time, habit.DayRecord) error { called = true; return nil }
	var m tea.Model = NewCheckin(time.Now(), []string{"water"}, nil, save, NewStyles(render.DefaultConfig(), render.Light))
	m, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if called || m.(Checkin).Saved() {
		t.Fatal("quit must not save")
	}
}

func TestCheckinPrefillIgnoresCase(t *testing.T) {
	m := NewCheckin(time.Now(), []string{"water"}, habit.DayRecord{"Water": true}, nil, NewStyles(render.DefaultConfig(), render.Light))
	if rec := m.Record(); !rec["water"] || !rec["Water"] {
		t.Fatalf("expected water prefilled from Water, got %v", rec)
	}
}
