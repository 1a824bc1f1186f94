package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/habitcal/internal/habit"
)

type checkinKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func (k checkinKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Save, k.Quit}
}

func (k checkinKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultCheckinKeys() checkinKeys {
	return checkinKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Save:   key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s/enter", "save")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// SaveFunc persists the record for one date.
type SaveFunc func(date time.Time, rec habit.DayRecord) error

type savedMsg struct{ err error }

// Checkin is the bubbletea model behind `habitcal checkin`.
type Checkin struct {
	date   time.Time
	habits []string
	record habit.DayRecord
	cursor int

	save   SaveFunc
	keys   checkinKeys
	help   help.Model
	styles Styles

	saved bool
	err   error
}

// NewCheckin lists habits for date, prefilled from existing. Keys in
// existing that are not in habits are kept untouched on save.
func NewCheckin(date time.Time, habits []string, existing habit.DayRecord, save SaveFunc, st Styles) Checkin {
	rec := make(habit.DayRecord, len(existing)+len(habits))
	for k, v := range existing {
		rec[k] = v
	}
	for _, h := range habits {
		if _, ok := rec[h]; !ok {
			rec[h] = existing.Done(h)
		}
	}
	return Checkin{
		date:   habit.Midnight(date),
		habits: append([]string(nil), habits...),
		record: rec,
		save:   save,
		keys:   defaultCheckinKeys(),
		help:   help.New(),
		styles: st,
	}
}

func (m Checkin) Init() tea.Cmd { return nil }

func (m Checkin) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.saved = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.habits)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.habits) > 0 {
				h := m.habits[m.cursor]
				m.record[h] = !m.record[h]
			}
		case key.Matches(msg, m.keys.Save):
			return m, m.saveCmd()
		}
	}
	return m, nil
}

func (m Checkin) saveCmd() tea.Cmd {
	date, rec := m.date, m.Record()
	save := m.save
	return func() tea.Msg {
		if save == nil {
			return savedMsg{}
		}
		return savedMsg{err: save(date, rec)}
	}
}

func (m Checkin) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Check-in " + habit.Key(m.date)))
	b.WriteString("\n\n")
	for i, h := range m.habits {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		box := m.styles.Missed.Render("[ ]")
		if m.record[h] {
			box = m.styles.Done.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, m.styles.Value.Render(h))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("save failed: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Record is a copy of the record as currently edited.
func (m Checkin) Record() habit.DayRecord {
	out := make(habit.DayRecord, len(m.record))
	for k, v := range m.record {
		out[k] = v
	}
	return out
}

// Saved reports whether the record was written before the program quit.
func (m Checkin) Saved() bool { return m.saved }

// Err is the last save error, if any.
func (m Checkin) Err() error { return m.err }
