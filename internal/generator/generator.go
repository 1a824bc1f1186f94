// Package generator backfills the habit log with plausible data whose
// consistency improves over the course of the year.
package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/store"
)

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Offset shifts the base completion probability for one habit.
type Offset struct {
	Habit string
	Delta float64
}

// Model describes the improving-consistency probability curve.
type Model struct {
	BaseRate float64
	Growth   float64 // per day since Jan 1
	Ceiling  float64 // cap on the shared rate before offsets
	Min, Max float64 // clamp applied to each habit probability
	Offsets  []Offset
}

// DefaultModel is the curve used by habitcal generate. Offsets are drawn in
// slice order, so a seeded source always maps to the same habits.
func DefaultModel() Model {
	return Model{
		BaseRate: 0.6,
		Growth:   0.3 / 365,
		Ceiling:  0.95,
		Min:      0.10,
		Max:      0.98,
		Offsets: []Offset{
			{Habit: "water", Delta: 0.20},
			{Habit: "journal", Delta: 0.10},
			{Habit: "meditate", Delta: 0},
			{Habit: "read", Delta: 0},
			{Habit: "exercise", Delta: -0.10},
		},
	}
}

// Habits returns the habit names in draw order.
func (m Model) Habits() []string {
	names := make([]string, len(m.Offsets))
	for i, o := range m.Offsets {
		names[i] = o.Habit
	}
	return names
}

// Probabilities returns the completion probability for each habit on today.
func (m Model) Probabilities(today time.Time) map[string]float64 {
	daysPassed := today.YearDay() - 1
	current := math.Min(m.Ceiling, m.BaseRate+float64(daysPassed)*m.Growth)

	out := make(map[string]float64, len(m.Offsets))
	for _, o := range m.Offsets {
		out[o.Habit] = clamp(current+o.Delta, m.Min, m.Max)
	}
	return out
}

// Generate adds a record for today unless one already exists. The input log
// is never modified; the returned log is a copy when a record was added.
func (m Model) Generate(log habit.Log, today time.Time, rng Source) (habit.Log, bool) {
	if log.Has(today) {
		return log, false
	}
	probs := m.Probabilities(today)
	rec := make(habit.DayRecord, len(m.Offsets))
	for _, o := range m.Offsets {
		rec[o.Habit] = rng.Float64() < probs[o.Habit]
	}

	out := log.Clone()
	out[habit.Key(today)] = rec
	return out, true
}

// Run loads the log from s, generates today's record and saves it when one
// was added. Two concurrent runs for the same day can both write; the last
// writer wins.
func (m Model) Run(s store.LoadSaver, today time.Time, rng Source) (habit.Log, bool, error) {
	log, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	out, wrote := m.Generate(log, today, rng)
	if !wrote {
		return log, false, nil
	}
	if err := s.Save(out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// NewSource returns a PCG-backed source. A zero seed draws one from the
// runtime's entropy.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
