package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/habitcal/internal/config"
	"github.com/ramanasai/habitcal/internal/generator"
	"github.com/ramanasai/habitcal/internal/habit"
	"github.com/ramanasai/habitcal/internal/logging"
	"github.com/ramanasai/habitcal/internal/notify"
	"github.com/ramanasai/habitcal/internal/render"
	"github.com/ramanasai/habitcal/internal/store"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	cfgPath  string
	dataPath string

	cfg      config.Config
	log      *zap.Logger
	store    *store.FileStore
	layout   render.Layout
	theme    render.Theme
	loc      *time.Location
	now      func() time.Time
	notifier notify.Notifier
	rng      generator.Source
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "habitcal",
		Short:         "Habit tracking calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default ./habitcal.yaml or ~/.config/habitcal/config.yaml)")
	root.PersistentFlags().StringVar(&a.dataPath, "data", "", "habit data file (overrides data_path)")

	root.AddCommand(
		newServeCmd(a),
		newGenerateCmd(a),
		newShowCmd(a),
		newLogCmd(a),
		newCheckinCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.DataPath = a.dataPath
	}
	a.cfg = cfg

	if a.log == nil {
		if a.log, err = logging.New(cfg.Log.Level, cfg.Log.Development); err != nil {
			return err
		}
	}

	a.loc = cfg.Location()
	if a.now == nil {
		loc := a.loc
		a.now = func() time.Time { return time.Now().In(loc) }
	}
	if a.notifier == nil {
		a.notifier = notify.Discard{}
		if cfg.Notify.Enabled {
			a.notifier = notify.Desktop{}
		}
	}
	if a.rng == nil {
		a.rng = generator.NewSource(cfg.Generate.Seed)
	}

	if a.theme, err = render.ParseTheme(cfg.Theme); err != nil {
		return err
	}
	tf, err := render.LoadTypeface(cfg.Rows.Font, cfg.Rows.FontSize)
	if err != nil {
		return err
	}
	rc := render.DefaultConfig()
	rc.Weeks = cfg.Render.Weeks
	a.layout = render.Layout{
		Config:   rc,
		Mode:     render.Mode(cfg.Mode),
		Habits:   cfg.Rows.Habits,
		RowDays:  cfg.Rows.Days,
		Typeface: tf,
	}
	a.store = store.NewFileStore(cfg.DataPath)
	return nil
}

// generate runs the generator for today and notifies when a record was
// written. The returned record is nil when today already had one.
func (a *app) generate(today time.Time) (habit.DayRecord, error) {
	log, wrote, err := generator.DefaultModel().Run(a.store, today, a.rng)
	if err != nil {
		return nil, err
	}
	if !wrote {
		a.log.Info("habit data already exists", zap.String("date", habit.Key(today)))
		return nil, nil
	}
	rec := log.Day(today)
	a.log.Info("habit data generated", zap.String("date", habit.Key(today)), zap.Int("completed", rec.Completed()))
	title, msg := notify.FormatGenerated(habit.Key(today), rec)
	if err := a.notifier.Notify(title, msg); err != nil {
		a.log.Warn("notify failed", zap.Error(err))
	}
	return rec, nil
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	a := &app{}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error to the process exit status: 2 when the data file
// cannot be written, 3 when it cannot be parsed, 1 otherwise.
func ExitCode(err error) int {
	var we *store.WriteError
	var fe *store.FormatError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &we):
		return 2
	case errors.As(err, &fe):
		return 3
	default:
		return 1
	}
}
