package system

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/habitlog/internal/backup"
	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/validation"
)

// inspector is implemented by stores that expose schema and file health
type inspector interface {
	SchemaVersion() (current, latest int, err error)
	IntegrityCheck() (string, error)
	TableExists(name string) (bool, error)
}

type DoctorCmd struct{}

type check struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Habit table", needsDB: true, run: checkHabitTable},
	{name: "File integrity", needsDB: true, run: checkIntegrity},
	{name: "Data validation", needsDB: true, run: checkHabits},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Out
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	dbReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Fprintf(out, "❌ Database reachable: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Fprintf(out, "⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Fprintf(out, "✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Fprintf(out, "⚠ %s: WARNING\n", c.name)
			fmt.Fprintf(out, "   %v\n", err)
		default:
			fmt.Fprintf(out, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		}
	}

	if dbReachable {
		if n, err := ctx.Store.CountHabits(); err == nil {
			fmt.Fprintf(out, "\nRecords: %d\n", n)
		}
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	insp, ok := ctx.Store.(inspector)
	if !ok {
		return nil
	}

	current, latest, err := insp.SchemaVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d; run 'habitlog init' to migrate", current, latest)
	}
	return nil
}

func checkHabitTable(ctx *cli.Context) error {
	insp, ok := ctx.Store.(inspector)
	if !ok {
		return nil
	}

	exists, err := insp.TableExists(constants.HabitTable)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("table %q is missing", constants.HabitTable)
	}
	return nil
}

func checkIntegrity(ctx *cli.Context) error {
	insp, ok := ctx.Store.(inspector)
	if !ok {
		return nil
	}

	result, err := insp.IntegrityCheck()
	if err != nil {
		return err
	}
	if result != "ok" {
		return fmt.Errorf("integrity check reported: %s", result)
	}
	return nil
}

// checkHabits verifies every stored record still satisfies the input rules
func checkHabits(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if errors.Is(err, storage.ErrNoHabits) {
		return nil
	}
	if err != nil {
		return err
	}

	today := validation.Today(ctx.Clock)
	var problems []error
	for _, h := range habits {
		if !validation.ValidateString(h.Name) {
			problems = append(problems, fmt.Errorf("habit %d has an empty name", h.ID))
		}
		if !validation.ValidateString(h.Measurement) {
			problems = append(problems, fmt.Errorf("habit %d has an empty measurement", h.ID))
		}
		if math.IsNaN(h.Quantity) || math.IsInf(h.Quantity, 0) {
			problems = append(problems, fmt.Errorf("habit %d has a non-finite quantity", h.ID))
		}
		if h.Date.After(today) {
			problems = append(problems, fmt.Errorf("habit %d is dated in the future (%s)", h.ID, h.Date.Format(constants.DateFormat)))
		}
	}
	return errors.Join(problems...)
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s (run 'habitlog backup create')", mgr.BackupDir())
	}
	return nil
}

func checkClockTimezone(_ *cli.Context) error {
	now := time.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return fmt.Errorf("no local timezone configured")
	}
	return nil
}
