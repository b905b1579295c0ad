package cli

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
	"github.com/julianstephens/habitlog/internal/validation"
)

var testNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func setupTestContext(t *testing.T, input string) (*Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habitlog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clock := validation.FixedClock{T: testNow}
	out := &bytes.Buffer{}
	ctx := &Context{
		Store:  store,
		Clock:  clock,
		Seeder: storage.NewSeeder(rand.New(rand.NewPCG(1, 2)), clock),
		In:     strings.NewReader(input),
		Out:    out,
	}
	return ctx, store, out
}

func addRunning(t *testing.T, store *sqlite.Store) int64 {
	t.Helper()
	id, err := store.AddHabit(models.Habit{
		Name:        "Running",
		Measurement: "km",
		Quantity:    5,
		Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return id
}

func TestMenu_ExitOnZero(t *testing.T) {
	ctx, _, out := setupTestContext(t, "0\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Closing application. Goodbye!") {
		t.Errorf("expected goodbye message, got:\n%s", out.String())
	}
}

func TestMenu_EndOfInputExits(t *testing.T) {
	ctx, _, out := setupTestContext(t, "")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error on closed input: %v", err)
	}
	if strings.Contains(out.String(), "Goodbye") {
		t.Errorf("closed input should exit without the goodbye message")
	}
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	ctx, _, out := setupTestContext(t, "9\nabc\n 1\n0\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	if got := strings.Count(out.String(), "Invalid option"); got != 3 {
		t.Errorf("expected 3 rejections, got %d:\n%s", got, out.String())
	}
}

func TestMenu_ListEmpty(t *testing.T) {
	ctx, _, out := setupTestContext(t, "1\n0\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	if !strings.Contains(out.String(), "No records found.") {
		t.Errorf("expected empty notice, got:\n%s", out.String())
	}
}

func TestMenu_Insert(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"Running",
		"",
		"km",
		"abc",
		"5.5",
		"2099-01-01",
		"15-01-2024",
		"1",
		"0",
	}, "\n") + "\n"
	ctx, store, out := setupTestContext(t, input)

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Record inserted successfully!",
		"Invalid number",
		"Invalid date",
		"2024-01-15",
		"5.5 km",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "Running" || habits[0].Quantity != 5.5 {
		t.Errorf("unexpected stored habits: %+v", habits)
	}
}

func TestMenu_InsertToday(t *testing.T) {
	ctx, store, _ := setupTestContext(t, "2\nReading\npages\n30\nToday\n0\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if got := habits[0].Date.Format("2006-01-02"); got != "2024-03-10" {
		t.Errorf("expected today's date, got %s", got)
	}
}

func TestMenu_Delete(t *testing.T) {
	tests := []struct {
		name string
		seed bool
		want string
		rows int
	}{
		{name: "existing", seed: true, want: "1 row was affected.", rows: 0},
		{name: "missing", seed: false, want: "Couldn't find a habit with that id.", rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, store, out := setupTestContext(t, "3\n0\n-1\nx\n1\n0\n")
			if tt.seed {
				addRunning(t, store)
			}

			if err := (&MenuCmd{}).Run(ctx); err != nil {
				t.Fatalf("menu returned error: %v", err)
			}

			output := out.String()
			if !strings.Contains(output, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, output)
			}
			for _, reject := range []string{"ID must be greater than 0", "Enter a non-floating point number"} {
				if !strings.Contains(output, reject) {
					t.Errorf("output missing rejection %q", reject)
				}
			}

			n, err := store.CountHabits()
			if err != nil {
				t.Fatalf("CountHabits failed: %v", err)
			}
			if n != tt.rows {
				t.Errorf("expected %d rows, got %d", tt.rows, n)
			}
		})
	}
}

func TestMenu_Update(t *testing.T) {
	ctx, store, out := setupTestContext(t, "4\n1\ncolour\nQuantity\n7.25\n0\n")
	id := addRunning(t, store)

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Record updated successfully!") {
		t.Errorf("expected update confirmation, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Enter a valid column name") {
		t.Errorf("expected column rejection, got:\n%s", out.String())
	}

	h, err := store.GetHabit(id)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if h.Quantity != 7.25 || h.Name != "Running" {
		t.Errorf("unexpected habit after update: %+v", h)
	}
}

func TestMenu_UpdateMissing(t *testing.T) {
	ctx, _, out := setupTestContext(t, "4\n42\nname\nCycling\n0\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Couldn't find a habit with that id.") {
		t.Errorf("expected not-found message, got:\n%s", out.String())
	}
}

func TestMenu_StoreFaultContinuesLoop(t *testing.T) {
	ctx, store, out := setupTestContext(t, "1\n0\n")
	if _, err := store.GetDB().Exec("DROP TABLE habit"); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Error:") {
		t.Errorf("expected reported error, got:\n%s", output)
	}
	if !strings.Contains(output, "Goodbye") {
		t.Errorf("expected loop to continue to exit, got:\n%s", output)
	}
}

func TestMenu_EndOfInputMidAction(t *testing.T) {
	ctx, store, _ := setupTestContext(t, "2\nRunning\nkm\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}

	n, err := store.CountHabits()
	if err != nil {
		t.Fatalf("CountHabits failed: %v", err)
	}
	if n != 0 {
		t.Errorf("partial input should not insert, got %d rows", n)
	}
}

func TestContext_Seed(t *testing.T) {
	ctx, _, out := setupTestContext(t, "")

	inserted, err := ctx.Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if inserted != 100 {
		t.Errorf("expected 100 seeded rows, got %d", inserted)
	}
	if !strings.Contains(out.String(), "Seeded 100 sample records") {
		t.Errorf("expected seed notice, got:\n%s", out.String())
	}

	out.Reset()
	inserted, err = ctx.Seed()
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if inserted != 0 || out.Len() != 0 {
		t.Errorf("second seed should be silent no-op, inserted %d, output %q", inserted, out.String())
	}
}
