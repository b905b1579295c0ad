package backups

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/backup"
	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
	"github.com/julianstephens/habitlog/internal/validation"
)

func setupTestContext(t *testing.T, input string) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habitlog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clock := validation.FixedClock{T: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)}
	out := &bytes.Buffer{}
	return &cli.Context{
		Store:  store,
		Clock:  clock,
		Seeder: storage.NewSeeder(rand.New(rand.NewPCG(7, 8)), clock),
		In:     strings.NewReader(input),
		Out:    out,
	}, store, out
}

func addRunning(t *testing.T, store *sqlite.Store) {
	t.Helper()
	if _, err := store.AddHabit(models.Habit{Name: "Running", Measurement: "km", Quantity: 5, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
}

func TestBackupListCmd_Empty(t *testing.T) {
	ctx, _, out := setupTestContext(t, "")

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("expected empty notice, got %q", out.String())
	}
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, _, out := setupTestContext(t, "")

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: habitlog-") {
		t.Errorf("unexpected create output %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("unexpected list output %q", out.String())
	}
}

func TestBackupRestoreCmd_RoundTrip(t *testing.T) {
	ctx, store, out := setupTestContext(t, "")
	addRunning(t, store)

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := store.DeleteHabit(1); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Database restored successfully") {
		t.Errorf("unexpected restore output %q", out.String())
	}

	if err := store.Load(); err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	h, err := store.GetHabit(1)
	if err != nil {
		t.Fatalf("restored habit missing: %v", err)
	}
	if h.Name != "Running" {
		t.Errorf("unexpected restored habit %+v", h)
	}
}

func TestBackupRestoreCmd_Cancelled(t *testing.T) {
	ctx, store, out := setupTestContext(t, "n\n")

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := (&BackupRestoreCmd{BackupFile: backupPath}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("expected cancellation, got %q", out.String())
	}
	if store.GetDB() == nil {
		t.Error("cancelled restore should leave the store open")
	}
}

func TestResolveBackupPath(t *testing.T) {
	dir := t.TempDir()
	name := "habitlog-20240101-120000.db"
	full := filepath.Join(dir, name)
	if err := os.WriteFile(full, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := resolveBackupPath(name, dir)
	if err != nil || got != full {
		t.Errorf("resolveBackupPath(name) = %q, %v; want %q", got, err, full)
	}

	got, err = resolveBackupPath(full, t.TempDir())
	if err != nil || got != full {
		t.Errorf("resolveBackupPath(abs) = %q, %v; want %q", got, err, full)
	}

	if _, err := resolveBackupPath("missing.db", dir); err == nil {
		t.Error("expected error for missing backup")
	}
}
