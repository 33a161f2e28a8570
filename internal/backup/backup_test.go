package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/journey/internal/logger"
	"github.com/julianstephens/journey/internal/storage"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "journey.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return dbPath
}

// steppingClock advances one minute per call.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Minute)
		return t
	}
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(func() time.Time {
		return time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)
	})

	info, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if info.Name() != "journey-20240115-083000.db" {
		t.Errorf("unexpected backup name %q", info.Name())
	}
	if filepath.Dir(info.Path) != filepath.Join(filepath.Dir(dbPath), DirName) {
		t.Errorf("backup written outside backup dir: %s", info.Path)
	}
	if info.Size == 0 {
		t.Error("backup is empty")
	}

	restored := storage.NewSQLiteStore(info.Path)
	defer restored.Close()
	if err := restored.Load(); err != nil {
		t.Fatalf("backup does not load: %v", err)
	}
	entry, err := restored.GetEntry("2024-01-15")
	if err != nil {
		t.Fatalf("backup is missing entries: %v", err)
	}
	if entry.TasksCompleted != 5 {
		t.Errorf("expected 5 completed tasks, got %d", entry.TasksCompleted)
	}
}

func TestCreate_SameSecond(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(func() time.Time {
		return time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)
	})

	first, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if first.Path == second.Path {
		t.Fatal("second backup overwrote the first")
	}
	if second.Name() != "journey-20240115-083000-1.db" {
		t.Errorf("unexpected name %q", second.Name())
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(backups))
	}
}

func TestCreate_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestList(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(steppingClock(time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)))

	if backups, err := mgr.List(); err != nil || len(backups) != 0 {
		t.Fatalf("expected no backups before the first, got %v, %v", backups, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(mgr.Dir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mgr.Dir(), "journey-garbage.db"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	want := []string{"journey-20240115-080200.db", "journey-20240115-080100.db", "journey-20240115-080000.db"}
	for i, b := range backups {
		if b.Name() != want[i] {
			t.Errorf("backup %d: expected %s, got %s", i, want[i], b.Name())
		}
	}
}

func TestRotate(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(steppingClock(time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)))

	for i := 0; i < MaxBackups+3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}
	}
	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	if backups[len(backups)-1].Name() != "journey-20240115-080300.db" {
		t.Errorf("oldest kept backup is %s", backups[len(backups)-1].Name())
	}

	if err := mgr.Rotate(2); err != nil {
		t.Fatal(err)
	}
	backups, _ = mgr.List()
	if len(backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(backups))
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(steppingClock(time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)))

	snapshot, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(dbPath); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dbPath, nil, 0600); err != nil {
		t.Fatal(err)
	}

	previous, err := mgr.Restore(snapshot.Path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if previous.Path == "" {
		t.Error("expected the current database to be backed up before restore")
	}

	store := storage.NewSQLiteStore(dbPath)
	defer store.Close()
	if err := store.Load(); err != nil {
		t.Fatalf("restored database does not load: %v", err)
	}
	if _, err := store.GetProfile(); err != nil {
		t.Errorf("restored database is missing the profile: %v", err)
	}
}

func TestRestore_Invalid(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.Restore(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(bogus); err == nil {
		t.Error("expected error for corrupt backup")
	}
}

func TestVacuumInto_FallsBackToCopy(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Logger
	logger.Logger = logger.New(&buf, log.WarnLevel, false)
	t.Cleanup(func() { logger.Logger = prev })

	src := setupTestDB(t)
	dst := filepath.Join(t.TempDir(), "occupied.db")
	// VACUUM INTO refuses a non-empty target.
	if err := os.WriteFile(dst, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := vacuumInto(src, dst); err != nil {
		t.Fatalf("vacuumInto failed: %v", err)
	}
	if err := verify(dst); err != nil {
		t.Errorf("fallback copy is not a journal database: %v", err)
	}
	if !strings.Contains(buf.String(), "VACUUM INTO failed") {
		t.Errorf("expected a warning about the failed VACUUM, got %q", buf.String())
	}
}
