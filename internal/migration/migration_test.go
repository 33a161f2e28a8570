package migration

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(nil))

	version, err := runner.CurrentVersion(context.Background())
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestMigrations(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"002_second.sql": "CREATE TABLE b (id INTEGER);",
		"001_first.sql":  "CREATE TABLE a (id INTEGER);",
		"README.md":      "not a migration",
	}))

	migrations, err := runner.Migrations()
	if err != nil {
		t.Fatalf("Migrations failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "first" {
		t.Errorf("first migration = %d %q", migrations[0].Version, migrations[0].Name)
	}
	if migrations[1].Version != 2 || migrations[1].Name != "second" {
		t.Errorf("second migration = %d %q", migrations[1].Version, migrations[1].Name)
	}
}

func TestMigrations_InvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "missing underscore",
			files:   map[string]string{"001.sql": "SELECT 1;"},
			wantErr: "invalid migration filename format",
		},
		{
			name:    "non-numeric version",
			files:   map[string]string{"abc_init.sql": "SELECT 1;"},
			wantErr: "invalid version number",
		},
		{
			name:    "zero version",
			files:   map[string]string{"000_init.sql": "SELECT 1;"},
			wantErr: "version must be at least 1",
		},
		{
			name: "duplicate version",
			files: map[string]string{
				"001_a.sql": "SELECT 1;",
				"01_b.sql":  "SELECT 1;",
			},
			wantErr: "duplicate migration version 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), migrationFS(tt.files))
			_, err := runner.Migrations()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestApply(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_entries.sql": "CREATE TABLE entries (date TEXT PRIMARY KEY);",
		"002_index.sql":   "CREATE INDEX idx_entries_date ON entries(date);",
	}))

	var logs []string
	applied, err := runner.Apply(ctx, func(msg string) { logs = append(logs, msg) })
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied, got %d", applied)
	}
	if len(logs) != 2 || !strings.Contains(logs[0], "Applying migration 1: entries") {
		t.Errorf("unexpected log lines: %v", logs)
	}

	version, err := runner.CurrentVersion(ctx)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	if _, err := db.Exec("INSERT INTO entries (date) VALUES ('2024-01-15')"); err != nil {
		t.Errorf("migrated table not usable: %v", err)
	}

	// a second run is a no-op
	applied, err = runner.Apply(ctx, nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 applied on second run, got %d", applied)
	}
}

func TestApply_FailedMigrationRollsBack(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"001_ok.sql":     "CREATE TABLE ok (id INTEGER);",
		"002_broken.sql": "CREATE TABLE nope (;",
	}))

	applied, err := runner.Apply(ctx, nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied before failure, got %d", applied)
	}

	version, err := runner.CurrentVersion(ctx)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version 1 after rollback, got %d", version)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	files := map[string]string{"001_init.sql": "CREATE TABLE t (id INTEGER);"}
	runner := NewRunner(db, migrationFS(files))

	if _, err := runner.Apply(ctx, nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := runner.ValidateVersion(ctx); err != nil {
		t.Errorf("ValidateVersion on current schema: %v", err)
	}

	if _, err := db.Exec("UPDATE schema_version SET version = 9"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	err := runner.ValidateVersion(ctx)
	if err == nil || !strings.Contains(err.Error(), "please upgrade journey") {
		t.Errorf("expected newer schema error, got %v", err)
	}
}

func TestWithRebind(t *testing.T) {
	var seen []string
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE t (id INTEGER);",
	})).WithRebind(func(q string) string {
		seen = append(seen, q)
		return q
	})

	if _, err := runner.Apply(context.Background(), nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(seen) != 1 || !strings.Contains(seen[0], "INSERT INTO schema_version") {
		t.Errorf("rebind saw %v", seen)
	}
}
