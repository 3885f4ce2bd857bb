// Package database provides connection setup for MariaDB and Redis.
// This file validates migration SQL files to catch mistakes early.
package database

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// migrationsDir returns the absolute path to db/migrations/ from the project root.
func migrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	// thisFile is internal/database/migrate_test.go, project root is two dirs up.
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")
	dir := filepath.Join(projectRoot, "db", "migrations")
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("migrations directory not found at %s: %v", dir, err)
	}
	return dir
}

var migrationName = regexp.MustCompile(`^(\d{6})_[a-z0-9_]+\.(up|down)\.sql$`)

// TestMigrations_PairedAndNamed checks that every migration has both an
// up and a down file and that file names follow golang-migrate's expected
// NNNNNN_name.(up|down).sql pattern. A missing down file makes rollbacks
// impossible; a misnamed file is silently ignored by the migrator.
func TestMigrations_PairedAndNamed(t *testing.T) {
	dir := migrationsDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading migrations dir: %v", err)
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		m := migrationName.FindStringSubmatch(name)
		if m == nil {
			t.Errorf("migration file %q does not match NNNNNN_name.(up|down).sql", name)
			continue
		}
		base := strings.TrimSuffix(strings.TrimSuffix(name, ".up.sql"), ".down.sql")
		if m[2] == "up" {
			ups[base] = true
		} else {
			downs[base] = true
		}
	}

	if len(ups) == 0 {
		t.Fatal("no up migrations found")
	}
	for base := range ups {
		if !downs[base] {
			t.Errorf("migration %s has no down file", base)
		}
	}
	for base := range downs {
		if !ups[base] {
			t.Errorf("migration %s has no up file", base)
		}
	}
}

// TestMigrations_UsersColumns ensures the columns the auth and notifications
// repositories scan are all created by the schema. Catches drift between
// repository SQL and migrations without needing a live database.
func TestMigrations_UsersColumns(t *testing.T) {
	dir := migrationsDir(t)
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing migration files: %v", err)
	}

	var all strings.Builder
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}
		all.Write(data)
	}
	schema := strings.ToLower(all.String())

	required := []string{
		"email_verified", "password_hash", "last_login_at",
		"daily_reminders", "reminder_time", "weekly_digest", "fcm_token",
	}
	for _, col := range required {
		if !strings.Contains(schema, col) {
			t.Errorf("no migration defines column %q", col)
		}
	}
}
