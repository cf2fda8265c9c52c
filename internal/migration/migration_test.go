package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyRunsPendingMigrationsInOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_notes.sql": {Data: []byte("ALTER TABLE things ADD COLUMN note TEXT;")},
		"001_init.sql":      {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
	}
	r := NewRunner(openTestDB(t), fsys)

	var log []string
	applied, err := r.Apply(func(msg string) { log = append(log, msg) })
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(log) != 2 || log[0] != "Applying migration 1: init" {
		t.Errorf("log = %v", log)
	}

	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion after apply: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
	}
	r := NewRunner(openTestDB(t), fsys)

	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	applied, err := r.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply applied %d migrations, want 0", applied)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}
	r := NewRunner(openTestDB(t), fsys)

	applied, err := r.Apply(nil)
	if err == nil {
		t.Fatalf("Apply should fail on the bad migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	// The failed migration must not bump the version.
	version, verr := r.CurrentVersion()
	if verr != nil {
		t.Fatalf("CurrentVersion: %v", verr)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestValidateVersionDetectsOutOfDateSchema(t *testing.T) {
	db := openTestDB(t)
	r := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
	})
	if _, err := r.Apply(nil); err != nil {
		t.Fatal(err)
	}

	newer := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
		"002_more.sql": {Data: []byte("ALTER TABLE things ADD COLUMN note TEXT;")},
	})
	if err := newer.ValidateVersion(); err == nil {
		t.Errorf("out-of-date schema should fail validation")
	}

	// Downgrade direction: binary only knows version 0 worth of migrations.
	older := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
	})
	if err := older.ValidateVersion(); err != nil {
		t.Errorf("matching schema should validate: %v", err)
	}
}

func TestReadRejectsBadFilenames(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "no version prefix",
			fs:   fstest.MapFS{"init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "non-numeric version",
			fs:   fstest.MapFS{"abc_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "duplicate versions",
			fs: fstest.MapFS{
				"001_a.sql": {Data: []byte("SELECT 1;")},
				"001_b.sql": {Data: []byte("SELECT 1;")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(openTestDB(t), tt.fs)
			if _, err := r.Apply(nil); err == nil {
				t.Errorf("Apply should reject %s", tt.name)
			}
		})
	}
}
