package storage

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func schemaVersion(t *testing.T, db *sql.DB) int {
	t.Helper()
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		t.Fatalf("read user_version: %v", err)
	}
	return v
}

func TestMigrateAppliesInOrder(t *testing.T) {
	db := openMemoryDB(t)
	files := fstest.MapFS{
		"002_seed.sql":   &fstest.MapFile{Data: []byte("INSERT INTO items (id) VALUES ('seed');")},
		"001_create.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
	}

	if err := migrate(context.Background(), db, files); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if v := schemaVersion(t, db); v != 2 {
		t.Fatalf("expected version 2, got %d", v)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n); err != nil || n != 1 {
		t.Fatalf("expected one seeded row, got %d (%v)", n, err)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	files := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);")},
	}
	for i := 0; i < 2; i++ {
		if err := migrate(context.Background(), db, files); err != nil {
			t.Fatalf("migrate pass %d: %v", i, err)
		}
	}
	if v := schemaVersion(t, db); v != 1 {
		t.Fatalf("expected version 1 after replay, got %d", v)
	}
}

func TestMigrateFailureKeepsVersion(t *testing.T) {
	db := openMemoryDB(t)
	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")},
	}
	if err := migrate(context.Background(), db, bad); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if v := schemaVersion(t, db); v != 0 {
		t.Fatalf("expected version 0 after failure, got %d", v)
	}
}

func TestUpSection(t *testing.T) {
	got := upSection("-- +migrate Up\nCREATE TABLE a(x);\n-- +migrate Down\nDROP TABLE a;")
	if got != "\nCREATE TABLE a(x);\n" {
		t.Fatalf("unexpected up section %q", got)
	}
	if upSection("SELECT 1;") != "SELECT 1;" {
		t.Fatal("expected content without markers to be returned whole")
	}
}
