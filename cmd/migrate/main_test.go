package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectUpFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"002_bookings_status_index.up.sql",
		"001_create_bookings.up.sql",
		"000_drop_all.sql",
		"000_consolidated.sql",
		"README.md",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("-- x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.up.sql"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := collectUpFiles(dir)
	if err != nil {
		t.Fatalf("collectUpFiles: %v", err)
	}
	want := []string{"001_create_bookings.up.sql", "002_bookings_status_index.up.sql"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectUpFiles_MissingDir(t *testing.T) {
	if _, err := collectUpFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestPending(t *testing.T) {
	files := []string{"001_a.up.sql", "002_b.up.sql", "003_c.up.sql"}
	got := pending(files, map[string]bool{"001_a": true, "003_c": true})
	if diff := cmp.Diff([]string{"002_b.up.sql"}, got); diff != "" {
		t.Errorf("pending mismatch (-want +got):\n%s", diff)
	}
	if got := pending(files, map[string]bool{"001_a": true, "002_b": true, "003_c": true}); len(got) != 0 {
		t.Errorf("expected nothing pending, got %v", got)
	}
}

// The shipped migrations directory must stay loadable.
func TestShippedMigrations(t *testing.T) {
	files, err := collectUpFiles(filepath.Join("..", "..", "migrations"))
	if err != nil {
		t.Fatalf("collectUpFiles: %v", err)
	}
	if len(files) == 0 || files[0] != "001_create_bookings.up.sql" {
		t.Errorf("unexpected migrations: %v", files)
	}
	for _, f := range []string{"000_drop_all.sql", "000_consolidated.sql"} {
		if _, err := os.Stat(filepath.Join("..", "..", "migrations", f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
}
