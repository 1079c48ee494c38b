package contactbook

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestEmbeddedSeeds(t *testing.T) {
	// Verify that the embedded seed FS contains the default set.
	data, err := fs.ReadFile(Seeds, "default.yaml")
	if err != nil {
		t.Fatalf("reading embedded default.yaml: %v", err)
	}
	if !strings.Contains(string(data), "Alicia") {
		t.Error("embedded default.yaml is missing the seed contacts")
	}
}

func TestOverlayFS_EmbeddedOnly(t *testing.T) {
	// Given: an embedded FS with a file and a local dir without it
	embedded := fstest.MapFS{
		"default.yaml": &fstest.MapFile{Data: []byte("embedded seed")},
	}
	localDir := t.TempDir() // empty

	// When: opening the file via overlay
	ofs := OverlayFS(localDir, embedded)
	data, err := fs.ReadFile(ofs, "default.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// Then: embedded content is returned
	if string(data) != "embedded seed" {
		t.Errorf("got %q, want %q", string(data), "embedded seed")
	}
}

func TestOverlayFS_LocalOverride(t *testing.T) {
	// Given: both local and embedded have the same file
	embedded := fstest.MapFS{
		"default.yaml": &fstest.MapFile{Data: []byte("embedded seed")},
	}
	localDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(localDir, "default.yaml"), []byte("local seed"), 0o644); err != nil {
		t.Fatal(err)
	}

	// When: opening the file via overlay
	ofs := OverlayFS(localDir, embedded)
	data, err := fs.ReadFile(ofs, "default.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// Then: local file takes precedence
	if string(data) != "local seed" {
		t.Errorf("got %q, want %q", string(data), "local seed")
	}
}

func TestOverlayFS_Mixed(t *testing.T) {
	// Given: local has one file, embedded has another
	embedded := fstest.MapFS{
		"family.yaml": &fstest.MapFile{Data: []byte("embedded-family")},
		"work.yaml": &fstest.MapFile{Data: []byte("embedded-work")},
	}
	localDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(localDir, "family.yaml"), []byte("local-family"), 0o644); err != nil {
		t.Fatal(err)
	}

	ofs := OverlayFS(localDir, embedded)

	// When/Then: family.yaml comes from local, work.yaml comes from embedded
	dataFamily, err := fs.ReadFile(ofs, "family.yaml")
	if err != nil {
		t.Fatalf("ReadFile(family.yaml) error = %v", err)
	}
	if string(dataFamily) != "local-family" {
		t.Errorf("family.yaml = %q, want %q", string(dataFamily), "local-family")
	}

	dataWork, err := fs.ReadFile(ofs, "work.yaml")
	if err != nil {
		t.Fatalf("ReadFile(work.yaml) error = %v", err)
	}
	if string(dataWork) != "embedded-work" {
		t.Errorf("work.yaml = %q, want %q", string(dataWork), "embedded-work")
	}
}

func TestOverlayFS_NotFound(t *testing.T) {
	// Given: neither local nor embedded has the file
	embedded := fstest.MapFS{}
	localDir := t.TempDir()

	ofs := OverlayFS(localDir, embedded)

	// When/Then: Open returns an error
	_, err := fs.ReadFile(ofs, "missing.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOverlayFS_RejectsInvalidPath(t *testing.T) {
	// Given: an overlay FS
	ofs := OverlayFS(t.TempDir(), fstest.MapFS{})

	// When/Then: invalid paths are rejected per fs.ValidPath contract
	for _, name := range []string{"../escape", "/absolute", "bad\\slash"} {
		_, err := ofs.Open(name)
		if err == nil {
			t.Errorf("Open(%q) should return error", name)
		}
	}
}
