package translator

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Sys.vm"), "// entry\nfunction Sys.init 0\n\n  call Main.main 0 // go\n")
	writeFile(t, filepath.Join(dir, "Main.vm"), "function Main.main 0\npush constant 1\nreturn\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "push constant 9\n")

	units, isDir, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !isDir {
		t.Error("isDir = false")
	}
	if len(units) != 2 || units[0].Name != "Main" || units[1].Name != "Sys" {
		t.Fatalf("units = %+v; want Main then Sys", units)
	}
	if got := units[1].Lines; len(got) != 2 || got[1] != "call Main.main 0" {
		t.Errorf("Sys lines = %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Prog.vm")
	writeFile(t, path, "push constant 2\npush constant 3\nadd\n")

	units, isDir, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if isDir || len(units) != 1 || units[0].Name != "Prog" || len(units[0].Lines) != 3 {
		t.Errorf("Load = %+v, %v", units, isDir)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.vm")); err == nil {
		t.Error("missing file: expected error")
	}
	if _, _, err := Load(t.TempDir()); err == nil {
		t.Error("empty directory: expected error")
	}
}
