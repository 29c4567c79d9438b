package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rorical/RoriMap/internal/config"
	"github.com/Rorical/RoriMap/internal/models"
)

func TestUnknownRouteErrorSuggests(t *testing.T) {
	err := unknownRouteError("ore_minig", config.DefaultRoutes())
	if !strings.Contains(err.Error(), "did you mean ore_mining") {
		t.Errorf("message = %q", err)
	}

	err = unknownRouteError("zzzzzzzzzz", config.DefaultRoutes())
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("unexpected suggestion in %q", err)
	}
}

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	previous := configPath
	configPath = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { configPath = previous })
	return dir
}

func TestImportCommandReturnsErrors(t *testing.T) {
	dir := useTempConfig(t)

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{bad"), 0644); err != nil {
		t.Fatal(err)
	}
	err := importCmd.RunE(importCmd, []string{bad})
	if err == nil || !strings.Contains(err.Error(), "import data is malformed") {
		t.Fatalf("err = %v, want malformed payload", err)
	}

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"format":"rorimap/v1","found":["m1"]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := importCmd.RunE(importCmd, []string{good}); err != nil {
		t.Fatalf("import: %v", err)
	}

	services, err := openServices()
	if err != nil {
		t.Fatalf("reopen after import: %v", err)
	}
	defer services.Close()
	records, err := services.DB.Imports(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Source != models.SourceFile {
		t.Errorf("records = %+v", records)
	}
}

func TestToggleCommandUnknownRoute(t *testing.T) {
	useTempConfig(t)
	err := toggleRouteCmd.RunE(toggleRouteCmd, []string{"wood_gatherin"})
	if err == nil || !strings.Contains(err.Error(), "did you mean wood_gathering") {
		t.Errorf("err = %v", err)
	}
}

func TestReadImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(`{"format":"rorimap/v1"}`), 0644); err != nil {
		t.Fatal(err)
	}
	text, source, err := readImport([]string{path})
	if err != nil {
		t.Fatalf("readImport: %v", err)
	}
	if source != models.SourceFile || !strings.Contains(text, "rorimap/v1") {
		t.Errorf("got %q, %q", text, source)
	}

	if _, _, err := readImport([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing file")
	}
}
