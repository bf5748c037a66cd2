package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgerrors "github.com/matzehuels/pomdeps/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"pomdeps.toml", FormatTOML},
		{"config", FormatJSON},
		{"config.txt", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "package_name": "org.apache.commons:commons-lang3",
  "repo_url": "https://repo1.maven.org/maven2/",
  "test_mode": false,
  "version": "3.12.0",
  "output_image": "graph.png",
  "max_depth": 3,
  "filter_substring": ""
}`)

	raw, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := raw["package_name"]; got != "org.apache.commons:commons-lang3" {
		t.Errorf("package_name = %v", got)
	}
	if got, ok := raw["max_depth"].(json.Number); !ok || got.String() != "3" {
		t.Errorf("max_depth = %#v, want json.Number(3)", raw["max_depth"])
	}
	if got := raw["test_mode"]; got != false {
		t.Errorf("test_mode = %#v, want false", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `package_name: "com.google.guava:guava"
repo_url: https://repo1.maven.org/maven2
test_mode: true
version: "32.1.3-jre"
output_image: tower.svg
max_depth: 2
filter_substring: google
`)

	raw, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := raw["max_depth"]; got != 2 {
		t.Errorf("max_depth = %#v, want 2", got)
	}
	if got := raw["test_mode"]; got != true {
		t.Errorf("test_mode = %#v, want true", got)
	}
	if got := raw["filter_substring"]; got != "google" {
		t.Errorf("filter_substring = %#v", got)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `package_name = "junit:junit"
repo_url = "https://repo1.maven.org/maven2"
test_mode = false
version = "4.13.2"
output_image = "junit.png"
max_depth = 5
filter_substring = "hamcrest"
`)

	raw, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := raw["max_depth"]; got != int64(5) {
		t.Errorf("max_depth = %#v, want int64(5)", got)
	}

	cfg, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5", cfg.MaxDepth)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    pkgerrors.Code
	}{
		{"malformed json", "config.json", `{"package_name": `, pkgerrors.ErrCodeParse},
		{"empty json", "config.json", ``, pkgerrors.ErrCodeParse},
		{"trailing data", "config.json", `{} {}`, pkgerrors.ErrCodeParse},
		{"json list", "config.json", `["a", "b"]`, pkgerrors.ErrCodeInvalidShape},
		{"json scalar", "config.json", `42`, pkgerrors.ErrCodeInvalidShape},
		{"json null", "config.json", `null`, pkgerrors.ErrCodeInvalidShape},
		{"malformed yaml", "config.yaml", "a: [1, 2", pkgerrors.ErrCodeParse},
		{"yaml list", "config.yml", "- a\n- b\n", pkgerrors.ErrCodeInvalidShape},
		{"malformed toml", "config.toml", "a = ", pkgerrors.ErrCodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			raw, err := Load(path)
			if err == nil {
				t.Fatalf("expected error, got %v", raw)
			}
			if !pkgerrors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", pkgerrors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(path)
	if !pkgerrors.Is(err, pkgerrors.ErrCodeFileNotFound) {
		t.Fatalf("expected FILE_NOT_FOUND, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, path) {
		t.Errorf("error %q should name the path", got)
	}
}

func TestLoadExampleConfigs(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "config", "config.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 example configs, found %v", paths)
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			cfg, err := Validate(raw)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if cfg.MaxDepth < 1 || !strings.Contains(cfg.PackageName, ":") {
				t.Errorf("unexpected config: %+v", cfg)
			}
		})
	}
}
