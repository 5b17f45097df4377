package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if c.ClipboardMode() != "auto" {
		t.Fatalf("expected auto clipboard, got %q", c.ClipboardMode())
	}
	if c.Strict() {
		t.Fatalf("strict vocabulary must default to off")
	}
	if c.Path != "" {
		t.Fatalf("expected no config path, got %s", c.Path)
	}
	if got := c.Vocabulary().MailTypes[0]; got != "PM Mail" {
		t.Fatalf("expected built-in mail types, got %q", got)
	}
}

func TestInitDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitDir(projectDir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, Dir, "logs")); err != nil {
		t.Fatalf("expected logs dir: %v", err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if c.Path == "" {
		t.Fatalf("expected default config file to be read")
	}
	if c.ClipboardMode() != "auto" || c.Strict() {
		t.Fatalf("default file should match defaults: %+v", c.Project)
	}

	// a second init keeps user edits
	custom := []byte("version: 1\nclipboard: none\n")
	if err := os.WriteFile(c.ProjectConfigPath(), custom, 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitDir(projectDir); err != nil {
		t.Fatalf("InitDir again: %v", err)
	}
	data, err := os.ReadFile(c.ProjectConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatalf("InitDir overwrote existing config")
	}
}

func TestLoadParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	path := filepath.Join(projectDir, "workorder.yaml")
	configYAML := strings.TrimSpace(`
version: 1
clipboard: " OSC52 "
strict_vocabulary: true
vocabulary:
  mail_types:
    - FIRST CLASS
    - "  "
    - STANDARD
  departments: [Laser]
`)
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(projectDir, path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.ClipboardMode() != "osc52" {
		t.Fatalf("expected normalized clipboard mode, got %q", c.ClipboardMode())
	}
	if !c.Strict() {
		t.Fatalf("expected strict vocabulary")
	}
	v := c.Vocabulary()
	if len(v.MailTypes) != 2 || v.MailTypes[1] != "STANDARD" {
		t.Fatalf("unexpected mail types: %v", v.MailTypes)
	}
	if len(v.Departments) != 1 {
		t.Fatalf("unexpected departments: %v", v.Departments)
	}
	if len(v.PaperTypes) == 0 {
		t.Fatalf("paper types should keep defaults")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]string{
		"clipboard":  "version: 1\nclipboard: fax\n",
		"duplicates": "version: 1\nvocabulary:\n  departments: [Laser, Laser]\n",
		"version":    "version: -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(t.TempDir(), path); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestSetClipboardMode(t *testing.T) {
	c, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetClipboardMode("System"); err != nil {
		t.Fatalf("SetClipboardMode: %v", err)
	}
	if c.ClipboardMode() != "system" {
		t.Fatalf("got %q", c.ClipboardMode())
	}
	if err := c.SetClipboardMode("fax"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if c.ClipboardMode() != "system" {
		t.Fatalf("failed update must not change the mode")
	}
}
