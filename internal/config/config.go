// internal/config/config.go
//
// This package handles configuration and the .workorder directory structure.
// A project that runs workorder gets a .workorder/ folder holding the config
// file and the session log.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/workorder/internal/clipboard"
	"github.com/kingrea/workorder/internal/vocab"
)

const (
	// Dir is the name of the directory we create in each project
	Dir = ".workorder"

	configFileName = "config.yaml"
)

const defaultProjectConfigYAML = `# workorder project configuration
version: 1

# How "copy" reaches the clipboard: auto, system, osc52 or none.
clipboard: auto

# Block generation when a field holds a value that is not in its option list.
strict_vocabulary: false

# Option list overrides. Lists left out keep the built-in options.
# vocabulary:
#   mail_types: [PM Mail, PM S/H, NM Mail, PUB MAIL, LETTERMAIL, METER]
#   departments: [Laser, Press, Jet, Memjet, Inkjet, Fold, Inserting]
`

// ProjectConfig models .workorder/config.yaml.
type ProjectConfig struct {
	Version          int              `yaml:"version"`
	Clipboard        string           `yaml:"clipboard"`
	StrictVocabulary bool             `yaml:"strict_vocabulary"`
	Vocabulary       vocab.Vocabulary `yaml:"vocabulary,omitempty"`
}

// Config holds the runtime configuration for workorder.
type Config struct {
	// ProjectDir is the directory where the user ran `workorder` from
	ProjectDir string

	// ConfigDir is ProjectDir/.workorder
	ConfigDir string

	// Path is the config file that was read, empty when defaults are in use
	Path string

	Project ProjectConfig
}

// InitDir creates the .workorder directory structure in projectDir and
// writes a default config file when none exists.
//
// Structure created:
// .workorder/
// ├── config.yaml
// └── logs/        <- session log
func InitDir(projectDir string) error {
	dir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure %s: %w", dir, err)
	}
	return ensureProjectConfig(filepath.Join(dir, configFileName))
}

// NewConfig loads projectDir/.workorder/config.yaml, falling back to defaults
// when the file is missing.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		ConfigDir:  filepath.Join(projectDir, Dir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.load(cfg.ProjectConfigPath(), true); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads an explicit config file. Unlike NewConfig a missing file is an
// error.
func Load(projectDir, path string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		ConfigDir:  filepath.Join(projectDir, Dir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.load(path, false); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.ConfigDir, "logs")
}

// LogPath returns the session log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), "session.log")
}

// ProjectConfigPath returns the default on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.ConfigDir, configFileName)
}

// Vocabulary returns the built-in option lists with configured overrides applied.
func (c *Config) Vocabulary() vocab.Vocabulary {
	return vocab.Default().Merge(c.Project.Vocabulary)
}

// ClipboardMode returns the configured clipboard mode.
func (c *Config) ClipboardMode() string {
	return c.Project.Clipboard
}

// SetClipboardMode overrides the clipboard mode, typically from a flag.
func (c *Config) SetClipboardMode(mode string) error {
	next := c.Project
	next.Clipboard = mode
	next.normalize()
	if err := next.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Project = next
	return nil
}

// Strict reports whether unknown option values block generation.
func (c *Config) Strict() bool {
	return c.Project.StrictVocabulary
}

func (c *Config) load(path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Path = path
	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:   1,
		Clipboard: clipboard.ModeAuto,
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Clipboard) == "" {
		pc.Clipboard = clipboard.ModeAuto
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Clipboard = strings.ToLower(strings.TrimSpace(pc.Clipboard))
	v := &pc.Vocabulary
	for _, list := range []*[]string{
		&v.MailTypes, &v.ComponentTypes, &v.FinalSizes, &v.PaperTypes, &v.PaperWeights,
		&v.Departments, &v.SpecialRequirements, &v.QCChecklist, &v.ProjectNotes,
	} {
		*list = trimOptions(*list)
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch pc.Clipboard {
	case clipboard.ModeAuto, clipboard.ModeSystem, clipboard.ModeOSC52, clipboard.ModeNone:
	default:
		return fmt.Errorf("clipboard must be one of auto, system, osc52, none (got %q)", pc.Clipboard)
	}
	for _, list := range pc.Vocabulary.Lists() {
		if dup := firstDuplicate(list.Options); dup != "" {
			return fmt.Errorf("vocabulary %s: duplicate option %q", list.Name, dup)
		}
	}
	return nil
}

func trimOptions(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstDuplicate(values []string) string {
	seen := map[string]struct{}{}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v
		}
		seen[v] = struct{}{}
	}
	return ""
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}
