// Package config loads the spellforge project file and translation sources.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/provide-io/spellforge/go/spellforge/internal/resources"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/layout"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

const (
	EnvOutputDir = "SPELLFORGE_OUTPUT_DIR"

	DefaultBasename        = "magic"
	DefaultOutputDir       = "out"
	DefaultPrimaryLanguage = "en"
	DefaultFileMode        = "0644"
)

// Config is the project file.
type Config struct {
	Kernel          string `yaml:"kernel,omitempty"`
	SectionOffset   int    `yaml:"section_offset,omitempty"`
	RecordCount     int    `yaml:"record_count,omitempty"`
	RecordStride    int    `yaml:"record_stride,omitempty"`
	TextBase        int    `yaml:"text_base,omitempty"`
	OutputDir       string `yaml:"output_dir,omitempty"`
	Basename        string `yaml:"basename,omitempty"`
	PrimaryLanguage string `yaml:"primary_language,omitempty"`
	Workers         int    `yaml:"workers,omitempty"`
	FileMode        string `yaml:"file_mode,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
}

// Default returns the retail kernel layout.
func Default() Config {
	return Config{
		SectionOffset:   magic.SectionOffset,
		RecordCount:     magic.RecordCount,
		RecordStride:    magic.RecordSize,
		TextBase:        magic.TextBlobBase,
		OutputDir:       DefaultOutputDir,
		Basename:        DefaultBasename,
		PrimaryLanguage: DefaultPrimaryLanguage,
		FileMode:        DefaultFileMode,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// SPELLFORGE_OUTPUT_DIR overrides output_dir.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to open config: %w", err)
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(f)

		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputDir = dir
	}
	return cfg, cfg.Validate()
}

// Validate checks the values a run depends on.
func (c Config) Validate() error {
	if c.SectionOffset < 0 {
		return fmt.Errorf("section_offset must not be negative, got %d", c.SectionOffset)
	}
	if c.RecordCount < 0 {
		return fmt.Errorf("record_count must not be negative, got %d", c.RecordCount)
	}
	if c.RecordStride < magic.RecordSize {
		return fmt.Errorf("record_stride must be at least %d, got %d", magic.RecordSize, c.RecordStride)
	}
	if c.TextBase < 0 {
		return fmt.Errorf("text_base must not be negative, got %d", c.TextBase)
	}
	if c.Basename == "" {
		return fmt.Errorf("basename must not be empty")
	}
	if c.PrimaryLanguage == "" {
		return fmt.Errorf("primary_language must not be empty")
	}
	if _, err := resources.ParseFileMode(c.FileMode); err != nil {
		return err
	}
	return nil
}

// Mode returns the parsed file_mode.
func (c Config) Mode() os.FileMode {
	mode, err := resources.ParseFileMode(c.FileMode)
	if err != nil {
		return resources.DefaultFileMode
	}
	return mode
}

// Translations is the translation source file.
type Translations struct {
	Primary string             `yaml:"primary,omitempty"`
	Spells  []layout.SpellText `yaml:"spells"`
}

// LoadTranslations reads a translation source file.
func LoadTranslations(path string) (*Translations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations: %w", err)
	}

	var t Translations
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse translations %s: %w", path, err)
	}
	if len(t.Spells) == 0 {
		return nil, fmt.Errorf("translations %s define no spells", path)
	}

	seen := make(map[int]bool, len(t.Spells))
	for _, s := range t.Spells {
		if seen[s.Index] {
			return nil, fmt.Errorf("translations %s: spell %d listed twice", path, s.Index)
		}
		seen[s.Index] = true
	}
	return &t, nil
}
