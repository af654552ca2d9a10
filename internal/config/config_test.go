package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvOutputDir, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, magic.SectionOffset, cfg.SectionOffset)
	assert.Equal(t, os.FileMode(0o644), cfg.Mode())
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	path := writeFile(t, "spellforge.yaml", `
kernel: kernel.bin
section_offset: 0x0300
record_count: 4
output_dir: build
basename: spells
primary_language: fr
file_mode: "0600"
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kernel.bin", cfg.Kernel)
	assert.Equal(t, 0x0300, cfg.SectionOffset)
	assert.Equal(t, 4, cfg.RecordCount)
	assert.Equal(t, magic.RecordSize, cfg.RecordStride)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, "spells", cfg.Basename)
	assert.Equal(t, "fr", cfg.PrimaryLanguage)
	assert.Equal(t, os.FileMode(0o600), cfg.Mode())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadOutputDirFromEnv(t *testing.T) {
	t.Setenv(EnvOutputDir, "/tmp/spellforge-out")
	path := writeFile(t, "spellforge.yaml", "output_dir: build\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/spellforge-out", cfg.OutputDir)
}

func TestLoadRejects(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown field", content: "kernal: x.bin\n", want: "kernal"},
		{name: "short stride", content: "record_stride: 12\n", want: "record_stride"},
		{name: "negative offset", content: "section_offset: -1\n", want: "section_offset"},
		{name: "bad mode", content: "file_mode: \"0999\"\n", want: "file mode"},
		{name: "empty basename", content: "basename: \"\"\n", want: "basename"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvOutputDir, "")
			_, err := Load(writeFile(t, "spellforge.yaml", tc.content))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open config")
}

func TestLoadTranslations(t *testing.T) {
	path := writeFile(t, "translations.yaml", `
primary: en
spells:
  - index: 3
    text:
      en: {name: Fire, description: Fire damage}
      de: {name: Feuer, description: Feuerschaden}
  - index: 9
    text:
      en: {name: Cure, description: Restores HP}
`)

	tr, err := LoadTranslations(path)
	require.NoError(t, err)
	assert.Equal(t, "en", tr.Primary)
	require.Len(t, tr.Spells, 2)
	assert.Equal(t, 3, tr.Spells[0].Index)
	assert.Equal(t, "Feuer", tr.Spells[0].Translations["de"].Name)
	assert.Equal(t, "Restores HP", tr.Spells[1].Translations["en"].Description)
}

func TestLoadTranslationsRejects(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no spells", content: "primary: en\n", want: "define no spells"},
		{name: "duplicate index", content: "spells:\n  - index: 1\n  - index: 1\n", want: "listed twice"},
		{name: "not yaml", content: "spells: [\n", want: "failed to parse"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTranslations(writeFile(t, "translations.yaml", tc.content))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
