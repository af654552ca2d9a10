package resources

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bytedance/sonic"
)

// ManifestName is the file name of the export manifest.
func ManifestName(basename string) string {
	return basename + ".manifest.json"
}

// ManifestEntry describes one written resource.
type ManifestEntry struct {
	File     string `json:"file"`
	Language string `json:"language,omitempty"`
	Size     int    `json:"size"`
	SHA256   string `json:"sha256"`
	Adler32  string `json:"adler32"`
}

// Manifest lists everything an export produced.
type Manifest struct {
	Basename  string          `json:"basename"`
	Primary   string          `json:"primary_language"`
	Languages []string        `json:"languages"`
	Spells    []int           `json:"spells"`
	Created   string          `json:"created"`
	Files     []ManifestEntry `json:"files"`
}

// NewManifest starts a manifest for an export run.
func NewManifest(basename, primary string, languages []string, spells []int) *Manifest {
	return &Manifest{
		Basename:  basename,
		Primary:   primary,
		Languages: languages,
		Spells:    spells,
		Created:   time.Now().UTC().Format(time.RFC3339),
	}
}

// Add records a written file.
func (m *Manifest) Add(file, language string, data []byte) {
	m.Files = append(m.Files, ManifestEntry{
		File:     file,
		Language: language,
		Size:     len(data),
		SHA256:   CalculateChecksum(data, ChecksumSHA256),
		Adler32:  CalculateChecksum(data, ChecksumAdler32),
	})
}

// Marshal encodes the manifest as indented JSON with files sorted by name.
func (m *Manifest) Marshal() ([]byte, error) {
	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].File < m.Files[j].File })
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteManifest stores m next to the resources it describes.
func (w *Writer) WriteManifest(m *Manifest) (string, error) {
	data, err := m.Marshal()
	if err != nil {
		return "", err
	}
	return w.Write(ManifestName(m.Basename), data)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := sonic.ConfigStd.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}
	return &m, nil
}
