// Package resources writes exported binary and per-language text resources.
package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// BinaryName is the file name of the exported binary section.
func BinaryName(basename string) string {
	return basename + ".bin"
}

// LanguageName is the file name of one language's text resource.
func LanguageName(basename, lang string) string {
	return fmt.Sprintf("%s_%s.bin", basename, lang)
}

// Writer places resource files under one output directory.
type Writer struct {
	dir    string
	mode   os.FileMode
	logger hclog.Logger
}

// NewWriter creates dir if needed and returns a writer for it.
func NewWriter(dir string, mode os.FileMode, logger hclog.Logger) (*Writer, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if mode == 0 {
		mode = DefaultFileMode
	}
	if err := os.MkdirAll(dir, DirModeFor(mode)); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir, mode: mode, logger: logger}, nil
}

// Dir is the output directory.
func (w *Writer) Dir() string { return w.dir }

// Path joins name onto the output directory.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Write stores data under name atomically: the content goes to a temp file in
// the same directory which is then renamed over the target.
func (w *Writer) Write(name string, data []byte) (string, error) {
	target := w.Path(name)

	tmp, err := os.CreateTemp(w.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpPath, w.mode); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to set mode on %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}

	w.logger.Debug("💾 Wrote resource", "path", target, "size", len(data), "mode", FormatFileMode(w.mode))
	return target, nil
}
