package resources

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultFileMode is used for resource files when none is configured.
const DefaultFileMode os.FileMode = 0o644

// ParseFileMode parses an octal permission string such as "644", "0644" or
// "0o644". An empty string yields DefaultFileMode.
func ParseFileMode(s string) (os.FileMode, error) {
	if s == "" {
		return DefaultFileMode, nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0")
	if digits == "" {
		return 0, fmt.Errorf("invalid file mode %q: no permission bits", s)
	}
	val, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", s, err)
	}
	if val > 0o777 {
		return 0, fmt.Errorf("invalid file mode %q: only permission bits are allowed", s)
	}
	if val&0o600 != 0o600 {
		return 0, fmt.Errorf("invalid file mode %q: owner must be able to read and write", s)
	}
	return os.FileMode(val), nil
}

// FormatFileMode formats mode as a 0-prefixed octal string.
func FormatFileMode(mode os.FileMode) string {
	return fmt.Sprintf("0%o", mode.Perm())
}

// DirModeFor derives a directory mode from a file mode by adding execute
// wherever read is granted.
func DirModeFor(mode os.FileMode) os.FileMode {
	perm := mode.Perm()
	return perm | (perm&0o444)>>2
}
