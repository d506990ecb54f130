package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Save formats accepted by ValidateFormat. Only HWPX is writable by the
// pure engine; the rest exist so requests for them fail with a precise
// message further down the stack rather than here.
var validFormats = map[string]bool{
	"HWP":  true,
	"HWPX": true,
	"HWT":  true,
	"HTML": true,
	"TEXT": true,
	"PDF":  true,
}

// Cursor positions accepted by ValidatePosition. The line/word motions
// are only honored by the native automation engine; the pure engine
// recognizes the document and paragraph motions.
var validPositions = map[string]bool{
	"doc_begin":  true,
	"doc_end":    true,
	"line_begin": true,
	"line_end":   true,
	"para_begin": true,
	"para_end":   true,
	"left":       true,
	"right":      true,
	"up":         true,
	"down":       true,
	"next_para":  true,
	"prev_para":  true,
}

var validAlignments = map[string]bool{
	"left":       true,
	"center":     true,
	"right":      true,
	"justify":    true,
	"distribute": true,
}

// Characters rejected in file base names (Windows restrictions).
const invalidPathChars = `<>:"|?*`

// ValidatePath checks a file path for safety: non-empty, no parent
// directory traversal, no characters invalid on common filesystems.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("format: path cannot be empty")
	}
	normalized := filepath.Clean(path)
	if strings.Contains(normalized, "..") {
		return fmt.Errorf("format: path traversal not allowed: %s", path)
	}
	if strings.ContainsAny(filepath.Base(path), invalidPathChars) {
		return fmt.Errorf("format: path contains invalid characters: %s", filepath.Base(path))
	}
	return nil
}

// ValidateFormat checks a save format name, case-insensitively.
func ValidateFormat(format string) error {
	if !validFormats[strings.ToUpper(format)] {
		return fmt.Errorf("format: invalid format %q", format)
	}
	return nil
}

// ValidatePosition checks a symbolic cursor position name.
func ValidatePosition(position string) error {
	if !validPositions[strings.ToLower(position)] {
		return fmt.Errorf("format: invalid cursor position %q", position)
	}
	return nil
}

// ValidateAlignment checks a paragraph alignment value.
func ValidateAlignment(align string) error {
	if !validAlignments[strings.ToLower(align)] {
		return fmt.Errorf("format: invalid alignment %q", align)
	}
	return nil
}

// ValidateTableDimensions checks table dimensions against the accepted
// ranges: rows in [1,1000], columns in [1,100].
func ValidateTableDimensions(rows, cols int) error {
	switch {
	case rows < 1:
		return fmt.Errorf("format: rows must be at least 1, got %d", rows)
	case cols < 1:
		return fmt.Errorf("format: columns must be at least 1, got %d", cols)
	case rows > 1000:
		return fmt.Errorf("format: rows cannot exceed 1000, got %d", rows)
	case cols > 100:
		return fmt.Errorf("format: columns cannot exceed 100, got %d", cols)
	}
	return nil
}
