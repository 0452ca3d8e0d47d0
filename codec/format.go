package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// maps to no codec.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrInvalidDocument is returned when a decoded document is structurally
	// unusable (missing or ragged matrices, assignments of the wrong length).
	ErrInvalidDocument = errors.New("codec: invalid document")
)

// Format identifies a serialization.
type Format int

const (
	// JSON is encoding/json with indentation.
	JSON Format = iota
	// YAML uses flow style for matrix rows.
	YAML
	// TOML stores matrices as nested arrays.
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "json", "yaml"/"yml" or "toml" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("format %q: %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}
