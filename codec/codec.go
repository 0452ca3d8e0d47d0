package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Encode writes doc to w in format f.
func Encode(w io.Writer, f Format, doc *Document) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case YAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if _, err = w.Write(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case TOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return fmt.Errorf("encode: %w", ErrUnknownFormat)
	}

	return nil
}

// Decode reads a Document in format f from r and validates it.
// Unknown fields are rejected in every format.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if err = yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown keys %v: %w", undecoded, ErrInvalidDocument)
		}
	default:
		return nil, fmt.Errorf("decode: %w", ErrUnknownFormat)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}

	return &doc, nil
}

// ReadFile decodes the document at path, choosing the format by extension.
func ReadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// WriteFile encodes doc to path, choosing the format by extension.
func WriteFile(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
