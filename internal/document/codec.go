package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "qpml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid document format %q: must be \"yaml\" or \"json\"", s)
	}
}

// FormatFromPath picks the encoding from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// wireDocument mirrors Document with a pointer root so a missing diagram can
// be told apart from a root with an empty title.
type wireDocument struct {
	Diagram *Node   `yaml:"diagram" json:"diagram"`
	Styles  []Style `yaml:"styles,omitempty" json:"styles,omitempty"`
}

// Read decodes a QPML document from r. Read faults wrap ErrInputUnreadable,
// anything that does not fit the document shape wraps ErrSerialization.
func Read(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	return Decode(data, format)
}

func Decode(data []byte, format Format) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("%w: empty document", ErrSerialization)
	}

	var wire wireDocument
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&wire); err != nil {
			return Document{}, fmt.Errorf("%w: decoding json: %w", ErrSerialization, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%w: trailing data after json document", ErrSerialization)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&wire); err != nil {
			if errors.Is(err, io.EOF) {
				return Document{}, fmt.Errorf("%w: empty document", ErrSerialization)
			}
			return Document{}, fmt.Errorf("%w: decoding yaml: %w", ErrSerialization, err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%w: more than one yaml document", ErrSerialization)
		}
	}

	if wire.Diagram == nil {
		return Document{}, fmt.Errorf("%w: missing diagram", ErrSerialization)
	}
	return Document{Diagram: *wire.Diagram, Styles: wire.Styles}, nil
}

func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
}

func Encode(doc Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads a document file, choosing the encoding from its extension.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: open %s: %w", ErrInputUnreadable, path, err)
	}
	defer f.Close()
	return Read(f, FormatFromPath(path))
}
