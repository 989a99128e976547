package document

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// StyleSheet is a standalone style table kept in TOML:
//
//	[[style]]
//	name = "table"
//	color = "lightblue"
//	shape = "rectangle"
type StyleSheet struct {
	Styles []Style `toml:"style"`
}

func ReadStyleSheet(r io.Reader) ([]Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	var sheet StyleSheet
	md, err := toml.Decode(string(data), &sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding style sheet: %w", ErrSerialization, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown style sheet keys: %s", ErrSerialization, strings.Join(keys, ", "))
	}
	return sheet.Styles, nil
}

func LoadStyleSheet(path string) ([]Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrInputUnreadable, path, err)
	}
	defer f.Close()
	return ReadStyleSheet(f)
}

// WithStyles returns a copy of d whose style table is base followed by d's own
// styles, so the document's definitions win when names collide.
func (d Document) WithStyles(base ...Style) Document {
	if len(base) == 0 {
		return d
	}
	merged := make([]Style, 0, len(base)+len(d.Styles))
	merged = append(merged, base...)
	merged = append(merged, d.Styles...)
	return Document{Diagram: d.Diagram, Styles: merged}
}
