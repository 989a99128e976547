package plan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jacobarthurs/qpml/internal/document"
)

// ParseExplainJSON decodes EXPLAIN (FORMAT JSON) output. PostgreSQL wraps the
// plan in a one-element array; a bare object is accepted too.
func ParseExplainJSON(data []byte) ([]ExplainOutput, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single ExplainOutput
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("%w: invalid EXPLAIN JSON: %w", document.ErrSerialization, err)
		}
		return []ExplainOutput{single}, nil
	}

	var plans []ExplainOutput
	if err := json.Unmarshal(trimmed, &plans); err != nil {
		return nil, fmt.Errorf("%w: invalid EXPLAIN JSON: %w", document.ErrSerialization, err)
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("%w: empty EXPLAIN output", document.ErrSerialization)
	}
	return plans, nil
}
