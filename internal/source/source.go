package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/jacobarthurs/qpml/internal/document"
	"github.com/jacobarthurs/qpml/internal/plan"
	"github.com/jacobarthurs/qpml/internal/textplan"
)

// Kind is the shape of an input before it becomes a document.
type Kind string

const (
	KindDocument Kind = "document"
	KindExplain  Kind = "explain"
	KindSQL      Kind = "sql"
	KindText     Kind = "text"
)

type Options struct {
	// Connection supplies the PostgreSQL connection string. It is only
	// called for SQL input, so other inputs never touch profiles.
	Connection func() (string, error)
	Analyze    bool
	Costs      bool

	// Stdin and Prompt default to os.Stdin and os.Stderr.
	Stdin  io.Reader
	Prompt io.Writer
}

func (o Options) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func (o Options) prompt() io.Writer {
	if o.Prompt != nil {
		return o.Prompt
	}
	return os.Stderr
}

type Result struct {
	Document document.Document
	Kind     Kind

	// Reported by PostgreSQL, in milliseconds. Zero for other kinds.
	PlanningTime  float64
	ExecutionTime float64
}

// Resolve reads input ("" for an interactive paste, "-" for stdin, anything
// else is a file path), works out what it holds and turns it into a document.
func Resolve(ctx context.Context, input string, opts Options) (Result, error) {
	data, err := readInput(input, opts)
	if err != nil {
		return Result{}, err
	}
	return Produce(ctx, data, Detect(data, input), opts)
}

// Produce runs the producer for kind over data.
func Produce(ctx context.Context, data []byte, kind Kind, opts Options) (Result, error) {
	res := Result{Kind: kind}
	var err error

	switch kind {
	case KindDocument:
		res.Document, err = document.Decode(data, documentFormat(data))
	case KindExplain:
		var plans []plan.ExplainOutput
		if plans, err = plan.ParseExplainJSON(data); err == nil {
			res.setPlan(plans[0], opts)
		}
	case KindSQL:
		var plans []plan.ExplainOutput
		if plans, err = explain(ctx, data, opts); err == nil {
			res.setPlan(plans[0], opts)
		}
	case KindText:
		res.Document, err = textplan.Parse(bytes.NewReader(data))
	default:
		err = fmt.Errorf("unknown input kind %q", kind)
	}

	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (r *Result) setPlan(out plan.ExplainOutput, opts Options) {
	r.Document = plan.ToDocument(out, plan.ConvertOptions{Costs: opts.Costs})
	r.PlanningTime = out.PlanningTime
	r.ExecutionTime = out.ExecutionTime
}

func explain(ctx context.Context, data []byte, opts Options) ([]plan.ExplainOutput, error) {
	var connStr string
	if opts.Connection != nil {
		c, err := opts.Connection()
		if err != nil {
			return nil, err
		}
		connStr = c
	}
	if connStr == "" {
		return nil, fmt.Errorf("SQL input requires a database connection (use --db or --profile)")
	}

	plans, err := plan.Explain(ctx, connStr, string(data), plan.Options{Analyze: opts.Analyze})
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no query plan returned")
	}
	return plans, nil
}

func readInput(input string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch input {
	case "":
		return readInteractive(opts)
	case "-":
		data, err = io.ReadAll(opts.stdin())
	default:
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", document.ErrInputUnreadable, err)
	}
	return data, nil
}

func readInteractive(opts Options) ([]byte, error) {
	w := opts.prompt()
	fmt.Fprint(w, "Paste a QPML document, EXPLAIN output, plan text or SQL query")
	if runtime.GOOS == "windows" {
		fmt.Fprint(w, " (Ctrl+Z, Enter to submit)\n")
	} else {
		fmt.Fprint(w, " (Ctrl+D to submit)\n")
	}

	data, err := io.ReadAll(opts.stdin())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", document.ErrInputUnreadable, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') && !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: input appears truncated; for large inputs pass a file instead", document.ErrInputUnreadable)
	}
	return data, nil
}

var (
	yamlDiagramKey = regexp.MustCompile(`(?m)^diagram\s*:`)

	// A keyword starts SQL only when a clause follows it; plan roots such
	// as "Values: (...)" or "Update on t" read as text.
	sqlStatement  = regexp.MustCompile(`(?i)^(select|with|insert|update|delete|values|table)(\s+[^:\s]|\s*\()`)
	planOperation = regexp.MustCompile(`(?i)^(insert|update|delete|merge)\s+on\s`)
)

// Detect names the kind of data, trusting the file extension first and
// sniffing the content otherwise.
func Detect(data []byte, name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".qpml", ".yaml", ".yml":
		return KindDocument
	case ".json":
		if hasJSONDiagram(bytes.TrimSpace(data)) {
			return KindDocument
		}
		return KindExplain
	case ".sql":
		return KindSQL
	case ".txt":
		return KindText
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return KindText
	case trimmed[0] == '{' && hasJSONDiagram(trimmed):
		return KindDocument
	case trimmed[0] == '[' || trimmed[0] == '{':
		return KindExplain
	case yamlDiagramKey.Match(trimmed):
		return KindDocument
	case bytes.Contains(trimmed, []byte("(cost=")):
		return KindText
	case sqlStatement.Match(trimmed) && !planOperation.Match(trimmed):
		return KindSQL
	default:
		return KindText
	}
}

func hasJSONDiagram(data []byte) bool {
	if len(data) == 0 || data[0] != '{' {
		return false
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return false
	}
	_, ok := top["diagram"]
	return ok
}

func documentFormat(data []byte) document.Format {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return document.FormatJSON
	}
	return document.FormatYAML
}
