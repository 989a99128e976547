package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Options struct {
	// Analyze runs the statement to collect actual timings. Without it the
	// statement is only planned.
	Analyze bool
}

func explainPrefix(opts Options) string {
	if opts.Analyze {
		return "EXPLAIN (ANALYZE, VERBOSE, BUFFERS, FORMAT JSON) "
	}
	return "EXPLAIN (VERBOSE, FORMAT JSON) "
}

// Explain asks PostgreSQL for the plan of sql. The work happens inside a
// transaction that is always rolled back, so ANALYZE of a write leaves no trace.
func Explain(ctx context.Context, dbConn string, sql string, opts Options) ([]ExplainOutput, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return nil, fmt.Errorf("empty SQL input")
	}
	if strings.HasPrefix(strings.ToUpper(trimmed), "EXPLAIN") {
		return nil, fmt.Errorf("input should not include EXPLAIN prefix - provide the raw query only")
	}

	conn, err := pgx.Connect(ctx, dbConn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var jsonStr string
	err = tx.QueryRow(ctx, explainPrefix(opts)+strings.TrimSuffix(trimmed, ";")).Scan(&jsonStr)
	if err != nil {
		return nil, fmt.Errorf("executing EXPLAIN: %w", err)
	}

	return ParseExplainJSON([]byte(jsonStr))
}
