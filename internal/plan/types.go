package plan

// PlanNode is one node of PostgreSQL's EXPLAIN (FORMAT JSON) output. Only the
// fields that feed node titles and styles are decoded.
type PlanNode struct {
	NodeType    string `json:"Node Type"`
	SubplanName string `json:"Subplan Name,omitempty"`
	Strategy    string `json:"Strategy,omitempty"`
	PartialMode string `json:"Partial Mode,omitempty"`
	Operation   string `json:"Operation,omitempty"`

	StartupCost float64 `json:"Startup Cost"`
	TotalCost   float64 `json:"Total Cost"`
	PlanRows    int64   `json:"Plan Rows"`
	PlanWidth   int64   `json:"Plan Width"`

	// Present only with ANALYZE. Actual Rows is fractional from PostgreSQL 18.
	ActualStartupTime float64 `json:"Actual Startup Time,omitempty"`
	ActualTotalTime   float64 `json:"Actual Total Time,omitempty"`
	ActualRows        float64 `json:"Actual Rows,omitempty"`
	ActualLoops       int64   `json:"Actual Loops,omitempty"`

	Schema       string `json:"Schema,omitempty"`
	RelationName string `json:"Relation Name,omitempty"`
	Alias        string `json:"Alias,omitempty"`
	IndexName    string `json:"Index Name,omitempty"`
	CTEName      string `json:"CTE Name,omitempty"`
	FunctionName string `json:"Function Name,omitempty"`

	// Conditions, in the order they are tried for a node title
	HashCond    string `json:"Hash Cond,omitempty"`
	MergeCond   string `json:"Merge Cond,omitempty"`
	IndexCond   string `json:"Index Cond,omitempty"`
	RecheckCond string `json:"Recheck Cond,omitempty"`
	JoinFilter  string `json:"Join Filter,omitempty"`
	Filter      string `json:"Filter,omitempty"`

	JoinType string   `json:"Join Type,omitempty"`
	SortKey  []string `json:"Sort Key,omitempty"`
	GroupKey []string `json:"Group Key,omitempty"`

	Plans []PlanNode `json:"Plans,omitempty"`
}

// ExplainOutput represents the top-level EXPLAIN JSON output from PostgreSQL.
type ExplainOutput struct {
	Plan          PlanNode `json:"Plan"`
	PlanningTime  float64  `json:"Planning Time,omitempty"`
	ExecutionTime float64  `json:"Execution Time,omitempty"`
}
