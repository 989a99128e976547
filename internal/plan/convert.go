package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacobarthurs/qpml/internal/document"
)

type ConvertOptions struct {
	// Costs appends the planner estimate to every title, as
	// "(cost=0.00..20.00 rows=1000 width=8)".
	Costs bool
}

// ToDocument maps an EXPLAIN tree onto a QPML document. Each node is styled
// by its lower-cased node type and the document carries DefaultStyles. When
// the output came from EXPLAIN ANALYZE every title also carries the measured
// "(actual time=... rows=... loops=...)", or "(never executed)".
func ToDocument(out ExplainOutput, opts ConvertOptions) document.Document {
	c := converter{opts: opts, analyzed: out.ExecutionTime > 0 || hasActuals(&out.Plan)}
	return document.NewDocument(c.node(&out.Plan), DefaultStyles()...)
}

type converter struct {
	opts     ConvertOptions
	analyzed bool
}

func (c converter) node(n *PlanNode) document.Node {
	node := document.Node{
		Title: c.title(n),
		Style: strings.ToLower(n.NodeType),
	}
	if len(n.Plans) > 0 {
		node.Inputs = make([]document.Node, len(n.Plans))
		for i := range n.Plans {
			node.Inputs[i] = c.node(&n.Plans[i])
		}
	}
	return node
}

func (c converter) title(n *PlanNode) string {
	var stats []string
	if c.opts.Costs {
		stats = append(stats, Estimate(n))
	}
	if c.analyzed {
		stats = append(stats, Actual(n))
	}
	if len(stats) == 0 {
		return Title(n)
	}
	return Title(n) + "  " + strings.Join(stats, " ")
}

func hasActuals(n *PlanNode) bool {
	if n.ActualLoops > 0 {
		return true
	}
	for i := range n.Plans {
		if hasActuals(&n.Plans[i]) {
			return true
		}
	}
	return false
}

// Estimate formats the planner's cost estimate the way text EXPLAIN does.
func Estimate(n *PlanNode) string {
	return fmt.Sprintf("(cost=%.2f..%.2f rows=%d width=%d)", n.StartupCost, n.TotalCost, n.PlanRows, n.PlanWidth)
}

// Actual formats the measured timing of an analyzed node.
func Actual(n *PlanNode) string {
	if n.ActualLoops == 0 {
		return "(never executed)"
	}
	return fmt.Sprintf("(actual time=%.3f..%.3f rows=%s loops=%d)",
		n.ActualStartupTime, n.ActualTotalTime, strconv.FormatFloat(n.ActualRows, 'f', -1, 64), n.ActualLoops)
}

// Title renders a node the way PostgreSQL's text EXPLAIN names it, followed
// by its most selective condition:
//
//	Index Scan using idx_users_email on public.users u: (email = 'a@b.c')
func Title(n *PlanNode) string {
	var sb strings.Builder
	sb.WriteString(operatorName(n))

	if n.IndexName != "" {
		sb.WriteString(" using ")
		sb.WriteString(n.IndexName)
	}
	if target := scanTarget(n); target != "" {
		sb.WriteString(" on ")
		sb.WriteString(target)
	}
	if n.SubplanName != "" {
		sb.WriteString(" (")
		sb.WriteString(n.SubplanName)
		sb.WriteString(")")
	}
	if detail := detail(n); detail != "" {
		sb.WriteString(": ")
		sb.WriteString(detail)
	}
	return sb.String()
}

var aggregateNames = map[string]string{
	"Hashed": "HashAggregate",
	"Sorted": "GroupAggregate",
	"Mixed":  "MixedAggregate",
}

func operatorName(n *PlanNode) string {
	name := n.NodeType
	switch n.NodeType {
	case "Aggregate":
		if s, ok := aggregateNames[n.Strategy]; ok {
			name = s
		}
	case "ModifyTable":
		if n.Operation != "" {
			name = n.Operation
		}
	case "Hash Join", "Merge Join":
		if n.JoinType != "" && n.JoinType != "Inner" {
			name = strings.TrimSuffix(n.NodeType, "Join") + n.JoinType + " Join"
		}
	case "Nested Loop":
		if n.JoinType != "" && n.JoinType != "Inner" {
			name = n.NodeType + " " + n.JoinType + " Join"
		}
	}
	if n.PartialMode != "" && n.PartialMode != "Simple" {
		name = n.PartialMode + " " + name
	}
	return name
}

func scanTarget(n *PlanNode) string {
	var target string
	switch {
	case n.RelationName != "":
		target = n.RelationName
		if n.Schema != "" {
			target = n.Schema + "." + target
		}
	case n.CTEName != "":
		target = n.CTEName
	case n.FunctionName != "":
		target = n.FunctionName
	default:
		return ""
	}
	if n.Alias != "" && n.Alias != n.RelationName && n.Alias != n.CTEName && n.Alias != n.FunctionName {
		target += " " + n.Alias
	}
	return target
}

func detail(n *PlanNode) string {
	for _, cond := range []string{n.HashCond, n.MergeCond, n.IndexCond, n.RecheckCond, n.JoinFilter, n.Filter} {
		if cond != "" {
			return cond
		}
	}
	if len(n.SortKey) > 0 {
		return strings.Join(n.SortKey, ", ")
	}
	if len(n.GroupKey) > 0 {
		return strings.Join(n.GroupKey, ", ")
	}
	return ""
}
