package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/xlab/treeprint"

	"neksis/internal/analysis"
	"neksis/internal/optimizer"
)

// RenderAnalysis formats a full analysis report for console or log output:
// the call graph as a tree, the data-flow and control-flow facts, and the
// opportunity list.
func RenderAnalysis(r *analysis.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "analysis of module '%s'\n\n", r.Module)
	b.WriteString(renderCallGraph(r.CallGraph))
	b.WriteString("\n")
	b.WriteString(renderDataFlow(r.DataFlow))
	b.WriteString("\n")
	b.WriteString(renderControlFlow(r.ControlFlow))
	b.WriteString("\n")
	b.WriteString(renderOpportunities(r.Opportunities))

	return b.String()
}

func renderCallGraph(graph *analysis.CallGraph) string {
	nodes := graph.Nodes()
	tree := treeprint.NewWithRoot(fmt.Sprintf("call graph (%s)",
		english.Plural(len(nodes), "function", "")))

	for _, node := range nodes {
		branch := tree.AddBranch(describeNode(node))
		for _, callee := range calleesOf(graph, node.Symbol) {
			branch.AddNode(fmt.Sprintf("calls %s (%s)", callee,
				english.Plural(graph.EdgeFrequency(node.Symbol, callee), "site", "")))
		}
	}

	return tree.String()
}

func describeNode(node *analysis.CallGraphNode) string {
	details := []string{
		fmt.Sprintf("complexity %d", node.Complexity),
		english.Plural(node.CallCount, "call", ""),
	}
	if node.InliningCandidate {
		details = append(details, "inline candidate")
	}
	if node.Recursive {
		details = append(details, "recursive")
	}
	return fmt.Sprintf("%s  [%s]", node.Symbol, strings.Join(details, ", "))
}

// calleesOf returns the distinct callees of a function in edge discovery
// order. Per-site edges are aggregated for display only.
func calleesOf(graph *analysis.CallGraph, caller analysis.Symbol) []analysis.Symbol {
	var callees []analysis.Symbol
	seen := make(map[analysis.Symbol]bool)
	for _, edge := range graph.Edges() {
		if edge.Caller != caller || seen[edge.Callee] {
			continue
		}
		seen[edge.Callee] = true
		callees = append(callees, edge.Callee)
	}
	return callees
}

func renderDataFlow(flow *analysis.DataFlow) string {
	defs := 0
	for _, list := range flow.Definitions {
		defs += len(list)
	}

	var b strings.Builder
	b.WriteString("data flow\n")
	fmt.Fprintf(&b, "  variables tracked:     %s\n", humanize.Comma(int64(len(flow.Liveness))))
	fmt.Fprintf(&b, "  definitions recorded:  %s\n", humanize.Comma(int64(defs)))
	fmt.Fprintf(&b, "  available expressions: %s\n", humanize.Comma(int64(len(flow.Available))))
	for _, expr := range flow.Available {
		fmt.Fprintf(&b, "    %s\n", expr)
	}
	return b.String()
}

func renderControlFlow(flow *analysis.ControlFlow) string {
	var b strings.Builder
	b.WriteString("control flow\n")
	fmt.Fprintf(&b, "  basic blocks: %s\n", humanize.Comma(int64(len(flow.Blocks))))
	fmt.Fprintf(&b, "  loops:        %s\n", humanize.Comma(int64(len(flow.Loops))))
	for _, loop := range flow.Loops {
		fmt.Fprintf(&b, "    while loop in %s at %d:%d\n", loop.Function, loop.Pos.Line, loop.Pos.Column)
	}
	return b.String()
}

func renderOpportunities(opportunities []*analysis.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "opportunities (%d)\n", len(opportunities))
	for i, opp := range opportunities {
		fmt.Fprintf(&b, "  %d. [%s] %s (%.0f%% improvement, %.0f%% confidence)\n",
			i+1, opp.Kind, opp.Description, opp.ExpectedImprovement*100, opp.Confidence*100)
		if opp.Hint != "" {
			fmt.Fprintf(&b, "     hint: %s\n", opp.Hint)
		}
	}
	return b.String()
}

// RenderStats formats the outcome of one Optimize call.
func RenderStats(stats *optimizer.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "optimization: %s applied, %s\n",
		english.Plural(len(stats.PassesApplied), "pass", "passes"),
		english.Plural(stats.Transformations, "transformation", ""))
	for i, name := range stats.PassesApplied {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintf(&b, "  program size: %s before, %s after\n",
		humanize.Comma(int64(stats.SizeBefore)), humanize.Comma(int64(stats.SizeAfter)))
	fmt.Fprintf(&b, "  elapsed: %s\n", stats.Elapsed)
	return b.String()
}

// RenderDiff produces a unified diff of the printed program before and after
// optimization. An empty string means the passes changed nothing visible.
func RenderDiff(name, before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name + " (before)",
		ToFile:   name + " (after)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
