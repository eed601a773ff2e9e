package analysis

import (
	"neksis/internal/ast"
)

// Report bundles the whole-program analyses for one Analyze call. Every call
// builds a fresh report; nothing accumulates on the analyzer between runs.
type Report struct {
	Module        string
	CallGraph     *CallGraph
	DataFlow      *DataFlow
	ControlFlow   *ControlFlow
	Opportunities []*Opportunity
}

// Analyzer runs the whole-program analyses. It holds no state between calls.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze builds the call graph, collects data-flow and control-flow facts
// for every function, and derives optimization opportunities. The program is
// only read, never mutated.
func (a *Analyzer) Analyze(program *ast.Program) *Report {
	module := program.ModuleName()

	dataflow := NewDataFlowAnalyzer(module)
	controlflow := NewControlFlowAnalyzer(module)
	for _, fn := range program.Functions() {
		dataflow.AnalyzeFunction(fn)
		controlflow.AnalyzeFunction(fn)
	}

	report := &Report{
		Module:      module,
		CallGraph:   BuildCallGraph(program),
		DataFlow:    dataflow.Result(),
		ControlFlow: controlflow.Result(),
	}
	report.Opportunities = identifyOpportunities(report)

	return report
}
