package analysis

import (
	"fmt"

	"neksis/internal/ast"
)

type OpportunityKind int

const (
	OpportunityInlining OpportunityKind = iota
	OpportunityLoopUnrolling
	OpportunityDeadCode
	OpportunityStrengthReduction
)

func (k OpportunityKind) String() string {
	switch k {
	case OpportunityInlining:
		return "inlining"
	case OpportunityLoopUnrolling:
		return "loop unrolling"
	case OpportunityDeadCode:
		return "dead code elimination"
	case OpportunityStrengthReduction:
		return "strength reduction"
	default:
		return "unknown"
	}
}

// Opportunity is a ranked suggestion derived from the analyses. Opportunities
// are reporting artifacts: the optimizer pipeline does not consume them.
type Opportunity struct {
	Kind                OpportunityKind
	Pos                 ast.Position
	Description         string
	ExpectedImprovement float64
	Confidence          float64
	Hint                string
}

// identifyOpportunities synthesizes opportunity records from an assembled
// report. Rules fire deterministically in insertion order with no
// deduplication; the improvement and confidence figures are fixed estimates.
func identifyOpportunities(report *Report) []*Opportunity {
	var opportunities []*Opportunity

	for _, node := range report.CallGraph.Nodes() {
		if !node.InliningCandidate || node.CallCount == 0 || node.Recursive {
			continue
		}
		opportunities = append(opportunities, &Opportunity{
			Kind: OpportunityInlining,
			Pos:  node.Pos,
			Description: fmt.Sprintf("function '%s' is small (complexity %d) and called %d time(s)",
				node.Symbol, node.Complexity, node.CallCount),
			ExpectedImprovement: 0.15,
			Confidence:          0.8,
			Hint:                "replace call sites with the function body to remove call overhead",
		})
	}

	for _, loop := range report.ControlFlow.Loops {
		opportunities = append(opportunities, &Opportunity{
			Kind:                OpportunityLoopUnrolling,
			Pos:                 loop.Pos,
			Description:         fmt.Sprintf("while loop in '%s' may benefit from unrolling", loop.Function),
			ExpectedImprovement: 0.25,
			Confidence:          0.7,
			Hint:                "unroll small fixed-count loops to reduce branch overhead",
		})
	}

	// Process-level suggestions, emitted once per run regardless of findings.
	opportunities = append(opportunities, &Opportunity{
		Kind:                OpportunityDeadCode,
		Description:         "program may contain unreachable or unused code",
		ExpectedImprovement: 0.05,
		Confidence:          0.9,
		Hint:                "enable dead code elimination to prune unused functions",
	})
	opportunities = append(opportunities, &Opportunity{
		Kind:                OpportunityStrengthReduction,
		Description:         "arithmetic may contain operations with cheaper equivalents",
		ExpectedImprovement: 0.10,
		Confidence:          0.8,
		Hint:                "enable strength reduction to simplify power-of-two multiplications",
	})

	return opportunities
}
