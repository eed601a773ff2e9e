package analysis

import (
	"neksis/internal/ast"
)

// BasicBlock is a straight-line region of a function. Bodies are not split on
// branches: each function gets exactly one block tagged both entry and exit.
type BasicBlock struct {
	Label    string
	Function Symbol
	Entry    bool
	Exit     bool
	Size     int
}

// DominanceInfo maps block labels to their dominator sets within one function.
// With single-block functions every map stays empty; the record exists so
// downstream consumers have a stable shape to read.
type DominanceInfo struct {
	Function   Symbol
	Dominators map[string][]string
}

// LoopInfo describes one syntactic while loop. TripCount stays nil (no trip
// count inference) and Invariants stays empty.
type LoopInfo struct {
	Function   Symbol
	Pos        ast.Position
	TripCount  *int
	Invariants []string
}

// ControlFlow holds the per-program control-flow facts.
type ControlFlow struct {
	Blocks    []*BasicBlock
	Dominance map[Symbol]*DominanceInfo
	Loops     []*LoopInfo
}

// ControlFlowAnalyzer synthesizes the trivial control-flow facts: one block
// per function, empty dominance, and a shallow loop inventory.
type ControlFlowAnalyzer struct {
	module string
	flow   *ControlFlow
}

func NewControlFlowAnalyzer(module string) *ControlFlowAnalyzer {
	return &ControlFlowAnalyzer{
		module: module,
		flow: &ControlFlow{
			Dominance: make(map[Symbol]*DominanceInfo),
		},
	}
}

// AnalyzeFunction records the function's single basic block, its empty
// dominance entry, and any while loops in the top level of its body. Loops
// nested inside if arms, loop bodies, or deeper blocks are not discovered.
func (cfa *ControlFlowAnalyzer) AnalyzeFunction(fn *ast.Function) {
	sym := FunctionSymbol(cfa.module, fn)

	cfa.flow.Blocks = append(cfa.flow.Blocks, &BasicBlock{
		Label:    "entry",
		Function: sym,
		Entry:    true,
		Exit:     true,
		Size:     bodySize(fn.Body),
	})

	cfa.flow.Dominance[sym] = &DominanceInfo{
		Function:   sym,
		Dominators: make(map[string][]string),
	}

	if fn.Body == nil {
		return
	}
	for _, item := range fn.Body.Items {
		if es, ok := item.(*ast.ExprStmt); ok {
			cfa.recordLoop(sym, es.Expr)
		}
	}
	cfa.recordLoop(sym, fn.Body.Tail)
}

// Result returns the facts accumulated so far.
func (cfa *ControlFlowAnalyzer) Result() *ControlFlow {
	return cfa.flow
}

func (cfa *ControlFlowAnalyzer) recordLoop(sym Symbol, expr ast.Expr) {
	loop, ok := expr.(*ast.WhileExpr)
	if !ok {
		return
	}
	cfa.flow.Loops = append(cfa.flow.Loops, &LoopInfo{
		Function: sym,
		Pos:      loop.NodePos(),
	})
}

func bodySize(body *ast.BlockExpr) int {
	if body == nil {
		return 0
	}
	size := len(body.Items)
	if body.Tail != nil {
		size++
	}
	return size
}
