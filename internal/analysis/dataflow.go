package analysis

import (
	"neksis/internal/ast"
)

// LiveRange is the interval within one function during which a variable's
// value may still be read. The analyzer emits one degenerate range per
// variable per function (start and end are unlocated placeholders); the range
// granularity is the contract, not the positions.
type LiveRange struct {
	Function Symbol
	Start    ast.Position
	End      ast.Position
}

// LivenessInfo collects the live ranges of one variable name across the
// program, with optional first-definition and last-use locations.
type LivenessInfo struct {
	Variable string
	Ranges   []LiveRange
	FirstDef *ast.Position
	LastUse  *ast.Position
}

// Definition records a let binding whose value may still be in effect later.
type Definition struct {
	Variable string
	Pos      ast.Position
	Snapshot string
}

// DataFlow holds the per-program data-flow facts. Definitions and liveness
// are keyed by plain variable name and accumulate across all functions in the
// run; same-named variables in different functions share an entry.
type DataFlow struct {
	Liveness    map[string]*LivenessInfo
	Definitions map[string][]Definition
	Available   []string
}

// DataFlowAnalyzer makes a single linear collection walk per function. It is
// not an iterative dataflow solver: there is no merging at join points, and
// the facts it reports are approximate.
type DataFlowAnalyzer struct {
	module string
	flow   *DataFlow

	seenExprs map[string]bool
}

func NewDataFlowAnalyzer(module string) *DataFlowAnalyzer {
	return &DataFlowAnalyzer{
		module: module,
		flow: &DataFlow{
			Liveness:    make(map[string]*LivenessInfo),
			Definitions: make(map[string][]Definition),
		},
		seenExprs: make(map[string]bool),
	}
}

// AnalyzeFunction collects liveness ranges, reaching definitions, and
// available expressions from one function body.
func (dfa *DataFlowAnalyzer) AnalyzeFunction(fn *ast.Function) {
	if fn.Body == nil {
		return
	}

	sym := FunctionSymbol(dfa.module, fn)
	ranged := make(map[string]bool)

	dfa.walkExpr(sym, fn.Body, ranged)
}

// Result returns the facts accumulated so far.
func (dfa *DataFlowAnalyzer) Result() *DataFlow {
	return dfa.flow
}

func (dfa *DataFlowAnalyzer) walkStatement(sym Symbol, stmt ast.Statement, ranged map[string]bool) {
	switch node := stmt.(type) {
	case *ast.LetStmt:
		dfa.trackVariable(sym, node.Name.Value, ranged)
		dfa.walkExpr(sym, node.Value, ranged)

	case *ast.AssignStmt:
		dfa.walkExpr(sym, node.Target, ranged)
		dfa.walkExpr(sym, node.Value, ranged)

	case *ast.ReturnStmt:
		dfa.walkExpr(sym, node.Value, ranged)

	case *ast.ExprStmt:
		dfa.walkExpr(sym, node.Expr, ranged)
	}
}

func (dfa *DataFlowAnalyzer) walkExpr(sym Symbol, expr ast.Expr, ranged map[string]bool) {
	if expr == nil {
		return
	}

	switch node := expr.(type) {
	case *ast.IdentExpr:
		dfa.trackVariable(sym, node.Name, ranged)

	case *ast.BinaryExpr:
		dfa.trackAvailable(node)
		dfa.walkExpr(sym, node.Left, ranged)
		dfa.walkExpr(sym, node.Right, ranged)

	case *ast.UnaryExpr:
		dfa.trackAvailable(node)
		dfa.walkExpr(sym, node.Value, ranged)

	case *ast.CallExpr:
		dfa.walkExpr(sym, node.Callee, ranged)
		for _, arg := range node.Args {
			dfa.walkExpr(sym, arg, ranged)
		}

	case *ast.IfExpr:
		dfa.walkExpr(sym, node.Cond, ranged)
		dfa.walkExpr(sym, node.Then, ranged)
		dfa.walkExpr(sym, node.Else, ranged)

	case *ast.WhileExpr:
		dfa.walkExpr(sym, node.Cond, ranged)
		dfa.walkExpr(sym, node.Body, ranged)

	case *ast.BlockExpr:
		// Only lets sitting directly in a block contribute reaching
		// definitions; the liveness walk below still sees everything.
		for _, item := range node.Items {
			if let, ok := item.(*ast.LetStmt); ok {
				dfa.recordDefinition(let)
			}
		}
		for _, item := range node.Items {
			dfa.walkStatement(sym, item, ranged)
		}
		dfa.walkExpr(sym, node.Tail, ranged)
	}
}

// trackVariable notes a variable reference, opening the variable's live range
// for this function on first sight.
func (dfa *DataFlowAnalyzer) trackVariable(sym Symbol, name string, ranged map[string]bool) {
	info := dfa.flow.Liveness[name]
	if info == nil {
		info = &LivenessInfo{Variable: name}
		dfa.flow.Liveness[name] = info
	}

	if !ranged[name] {
		ranged[name] = true
		info.Ranges = append(info.Ranges, LiveRange{Function: sym})
	}
}

func (dfa *DataFlowAnalyzer) recordDefinition(let *ast.LetStmt) {
	name := let.Name.Value
	def := Definition{
		Variable: name,
		Pos:      let.NodePos(),
	}
	if let.Value != nil {
		def.Snapshot = let.Value.String()
	}
	dfa.flow.Definitions[name] = append(dfa.flow.Definitions[name], def)
}

func (dfa *DataFlowAnalyzer) trackAvailable(expr ast.Expr) {
	rendered := expr.String()
	if dfa.seenExprs[rendered] {
		return
	}
	dfa.seenExprs[rendered] = true
	dfa.flow.Available = append(dfa.flow.Available, rendered)
}
