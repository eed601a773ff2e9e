package optimizer

import "neksis/internal/ast"

// Marking passes annotate the metadata side-table without rewriting the
// tree. Later toolchain stages (and the analysis report) read the tags to
// see what each level considered worth transforming.

const (
	passInlining         = "function-inlining"
	passLoopOptimization = "loop-optimization"
	passCSE              = "common-subexpression-elimination"
	passTailCall         = "tail-call-optimization"
	passVectorization    = "vectorization"
)

// inlineComplexityLimit is the complexity ceiling for call sites the inliner
// marks. It is tighter than the call-graph candidate threshold: a function
// can be an inlining candidate without any of its call sites being marked.
const inlineComplexityLimit = 5

type inliningPass struct{}

func (p *inliningPass) Name() string { return passInlining }

func (p *inliningPass) Description() string {
	return "marks call sites of small functions for inlining"
}

func (p *inliningPass) MinLevel() Level { return LevelStandard }

func (p *inliningPass) Apply(program *ast.Program, stats *Stats) error {
	complexity := make(map[string]int)
	for _, fn := range program.Functions() {
		complexity[fn.Name.Value] = ast.Complexity(fn)
	}

	for _, n := range ast.CollectAllNodes(program) {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			continue
		}
		ident, ok := call.Callee.(*ast.IdentExpr)
		if !ok {
			continue
		}
		if c, known := complexity[ident.Name]; known && c < inlineComplexityLimit {
			ast.TagOptimizationPass(call, passInlining)
			stats.Transformations++
		}
	}
	return nil
}

type loopOptimizationPass struct{}

func (p *loopOptimizationPass) Name() string { return passLoopOptimization }

func (p *loopOptimizationPass) Description() string {
	return "marks loops for unrolling and invariant hoisting"
}

func (p *loopOptimizationPass) MinLevel() Level { return LevelStandard }

func (p *loopOptimizationPass) Apply(program *ast.Program, stats *Stats) error {
	for _, n := range ast.CollectAllNodes(program) {
		if loop, ok := n.(*ast.WhileExpr); ok {
			ast.TagOptimizationPass(loop, passLoopOptimization)
			stats.Transformations++
		}
	}
	return nil
}

type csePass struct{}

func (p *csePass) Name() string { return passCSE }

func (p *csePass) Description() string {
	return "marks repeated binary expressions within a function"
}

func (p *csePass) MinLevel() Level { return LevelStandard }

func (p *csePass) Apply(program *ast.Program, stats *Stats) error {
	for _, fn := range program.Functions() {
		if fn.Body == nil {
			continue
		}
		seen := make(map[string]bool)
		for _, n := range ast.CollectAllNodes(fn.Body) {
			bin, ok := n.(*ast.BinaryExpr)
			if !ok {
				continue
			}
			key := bin.String()
			if seen[key] {
				ast.TagOptimizationPass(bin, passCSE)
				stats.Transformations++
				continue
			}
			seen[key] = true
		}
	}
	return nil
}

type tailCallPass struct{}

func (p *tailCallPass) Name() string { return passTailCall }

func (p *tailCallPass) Description() string {
	return "marks calls in tail position"
}

func (p *tailCallPass) MinLevel() Level { return LevelAggressive }

func (p *tailCallPass) Apply(program *ast.Program, stats *Stats) error {
	for _, fn := range program.Functions() {
		if fn.Body == nil {
			continue
		}
		if call, ok := fn.Body.Tail.(*ast.CallExpr); ok {
			ast.TagOptimizationPass(call, passTailCall)
			stats.Transformations++
		}
		for _, n := range ast.CollectAllNodes(fn.Body) {
			ret, ok := n.(*ast.ReturnStmt)
			if !ok {
				continue
			}
			if call, ok := ret.Value.(*ast.CallExpr); ok {
				ast.TagOptimizationPass(call, passTailCall)
				stats.Transformations++
			}
		}
	}
	return nil
}

type vectorizationPass struct{}

func (p *vectorizationPass) Name() string { return passVectorization }

func (p *vectorizationPass) Description() string {
	return "marks loops whose bodies are straight-line arithmetic"
}

func (p *vectorizationPass) MinLevel() Level { return LevelAggressive }

func (p *vectorizationPass) Apply(program *ast.Program, stats *Stats) error {
	for _, n := range ast.CollectAllNodes(program) {
		loop, ok := n.(*ast.WhileExpr)
		if !ok || !vectorizable(loop) {
			continue
		}
		ast.TagOptimizationPass(loop, passVectorization)
		stats.Transformations++
	}
	return nil
}

// vectorizable reports whether a loop body is a non-empty run of arithmetic
// assignments with no tail value and no control flow.
func vectorizable(loop *ast.WhileExpr) bool {
	body := loop.Body
	if body == nil || len(body.Items) == 0 || body.Tail != nil {
		return false
	}
	for _, item := range body.Items {
		assign, ok := item.(*ast.AssignStmt)
		if !ok || !arithmeticAssign(assign) {
			return false
		}
	}
	return true
}

func arithmeticAssign(assign *ast.AssignStmt) bool {
	switch assign.Operator {
	case ast.PLUS_ASSIGN, ast.MINUS_ASSIGN, ast.STAR_ASSIGN, ast.SLASH_ASSIGN, ast.PERCENT_ASSIGN:
		return true
	case ast.ASSIGN:
		bin, ok := assign.Value.(*ast.BinaryExpr)
		if !ok {
			return false
		}
		switch bin.Op {
		case "+", "-", "*", "/", "%":
			return true
		}
	}
	return false
}
