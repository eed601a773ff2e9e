package optimizer

import "neksis/internal/ast"

const passDeadCode = "dead-code-elimination"

// deadCodePass removes function declarations that are unreachable from the
// program's declared functions.
type deadCodePass struct{}

func (p *deadCodePass) Name() string { return passDeadCode }

func (p *deadCodePass) Description() string {
	return "removes functions that are never reached"
}

func (p *deadCodePass) MinLevel() Level { return LevelBasic }

func (p *deadCodePass) Apply(program *ast.Program, stats *Stats) error {
	// Every declared function counts as a root, so the call walk below can
	// only re-add names that are already reachable.
	reachable := make(map[string]bool)
	for _, fn := range program.Functions() {
		reachable[fn.Name.Value] = true
	}
	for _, fn := range program.Functions() {
		if fn.Body != nil {
			markCallees(fn.Body, reachable)
		}
	}

	kept := program.Stmts[:0]
	for _, stmt := range program.Stmts {
		if fn, ok := stmt.(*ast.Function); ok && !reachable[fn.Name.Value] {
			ast.MarkOptimizedOut(fn, passDeadCode, nil, false, "")
			stats.Transformations++
			continue
		}
		kept = append(kept, stmt)
	}
	program.Stmts = kept
	return nil
}

func markCallees(node ast.Node, reachable map[string]bool) {
	for _, n := range ast.CollectAllNodes(node) {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			continue
		}
		if ident, ok := call.Callee.(*ast.IdentExpr); ok {
			reachable[ident.Name] = true
		}
	}
}
