package optimizer

import (
	"neksis/internal/ast"
)

// Pass is a single optimization transformation. Apply mutates the program in
// place and accounts for its work on the shared stats.
type Pass interface {
	Name() string
	Description() string
	MinLevel() Level
	Apply(program *ast.Program, stats *Stats) error
}

// defaultPasses returns the pipeline in its fixed execution order. The
// rewriting passes are constant folding, dead code elimination, and strength
// reduction; the remaining passes locate and mark candidates without
// transforming them.
func defaultPasses() []Pass {
	return []Pass{
		&constantFoldingPass{},
		&deadCodePass{},
		&inliningPass{},
		&loopOptimizationPass{},
		&strengthReductionPass{},
		&csePass{},
		&tailCallPass{},
		&vectorizationPass{},
	}
}
