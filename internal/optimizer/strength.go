package optimizer

import (
	"strconv"

	"neksis/internal/ast"
)

const passStrengthReduction = "strength-reduction"

// strengthReductionPass rewrites multiplications by a literal power of two
// into their shift form: the right operand becomes the shift amount. The
// operator tag is left alone so printers keep rendering the expression with
// its original spelling.
type strengthReductionPass struct{}

func (p *strengthReductionPass) Name() string { return passStrengthReduction }

func (p *strengthReductionPass) Description() string {
	return "replaces multiplications by powers of two with shifts"
}

func (p *strengthReductionPass) MinLevel() Level { return LevelStandard }

func (p *strengthReductionPass) Apply(program *ast.Program, stats *Stats) error {
	for _, n := range ast.CollectAllNodes(program) {
		bin, ok := n.(*ast.BinaryExpr)
		if !ok || bin.Op != "*" {
			continue
		}
		lit, ok := bin.Right.(*ast.IntLit)
		if !ok || !isPowerOfTwo(lit.Value) {
			continue
		}

		shift := log2(lit.Value)
		reduced := &ast.IntLit{
			Pos:     lit.NodePos(),
			EndPos:  lit.NodeEndPos(),
			Value:   shift,
			Literal: strconv.FormatInt(shift, 10),
		}
		reduced.SetMetadata(lit.GetMetadata())
		bin.Right = reduced

		ast.TagOptimizationPass(bin, passStrengthReduction)
		stats.Transformations++
	}
	return nil
}

// isPowerOfTwo reports whether v is 2^k for k >= 1. Multiplication by one is
// left for other passes; rewriting it here would turn x * 1 into x * 0.
func isPowerOfTwo(v int64) bool {
	return v >= 2 && v&(v-1) == 0
}

func log2(v int64) int64 {
	var k int64
	for v > 1 {
		v >>= 1
		k++
	}
	return k
}
