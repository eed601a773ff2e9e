package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neksis/internal/ast"
)

func applyFolding(t *testing.T, program *ast.Program) *Stats {
	t.Helper()
	stats := &Stats{}
	require.NoError(t, (&constantFoldingPass{}).Apply(program, stats))
	return stats
}

func TestFoldIntArithmetic(t *testing.T) {
	program := parseProgram(t, `fn main() -> Int { 2 + 3 * 4 }`)

	stats := applyFolding(t, program)
	assert.Equal(t, 2, stats.Transformations)

	lit, ok := program.Functions()[0].Body.Tail.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(14), lit.Value)
	assert.Equal(t, "14", lit.Literal)
}

func TestFoldIntOperators(t *testing.T) {
	cases := map[string]int64{
		`fn main() -> Int { 10 + 3 }`: 13,
		`fn main() -> Int { 10 - 3 }`: 7,
		`fn main() -> Int { 10 * 3 }`: 30,
		`fn main() -> Int { 10 / 3 }`: 3,
		`fn main() -> Int { 10 % 3 }`: 1,
	}

	for source, want := range cases {
		program := parseProgram(t, source)
		applyFolding(t, program)

		lit, ok := program.Functions()[0].Body.Tail.(*ast.IntLit)
		require.True(t, ok, source)
		assert.Equal(t, want, lit.Value, source)
	}
}

func TestFoldNegativeDivisionTruncatesTowardZero(t *testing.T) {
	program := parseProgram(t, `fn main() -> Int { -7 / 2 }`)

	stats := applyFolding(t, program)
	assert.Equal(t, 2, stats.Transformations)

	lit, ok := program.Functions()[0].Body.Tail.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(-3), lit.Value)
}

func TestFoldFloatArithmetic(t *testing.T) {
	program := parseProgram(t, `fn main() -> Float { 1.5 + 2.25 }`)

	stats := applyFolding(t, program)
	assert.Equal(t, 1, stats.Transformations)

	lit, ok := program.Functions()[0].Body.Tail.(*ast.FloatLit)
	require.True(t, ok)
	assert.Equal(t, 3.75, lit.Value)
	assert.Equal(t, "3.75", lit.Literal)
}

func TestFoldUnaryOperators(t *testing.T) {
	program := parseProgram(t, `
fn a() -> Bool { !true }

fn b() -> Float { -3.5 }
`)

	stats := applyFolding(t, program)
	assert.Equal(t, 2, stats.Transformations)

	boolLit, ok := program.Functions()[0].Body.Tail.(*ast.BoolLit)
	require.True(t, ok)
	assert.False(t, boolLit.Value)

	floatLit, ok := program.Functions()[1].Body.Tail.(*ast.FloatLit)
	require.True(t, ok)
	assert.Equal(t, -3.5, floatLit.Value)
}

func TestFoldSkipsNonLiteralOperands(t *testing.T) {
	program := parseProgram(t, `fn main(x: Int) -> Int { x + 3 }`)

	stats := applyFolding(t, program)
	assert.Zero(t, stats.Transformations)

	_, ok := program.Functions()[0].Body.Tail.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestFoldSkipsMixedNumericKinds(t *testing.T) {
	program := parseProgram(t, `fn main() -> Float { 1 + 2.5 }`)

	stats := applyFolding(t, program)
	assert.Zero(t, stats.Transformations)
}

func TestFoldLeavesComparisonsAndBooleans(t *testing.T) {
	program := parseProgram(t, `
fn a() -> Bool { 2 < 3 }

fn b() -> Bool { true && false }
`)

	stats := applyFolding(t, program)
	assert.Zero(t, stats.Transformations)
}

func TestFoldReachesEveryConstruct(t *testing.T) {
	program := parseProgram(t, `
fn helper(a: Int) -> Int { return a + 0 * 5; }

fn main() -> Int {
    let x = 1 + 1;
    let mut y = 0;
    y = 2 * 2;
    if 1 + 1 < 3 { y += 1; };
    while 1 + 2 < 2 { y -= 1; }
    helper(3 + 4)
}
`)

	stats := applyFolding(t, program)
	assert.Equal(t, 6, stats.Transformations)

	rendered := program.String()
	assert.Contains(t, rendered, "let x = 2;")
	assert.Contains(t, rendered, "y = 4;")
	assert.Contains(t, rendered, "(2 < 3)")
	assert.Contains(t, rendered, "(3 < 2)")
	assert.Contains(t, rendered, "helper(7)")
}

func TestFoldIsIdempotent(t *testing.T) {
	program := parseProgram(t, `fn main() -> Int { 2 + 3 * 4 - 6 / 2 }`)

	first := applyFolding(t, program)
	assert.Equal(t, 4, first.Transformations)
	rendered := program.String()

	again := applyFolding(t, program)
	assert.Zero(t, again.Transformations)
	assert.Equal(t, rendered, program.String())
}

func TestFoldRecordsMetadataTrail(t *testing.T) {
	program := parseProgram(t, `fn main() -> Int { 2 + 3 }`)
	applyFolding(t, program)

	lit, ok := program.Functions()[0].Body.Tail.(*ast.IntLit)
	require.True(t, ok)

	meta := lit.GetMetadata()
	require.NotNil(t, meta)
	assert.NotZero(t, meta.NodeID)

	require.NotNil(t, meta.CompilationInfo)
	info := meta.CompilationInfo.OptimizationInfo
	require.NotNil(t, info)
	assert.True(t, info.OptimizedOut)
	assert.True(t, info.ConstantFolded)
	assert.Equal(t, "(2 + 3)", info.OriginalValue)
	assert.Contains(t, info.OptimizationPasses, "constant-folding")
}

func TestFoldDivisionByZeroIsFatal(t *testing.T) {
	sources := []string{
		`fn main() -> Int { 5 / 0 }`,
		`fn main() -> Int { 7 % 0 }`,
		`fn main() -> Float { 1.5 / 0.0 }`,
	}

	for _, source := range sources {
		program := parseProgram(t, source)
		stats := &Stats{}
		err := (&constantFoldingPass{}).Apply(program, stats)
		require.Error(t, err, source)
		assert.ErrorIs(t, err, ErrDivisionByZero, source)
	}
}

func TestFoldStopsAtFirstError(t *testing.T) {
	program := parseProgram(t, `
fn main() -> Int {
    let a = 1 + 2;
    let b = 5 / 0;
    let c = 3 + 4;
    b
}
`)

	stats := &Stats{}
	err := (&constantFoldingPass{}).Apply(program, stats)
	require.Error(t, err)
	assert.Equal(t, 1, stats.Transformations)

	var optErr *Error
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, 4, optErr.Pos.Line)

	// Statements before the failure are already rewritten, later ones are not.
	rendered := program.String()
	assert.Contains(t, rendered, "let a = 3;")
	assert.Contains(t, rendered, "let c = (3 + 4);")
}
