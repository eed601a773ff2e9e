package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neksis/internal/ast"
	"neksis/internal/parser"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, errs := parser.ParseSource("test.nx", source)
	require.Empty(t, errs, "unexpected parse errors")
	require.NotNil(t, program)
	return program
}

func sym(name string) Symbol {
	return Symbol{Module: "main", Name: name}
}

func TestCallGraphNodesAndComplexity(t *testing.T) {
	program := parseProgram(t, `
fn add(a: Int, b: Int) -> Int { a + b }
fn big(a: Int, b: Int) -> Int { a + b + a + b + a + b }
`)

	graph := BuildCallGraph(program)
	nodes := graph.Nodes()
	require.Len(t, nodes, 2)

	add := graph.Node(sym("add"))
	require.NotNil(t, add)
	assert.Equal(t, 3, add.Complexity)
	assert.True(t, add.InliningCandidate)
	assert.False(t, add.HotFunction)

	big := graph.Node(sym("big"))
	require.NotNil(t, big)
	assert.Equal(t, 11, big.Complexity)
	assert.False(t, big.InliningCandidate, "complexity 11 exceeds the inlining limit")
}

func TestCallCountAccumulatesAcrossCallSites(t *testing.T) {
	program := parseProgram(t, `
fn target() -> Int { 1 }
fn one() -> Int { target() }
fn two() -> Int { target() + target() }
`)

	graph := BuildCallGraph(program)

	target := graph.Node(sym("target"))
	require.NotNil(t, target)
	assert.Equal(t, 3, target.CallCount)

	// Three distinct call sites produce three separate edges, even though
	// two of them share the same caller/callee pair.
	require.Len(t, graph.Edges(), 3)
	for _, edge := range graph.Edges() {
		assert.Equal(t, 1, edge.Frequency)
		assert.Len(t, edge.CallSites, 1)
	}

	assert.Equal(t, 1, graph.EdgeFrequency(sym("one"), sym("target")))
	assert.Equal(t, 2, graph.EdgeFrequency(sym("two"), sym("target")))
	assert.Equal(t, 0, graph.EdgeFrequency(sym("target"), sym("one")))
}

func TestDanglingEdgeToUnknownFunction(t *testing.T) {
	program := parseProgram(t, `fn f() { print(1); }`)

	graph := BuildCallGraph(program)

	require.Len(t, graph.Edges(), 1)
	edge := graph.Edges()[0]
	assert.Equal(t, sym("f"), edge.Caller)
	assert.Equal(t, sym("print"), edge.Callee)

	assert.Nil(t, graph.Node(sym("print")), "unknown callees never get nodes")
	assert.Equal(t, 0, graph.Node(sym("f")).CallCount)
}

func TestIndirectCallsAreSkipped(t *testing.T) {
	program := parseProgram(t, `
fn g(n: Int) -> Int { n }
fn f() { g(1)(2); }
`)

	graph := BuildCallGraph(program)

	// The outer call goes through a non-identifier callee and produces no
	// edge, but the inner direct call is still found.
	require.Len(t, graph.Edges(), 1)
	assert.Equal(t, sym("g"), graph.Edges()[0].Callee)
	assert.Equal(t, 1, graph.Node(sym("g")).CallCount)
}

func TestCallsFoundInNestedExpressions(t *testing.T) {
	program := parseProgram(t, `
fn helper() -> Int { 1 }
fn f(x: Int) -> Int {
	let a = helper();
	if x > 0 {
		helper()
	} else {
		while x < 0 {
			x += helper();
		}
		return helper();
	}
}
`)

	graph := BuildCallGraph(program)
	assert.Equal(t, 4, graph.Node(sym("helper")).CallCount)
}

func TestSelfRecursionDetected(t *testing.T) {
	program := parseProgram(t, `fn f() -> Int { f() }`)

	graph := BuildCallGraph(program)

	node := graph.Node(sym("f"))
	require.NotNil(t, node)
	assert.True(t, node.Recursive)
}

func TestMutualRecursionMarksSearchStart(t *testing.T) {
	program := parseProgram(t, `
fn a() -> Int { b() }
fn b() -> Int { a() }
`)

	graph := BuildCallGraph(program)

	// The visited set is shared across DFS starts: the cycle is charged to
	// the function the search began from, and later starts see their node
	// already visited.
	assert.True(t, graph.Node(sym("a")).Recursive)
	assert.False(t, graph.Node(sym("b")).Recursive)
}

func TestRecursionThroughUnknownCalleeStops(t *testing.T) {
	program := parseProgram(t, `fn f() { extern_fn(); }`)

	graph := BuildCallGraph(program)
	assert.False(t, graph.Node(sym("f")).Recursive)
}

func TestNonRecursiveChain(t *testing.T) {
	program := parseProgram(t, `
fn a() -> Int { b() }
fn b() -> Int { c() }
fn c() -> Int { 1 }
`)

	graph := BuildCallGraph(program)
	for _, node := range graph.Nodes() {
		assert.False(t, node.Recursive, "no cycle exists in %s", node.Symbol)
	}
}

func TestModuleQualifiedSymbols(t *testing.T) {
	program := parseProgram(t, `
module math;

fn square(x: Int) -> Int { x * x }
`)

	graph := BuildCallGraph(program)

	node := graph.Node(Symbol{Module: "math", Name: "square"})
	require.NotNil(t, node)
	assert.Equal(t, "math::square", node.Symbol.String())
}

func TestNodesPreserveDeclarationOrder(t *testing.T) {
	program := parseProgram(t, `
fn third_dep() -> Int { 3 }
fn alpha() -> Int { 1 }
fn beta() -> Int { 2 }
`)

	graph := BuildCallGraph(program)
	nodes := graph.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "third_dep", nodes[0].Symbol.Name)
	assert.Equal(t, "alpha", nodes[1].Symbol.Name)
	assert.Equal(t, "beta", nodes[2].Symbol.Name)
}
