package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeDataFlow(t *testing.T, source string) *DataFlow {
	t.Helper()
	program := parseProgram(t, source)

	dfa := NewDataFlowAnalyzer(program.ModuleName())
	for _, fn := range program.Functions() {
		dfa.AnalyzeFunction(fn)
	}
	return dfa.Result()
}

func TestLivenessOneRangePerVariablePerFunction(t *testing.T) {
	flow := analyzeDataFlow(t, `
fn compute(a: Int) -> Int {
	let temp = a * 2;
	temp + a
}
`)

	temp := flow.Liveness["temp"]
	require.NotNil(t, temp)
	require.Len(t, temp.Ranges, 1)
	assert.Equal(t, sym("compute"), temp.Ranges[0].Function)

	// The range is a placeholder interval: start and end stay unlocated.
	assert.Equal(t, temp.Ranges[0].Start, temp.Ranges[0].End)
	assert.Nil(t, temp.FirstDef)
	assert.Nil(t, temp.LastUse)

	a := flow.Liveness["a"]
	require.NotNil(t, a)
	assert.Len(t, a.Ranges, 1, "repeated references share one range")
}

func TestLivenessSharedNameAcrossFunctions(t *testing.T) {
	flow := analyzeDataFlow(t, `
fn one() -> Int {
	let v = 1;
	v
}
fn two() -> Int {
	let v = 2;
	v
}
`)

	v := flow.Liveness["v"]
	require.NotNil(t, v)
	require.Len(t, v.Ranges, 2, "liveness is keyed by name, one range per function")
	assert.Equal(t, sym("one"), v.Ranges[0].Function)
	assert.Equal(t, sym("two"), v.Ranges[1].Function)
}

func TestDefinitionsCollectedFromBlocks(t *testing.T) {
	flow := analyzeDataFlow(t, `
fn f(x: Int) -> Int {
	let doubled = x * 2;
	if x > 0 {
		let inner = doubled + 1;
		inner
	} else {
		doubled
	}
}
`)

	doubled := flow.Definitions["doubled"]
	require.Len(t, doubled, 1)
	assert.Equal(t, "(x * 2)", doubled[0].Snapshot)
	assert.Equal(t, 3, doubled[0].Pos.Line)

	inner := flow.Definitions["inner"]
	require.Len(t, inner, 1, "lets inside branch blocks still sit directly in a block")
	assert.Equal(t, "(doubled + 1)", inner[0].Snapshot)
}

func TestDefinitionsAccumulateAcrossFunctions(t *testing.T) {
	flow := analyzeDataFlow(t, `
fn one() -> Int {
	let v = 1;
	v
}
fn two() -> Int {
	let v = 2;
	v
}
`)

	v := flow.Definitions["v"]
	require.Len(t, v, 2, "reaching sets merge across functions by name")
	assert.Equal(t, "1", v[0].Snapshot)
	assert.Equal(t, "2", v[1].Snapshot)
}

func TestAvailableExpressionsDeduplicated(t *testing.T) {
	flow := analyzeDataFlow(t, `
fn f(a: Int, b: Int) -> Int {
	let x = a + b;
	let y = a + b;
	x + y
}
`)

	assert.Equal(t, []string{"(a + b)", "(x + y)"}, flow.Available)
}

func TestAvailableExpressionsIncludeUnaryAndNested(t *testing.T) {
	flow := analyzeDataFlow(t, `
fn f(a: Int, b: Int) -> Int {
	-(a + b) * 2
}
`)

	assert.Contains(t, flow.Available, "((-(a + b)) * 2)")
	assert.Contains(t, flow.Available, "(-(a + b))")
	assert.Contains(t, flow.Available, "(a + b)")
}

func TestEmptyFunctionProducesNoFacts(t *testing.T) {
	flow := analyzeDataFlow(t, `fn f() { }`)

	assert.Empty(t, flow.Liveness)
	assert.Empty(t, flow.Definitions)
	assert.Empty(t, flow.Available)
}
