package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadCodeKeepsEveryDeclaredFunction(t *testing.T) {
	program := parseProgram(t, `
fn used() -> Int { 1 }

fn orphan() -> Int { 2 }

fn main() -> Int { used() }
`)
	require.Len(t, program.Functions(), 3)
	before := program.String()

	stats := &Stats{}
	require.NoError(t, (&deadCodePass{}).Apply(program, stats))

	assert.Len(t, program.Functions(), 3)
	assert.Zero(t, stats.Transformations)
	assert.Equal(t, before, program.String())
}

func TestDeadCodeToleratesDanglingCalls(t *testing.T) {
	program := parseProgram(t, `fn main() -> Int { ghost() }`)

	stats := &Stats{}
	require.NoError(t, (&deadCodePass{}).Apply(program, stats))

	assert.Len(t, program.Functions(), 1)
	assert.Zero(t, stats.Transformations)
}
