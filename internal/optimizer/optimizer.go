package optimizer

import (
	"fmt"
	"io"
	"time"

	"neksis/internal/ast"
)

// Level selects how much of the pass pipeline runs.
type Level int

const (
	LevelNone Level = iota
	LevelBasic
	LevelStandard
	LevelAggressive
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelBasic:
		return "basic"
	case LevelStandard:
		return "standard"
	case LevelAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Options configures an Optimizer.
type Options struct {
	Level Level
	// Trace, when non-nil, receives a line per executed pass.
	Trace io.Writer
}

// Stats describes one Optimize call: which passes ran, how many candidate
// sites they touched, and the program's complexity weight before and after.
type Stats struct {
	PassesApplied   []string
	Transformations int
	SizeBefore      int
	SizeAfter       int
	Elapsed         time.Duration
}

// Optimizer runs the level-gated pass pipeline over a program. The pass set
// and their enabled flags are fixed at construction; each Optimize call
// returns a fresh Stats value. It is not safe for concurrent use.
type Optimizer struct {
	level   Level
	trace   io.Writer
	passes  []Pass
	enabled []bool
}

func New(opts Options) *Optimizer {
	o := &Optimizer{
		level:  opts.Level,
		trace:  opts.Trace,
		passes: defaultPasses(),
	}
	o.enabled = make([]bool, len(o.passes))
	for i, pass := range o.passes {
		o.enabled[i] = pass.MinLevel() <= o.level
	}
	return o
}

// Level returns the configured optimization level.
func (o *Optimizer) Level() Level {
	return o.level
}

// Passes returns the pipeline in execution order, enabled or not.
func (o *Optimizer) Passes() []Pass {
	return o.passes
}

// Optimize mutates the program in place, running every enabled pass once in
// pipeline order. On pass failure no stats are returned and the program may
// be left partially rewritten: earlier passes and earlier statements of the
// failing pass have already been applied.
func (o *Optimizer) Optimize(program *ast.Program) (*Stats, error) {
	start := time.Now()
	stats := &Stats{SizeBefore: programSize(program)}

	for i, pass := range o.passes {
		if !o.enabled[i] {
			continue
		}

		before := stats.Transformations
		if err := pass.Apply(program, stats); err != nil {
			return nil, err
		}
		stats.PassesApplied = append(stats.PassesApplied, pass.Name())

		if o.trace != nil {
			fmt.Fprintf(o.trace, "%-32s %d site(s)\n", pass.Name(), stats.Transformations-before)
		}
	}

	stats.SizeAfter = programSize(program)
	stats.Elapsed = time.Since(start)

	if o.trace != nil {
		fmt.Fprintf(o.trace, "optimization complete: %d transformation(s) in %s\n",
			stats.Transformations, stats.Elapsed)
	}

	return stats, nil
}

// programSize estimates program size as the total complexity weight of its
// top level statements.
func programSize(program *ast.Program) int {
	return ast.Complexity(program)
}
