// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	"github.com/xyproto/env/v2"

	"neksis/internal/analysis"
	"neksis/internal/diag"
	"neksis/internal/optimizer"
	"neksis/internal/parser"
	"neksis/internal/report"
)

const usage = "Usage: neksis-cli [-O=N] [--trace] [--diff] <file.nx>"

// cliConfig holds the resolved command line options. Defaults come from the
// environment (NEKSIS_OPT_LEVEL, NEKSIS_TRACE); flags override them.
type cliConfig struct {
	level    optimizer.Level
	trace    bool
	showDiff bool
	path     string
}

func main() {
	commonlog.Configure(0, nil)

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	startTime := time.Now()

	source, err := os.ReadFile(cfg.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, parseErrors := parser.ParseSource(cfg.path, string(source))

	reporter := diag.NewReporter(cfg.path, string(source))

	if len(parseErrors) > 0 {
		for _, parseErr := range parseErrors {
			fmt.Print(reporter.Format(diag.SyntaxError(parseErr.Message, parseErr.Position)))
		}
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	rep := analysis.NewAnalyzer().Analyze(program)
	fmt.Print(report.RenderAnalysis(rep))

	var before string
	if cfg.showDiff {
		before = program.String()
	}

	options := optimizer.Options{Level: cfg.level}
	if cfg.trace {
		options.Trace = os.Stderr
	}

	stats, err := optimizer.New(options).Optimize(program)
	if err != nil {
		printOptimizerError(reporter, err)
		color.Red("Optimization failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(report.RenderStats(stats))

	if cfg.showDiff {
		diffText, err := report.RenderDiff(cfg.path, before, program.String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render diff: %v\n", err)
			os.Exit(1)
		}
		if diffText != "" {
			fmt.Println()
			fmt.Print(diffText)
		}
	}

	fmt.Println()
	color.Green("Successfully optimized %s in %s", cfg.path, formatDuration(time.Since(startTime)))
}

func parseArgs(args []string) (*cliConfig, error) {
	cfg := &cliConfig{
		level: optimizer.Level(env.Int("NEKSIS_OPT_LEVEL", int(optimizer.LevelStandard))),
		trace: env.Bool("NEKSIS_TRACE"),
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-O"):
			level, err := parseLevel(strings.TrimPrefix(arg, "-O"))
			if err != nil {
				return nil, err
			}
			cfg.level = level
		case arg == "--trace":
			cfg.trace = true
		case arg == "--diff":
			cfg.showDiff = true
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag %q", arg)
		default:
			if cfg.path != "" {
				return nil, fmt.Errorf("unexpected argument %q", arg)
			}
			cfg.path = arg
		}
	}

	if cfg.path == "" {
		return nil, errors.New("no input file")
	}

	if cfg.level < optimizer.LevelNone || cfg.level > optimizer.LevelAggressive {
		return nil, fmt.Errorf("optimization level out of range: %d", cfg.level)
	}

	return cfg, nil
}

// parseLevel accepts both -O2 and -O=2 spellings.
func parseLevel(s string) (optimizer.Level, error) {
	s = strings.TrimPrefix(s, "=")

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid optimization level %q", s)
	}
	if n < int(optimizer.LevelNone) || n > int(optimizer.LevelAggressive) {
		return 0, fmt.Errorf("optimization level out of range: %d", n)
	}

	return optimizer.Level(n), nil
}

func printOptimizerError(reporter *diag.Reporter, err error) {
	var optErr *optimizer.Error
	if errors.Is(err, optimizer.ErrDivisionByZero) && errors.As(err, &optErr) {
		fmt.Print(reporter.Format(diag.DivisionByZero(optErr.Pos)))
		return
	}

	fmt.Fprintf(os.Stderr, "optimization error: %v\n", err)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
