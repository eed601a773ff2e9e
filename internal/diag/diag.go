package diag

import (
	"fmt"

	"neksis/internal/ast"
)

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
	Help    Level = "help"
)

// Diagnostic represents a structured finding with source context
type Diagnostic struct {
	Level    Level
	Code     string       // Diagnostic code like N0100
	Message  string       // Primary message
	Position ast.Position // Location in source
	Length   int          // Length of the region the finding covers
	Notes    []string     // Additional context notes
	HelpText string       // Help text for the finding
}

// SyntaxError creates a diagnostic for a parse failure.
func SyntaxError(message string, pos ast.Position) Diagnostic {
	return Diagnostic{
		Level:    Error,
		Code:     CodeSyntaxError,
		Message:  message,
		Position: pos,
		Length:   1,
		HelpText: "check the surrounding syntax; statements end with ';' and blocks are brace-delimited",
	}
}

// DivisionByZero creates a diagnostic for the optimizer's fatal folding case.
func DivisionByZero(pos ast.Position) Diagnostic {
	return Diagnostic{
		Level:    Error,
		Code:     CodeDivisionByZero,
		Message:  "division by zero in constant expression",
		Position: pos,
		Length:   1,
		Notes:    []string{"constant folding evaluates literal arithmetic at compile time"},
		HelpText: "replace the zero divisor or compute the value at runtime",
	}
}

// OpportunityHint creates a hint-level diagnostic for an optimization
// opportunity found by the analyzer.
func OpportunityHint(code, message string, pos ast.Position, improvement, confidence float64) Diagnostic {
	return Diagnostic{
		Level:    Help,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
		Notes: []string{
			fmt.Sprintf("expected improvement %.0f%%, confidence %.0f%%", improvement*100, confidence*100),
		},
	}
}
