package diag

// Diagnostic codes for the Neksis middle-end
// These codes identify findings consistently across the CLI report and the
// language server.
//
// Code ranges:
// N0100-N0199: Parser diagnostics
// N0200-N0299: Optimizer diagnostics
// N0800-N0899: Optimization opportunity hints
// N0900-N0999: Reserved for tooling diagnostics

const (
	// N0100: Syntax errors from the parser
	CodeSyntaxError = "N0100"

	// N0101-N0199 available for finer-grained parse diagnostics when needed

	// N0201: Literal division or modulo by zero met during constant folding
	CodeDivisionByZero = "N0201"

	// Opportunity hints (N0800-N0899)

	// N0801: Small, called, non-recursive function worth inlining
	CodeInliningOpportunity = "N0801"

	// N0802: Loop eligible for unrolling or invariant hoisting
	CodeLoopOpportunity = "N0802"

	// N0803: Program-level dead code elimination applies
	CodeDeadCodeOpportunity = "N0803"

	// N0804: Arithmetic strength reduction applies
	CodeStrengthReductionOpportunity = "N0804"
)

// Description returns a human-readable description of the diagnostic code
func Description(code string) string {
	switch code {
	case CodeSyntaxError:
		return "Source text does not match the language grammar"
	case CodeDivisionByZero:
		return "Constant expression divides or takes modulo by zero"
	case CodeInliningOpportunity:
		return "Function is small and called; its call sites can be inlined"
	case CodeLoopOpportunity:
		return "Loop can be unrolled or have invariants hoisted"
	case CodeDeadCodeOpportunity:
		return "Unreachable declarations can be removed"
	case CodeStrengthReductionOpportunity:
		return "Expensive arithmetic can be replaced with cheaper operations"
	default:
		return "Unknown diagnostic code"
	}
}

// IsHint returns true if the code represents an opportunity hint rather than
// a problem with the source.
func IsHint(code string) bool {
	return code >= "N0800" && code < "N0900"
}

// Category returns the category of a diagnostic based on its code
func Category(code string) string {
	switch {
	case code >= "N0100" && code < "N0200":
		return "Parser"
	case code >= "N0200" && code < "N0300":
		return "Optimizer"
	case code >= "N0800" && code < "N0900":
		return "Opportunity"
	default:
		return "Unknown"
	}
}
