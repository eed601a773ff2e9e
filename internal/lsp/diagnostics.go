package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"neksis/internal/analysis"
	"neksis/internal/ast"
	"neksis/internal/diag"
	"neksis/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE
// display. These provide immediate feedback about syntax issues like missing
// semicolons, unbalanced braces, and malformed literals.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(parseErrors))

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanAt(parseErr.Position, 5), // Rough span for visibility
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: diag.CodeSyntaxError},
			Source:   ptrString("neksis-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertOpportunities transforms analyzer opportunities into hint-severity
// diagnostics so editors can surface them inline without alarming anyone.
// Process-level suggestions carry no position to anchor to and are dropped.
func ConvertOpportunities(opportunities []*analysis.Opportunity) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(opportunities))

	for _, opp := range opportunities {
		if opp.Pos.Line == 0 {
			continue
		}

		message := opp.Description
		if opp.Hint != "" {
			message += "\nhint: " + opp.Hint
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanAt(opp.Pos, 5),
			Severity: ptrSeverity(protocol.DiagnosticSeverityHint),
			Code:     &protocol.IntegerOrString{Value: opportunityCode(opp.Kind)},
			Source:   ptrString("neksis-analyzer"),
			Message:  message,
		})
	}

	return diagnostics
}

// opportunityCode maps an opportunity kind onto its diagnostic code.
func opportunityCode(kind analysis.OpportunityKind) string {
	switch kind {
	case analysis.OpportunityInlining:
		return diag.CodeInliningOpportunity
	case analysis.OpportunityLoopUnrolling:
		return diag.CodeLoopOpportunity
	case analysis.OpportunityDeadCode:
		return diag.CodeDeadCodeOpportunity
	case analysis.OpportunityStrengthReduction:
		return diag.CodeStrengthReductionOpportunity
	default:
		return ""
	}
}

// spanAt converts a 1-based source position into a 0-based LSP range of the
// given width.
func spanAt(pos ast.Position, width int) protocol.Range {
	line := uint32(max(0, pos.Line-1))
	start := uint32(max(0, pos.Column-1))

	return protocol.Range{
		Start: protocol.Position{Line: line, Character: start},
		End:   protocol.Position{Line: line, Character: start + uint32(max(1, width))},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
