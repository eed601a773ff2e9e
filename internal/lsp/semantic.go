package lsp

import (
	"neksis/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	// Module header, when present
	if program.Module != nil {
		name := program.Module.Name
		tokens = append(tokens, makeToken(name.Pos, name.EndPos, name.Value, "namespace", modifierMask("declaration"))...)
	}

	// Walk through all top-level statements
	for _, stmt := range program.Stmts {
		tokens = append(tokens, walkStatement(stmt)...)
	}

	return tokens
}

func walkStatement(stmt ast.Statement) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.Function:
		tokens = append(tokens, walkFunction(v)...)
	case *ast.LetStmt:
		// Variable name; immutable bindings read as readonly
		mods := modifierMask("declaration")
		if !v.Mut {
			mods |= modifierMask("readonly")
		}
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", mods)...)
		// Optional type annotation
		tokens = append(tokens, walkTypeRef(v.Type)...)
		// Bound value expression
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.AssignStmt:
		// Assignment target
		tokens = append(tokens, walkExpression(v.Target)...)
		// Assignment value
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.ReturnStmt:
		// Return value
		if v.Value != nil {
			tokens = append(tokens, walkExpression(v.Value)...)
		}
	case *ast.ExprStmt:
		// Expression statement
		tokens = append(tokens, walkExpression(v.Expr)...)
	case *ast.BadStmt:
		// Skip statements that failed to parse
		return tokens
	}

	return tokens
}

func walkFunction(f *ast.Function) []SemanticToken {
	var tokens []SemanticToken

	if f == nil {
		return tokens
	}

	// Function name
	if f.Name.Value != "" {
		tokens = append(tokens, makeToken(f.Name.Pos, f.Name.EndPos, f.Name.Value, "function", modifierMask("declaration"))...)
	}

	// Parameters
	for _, param := range f.Params {
		if param != nil {
			// Parameter name
			tokens = append(tokens, makeToken(param.Name.Pos, param.Name.EndPos, param.Name.Value, "parameter", 0)...)
			// Parameter type
			tokens = append(tokens, walkTypeRef(param.Type)...)
		}
	}

	// Return type
	tokens = append(tokens, walkTypeRef(f.Return)...)

	// Function body
	tokens = append(tokens, walkBlock(f.Body)...)

	return tokens
}

func walkBlock(block *ast.BlockExpr) []SemanticToken {
	var tokens []SemanticToken

	if block == nil {
		return tokens
	}

	// Block body items
	for _, item := range block.Items {
		tokens = append(tokens, walkStatement(item)...)
	}

	// Tail expression
	if block.Tail != nil {
		tokens = append(tokens, walkExpression(block.Tail)...)
	}

	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.IdentExpr:
		// Variable references
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
	case *ast.CallExpr:
		tokens = append(tokens, walkCallExpression(v)...)
	case *ast.BinaryExpr:
		// Left and right expressions
		tokens = append(tokens, walkExpression(v.Left)...)
		tokens = append(tokens, walkExpression(v.Right)...)
	case *ast.UnaryExpr:
		// Unary operand
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.IfExpr:
		tokens = append(tokens, walkExpression(v.Cond)...)
		tokens = append(tokens, walkBlock(v.Then)...)
		tokens = append(tokens, walkExpression(v.Else)...)
	case *ast.WhileExpr:
		tokens = append(tokens, walkExpression(v.Cond)...)
		tokens = append(tokens, walkBlock(v.Body)...)
	case *ast.BlockExpr:
		tokens = append(tokens, walkBlock(v)...)
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.StringLit:
		// Literals are already handled by client-side highlighting
		return tokens
	case *ast.BadExpr:
		// Skip expressions that failed to parse
		return tokens
	}

	return tokens
}

func walkCallExpression(call *ast.CallExpr) []SemanticToken {
	var tokens []SemanticToken

	if call == nil {
		return tokens
	}

	// A direct callee reads as a function reference, not a variable
	if ident, ok := call.Callee.(*ast.IdentExpr); ok {
		tokens = append(tokens, makeToken(ident.Pos, ident.EndPos, ident.Name, "function", 0)...)
	} else {
		tokens = append(tokens, walkExpression(call.Callee)...)
	}

	// Call arguments
	for _, arg := range call.Args {
		tokens = append(tokens, walkExpression(arg)...)
	}

	return tokens
}

func walkTypeRef(ref *ast.TypeRef) []SemanticToken {
	if ref == nil {
		return nil
	}

	return makeToken(ref.Name.Pos, ref.Name.EndPos, ref.Name.Value, "type", 0)
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, modifiers int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}}
}

// modifierMask builds a TokenModifiers bitmask from modifier names
func modifierMask(names ...string) int {
	mask := 0
	for _, name := range names {
		mask |= 1 << indexOf(name, SemanticTokenModifiers)
	}
	return mask
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first entry if not found
}
