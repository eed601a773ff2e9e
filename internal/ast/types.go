package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_STMT
	BAD_EXPR

	// High-level constructs
	PROGRAM
	MODULE_DECL

	// Names and types
	IDENT
	TYPE_REF

	// Functions
	FUNCTION
	FUNCTION_PARAM

	// Statements
	LET_STMT
	ASSIGN_STMT
	RETURN_STMT
	EXPR_STMT

	// Expressions
	BLOCK_EXPR
	IF_EXPR
	WHILE_EXPR
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	INT_LIT
	FLOAT_LIT
	BOOL_LIT
	STRING_LIT
	IDENT_EXPR
)
