package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar node types for participle. These mirror the surface syntax and are
// lowered into the internal/ast tree after parsing; they never escape this
// package.

type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `parser:"@Ident"`
}

type Program struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Module *ModuleDecl `parser:"@@?"`
	Stmts  []*TopStmt  `parser:"@@*"`
}

type ModuleDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent `parser:"\"module\" @@ \";\""`
}

type TopStmt struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Function *Function  `parser:"  @@"`
	Stmt     *Statement `parser:"| @@"`
}

type Function struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent         `parser:"\"fn\" @@ \"(\""`
	Params []*FunctionParam `parser:"[ @@ { \",\" @@ } ] \")\""`
	Return *Type            `parser:"[ \"->\" @@ ]"`
	Body   *Block           `parser:"@@"`
}

type FunctionParam struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent `parser:"@@ \":\""`
	Type   *Type    `parser:"@@"`
}

type Type struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   PosIdent `parser:"@@"`
}

type Block struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Stmts  []*Statement `parser:"\"{\" @@* \"}\""`
}

type Statement struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Let    *LetStmt    `parser:"  @@"`
	Return *ReturnStmt `parser:"| @@"`
	Assign *AssignStmt `parser:"| @@"`
	Expr   *ExprStmt   `parser:"| @@"`
}

type LetStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Mut    bool     `parser:"\"let\" [ @\"mut\" ]"`
	Name   PosIdent `parser:"@@"`
	Type   *Type    `parser:"[ \":\" @@ ]"`
	Value  *Expr    `parser:"\"=\" @@ \";\""`
}

type ReturnStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  *Expr `parser:"\"return\" [ @@ ] \";\""`
}

type AssignStmt struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Target   PosIdent `parser:"@@"`
	Operator string   `parser:"@(\"=\" | \"+=\" | \"-=\" | \"*=\" | \"/=\" | \"%=\")"`
	Value    *Expr    `parser:"@@ \";\""`
}

type ExprStmt struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Expr      *Expr `parser:"@@"`
	Semicolon bool  `parser:"[ @\";\" ]"`
}

type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Binary *BinaryExpr `parser:"@@"`
}

// BinaryExpr parses a flat operand/operator chain; operator precedence is
// resolved during lowering.
type BinaryExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *UnaryExpr `parser:"@@"`
	Ops    []*BinOp   `parser:"{ @@ }"`
}

type BinOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string     `parser:"@(\"||\" | \"&&\" | \"==\" | \"!=\" | \"<\" | \"<=\" | \">\" | \">=\" | \"+\" | \"-\" | \"*\" | \"/\" | \"%\")"`
	Right    *UnaryExpr `parser:"@@"`
}

type UnaryExpr struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string       `parser:"[ @(\"!\" | \"-\") ]"`
	Value    *PostfixExpr `parser:"@@"`
}

type PostfixExpr struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Primary *PrimaryExpr  `parser:"@@"`
	Calls   []*CallSuffix `parser:"{ @@ }"`
}

type CallSuffix struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Args   []*Expr `parser:"\"(\" [ @@ { \",\" @@ } ] \")\""`
}

type PrimaryExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	If     *IfExpr    `parser:"  @@"`
	While  *WhileExpr `parser:"| @@"`
	Block  *Block     `parser:"| @@"`
	Float  *string    `parser:"| @Float"`
	Int    *string    `parser:"| @Integer"`
	Bool   *string    `parser:"| @(\"true\" | \"false\")"`
	Str    *string    `parser:"| @String"`
	Ident  *PosIdent  `parser:"| @@"`
	Parens *Expr      `parser:"| \"(\" @@ \")\""`
}

type IfExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *Expr       `parser:"\"if\" @@"`
	Then   *Block      `parser:"@@"`
	Else   *ElseClause `parser:"[ \"else\" @@ ]"`
}

type ElseClause struct {
	Pos    lexer.Position
	EndPos lexer.Position
	If     *IfExpr `parser:"  @@"`
	Block  *Block  `parser:"| @@"`
}

type WhileExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *Expr  `parser:"\"while\" @@"`
	Body   *Block `parser:"@@"`
}
