package ast

// Program represents a Neksis source file (the entire compilation unit)
// Example: "module math;\n\nfn add(a: Int, b: Int) -> Int { a + b }"
type Program struct {
	Pos      Position
	EndPos   Position
	Module   *ModuleDecl // optional `module name;` header
	Stmts    []Statement
	metadata *Metadata
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable names, function names, etc.
// Example: "add", "total", "main"
type Ident struct {
	Pos      Position
	EndPos   Position
	Value    string
	metadata *Metadata
}

// ModuleDecl represents the optional module header
// Example: "module math;"
type ModuleDecl struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	metadata *Metadata
}

// BadStmt represents parse errors at statement level
type BadStmt struct {
	Bad      BadNode
	metadata *Metadata
}

// BadExpr represents parse errors in expressions
type BadExpr struct {
	Bad      BadNode
	metadata *Metadata
}

// BadNode contains error information for failed parsing
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
	Details []string
}

// TypeRef represents type annotations
// Example: "Int", "Float", "Bool", "String"
type TypeRef struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	metadata *Metadata
}

// Function represents function declarations
// Example: "fn add(a: Int, b: Int) -> Int { a + b }"
type Function struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Params   []*FunctionParam
	Return   *TypeRef
	Body     *BlockExpr
	metadata *Metadata
}

// FunctionParam represents function parameters
// Example: "a: Int", "amount: Float"
type FunctionParam struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Type     *TypeRef
	metadata *Metadata
}

// LetStmt represents variable declarations
// Example: "let total = a + b;", "let mut counter: Int = 0;"
type LetStmt struct {
	Pos      Position
	EndPos   Position
	Mut      bool // true for "let mut"
	Name     Ident
	Type     *TypeRef // nil when the annotation is omitted
	Value    Expr
	metadata *Metadata
}

// AssignStmt represents assignment statements
// Example: "counter = counter + 1;", "total += amount;"
type AssignStmt struct {
	Pos      Position
	EndPos   Position
	Target   Expr
	Operator AssignType
	Value    Expr
	metadata *Metadata
}

// ReturnStmt represents return statements
// Example: "return total;", "return;"
type ReturnStmt struct {
	Pos      Position
	EndPos   Position
	Value    Expr // nil if plain `return;`
	metadata *Metadata
}

// ExprStmt represents expression statements
// Example: "print(total);", "add(a, b)"
type ExprStmt struct {
	Pos       Position
	EndPos    Position
	Expr      Expr
	Semicolon bool // true if a `;` was present
	metadata  *Metadata
}

// BlockExpr represents block expressions with an optional tail value
// Example: "{ let t = a * 2; t + 1 }"
type BlockExpr struct {
	Pos      Position
	EndPos   Position
	Items    []Statement
	Tail     Expr // optional final expr without semicolon
	metadata *Metadata
}

// IfExpr represents conditional expressions
// Example: "if a > b { a } else { b }"
type IfExpr struct {
	Pos      Position
	EndPos   Position
	Cond     Expr
	Then     *BlockExpr
	Else     Expr // *BlockExpr, *IfExpr for else-if chains, or nil
	metadata *Metadata
}

// WhileExpr represents loop expressions
// Example: "while i < n { i = i + 1; }"
type WhileExpr struct {
	Pos      Position
	EndPos   Position
	Cond     Expr
	Body     *BlockExpr
	metadata *Metadata
}

// BinaryExpr represents binary operations
// Example: "a + b", "total >= amount", "x == y"
type BinaryExpr struct {
	Pos      Position
	EndPos   Position
	Op       string
	Left     Expr
	Right    Expr
	metadata *Metadata
}

// UnaryExpr represents unary operations
// Example: "-amount", "!done"
type UnaryExpr struct {
	Pos      Position
	EndPos   Position
	Op       string
	Value    Expr
	metadata *Metadata
}

// CallExpr represents function calls
// Example: "add(a, b)", "print(total)"
type CallExpr struct {
	Pos      Position
	EndPos   Position
	Callee   Expr
	Args     []Expr
	metadata *Metadata
}

// IntLit represents integer literals
// Example: "42", "0", "1024"
type IntLit struct {
	Pos      Position
	EndPos   Position
	Value    int64
	Literal  string // raw source text
	metadata *Metadata
}

// FloatLit represents floating point literals
// Example: "3.14", "0.5"
type FloatLit struct {
	Pos      Position
	EndPos   Position
	Value    float64
	Literal  string
	metadata *Metadata
}

// BoolLit represents boolean literals
// Example: "true", "false"
type BoolLit struct {
	Pos      Position
	EndPos   Position
	Value    bool
	Literal  string
	metadata *Metadata
}

// StringLit represents string literals
// Example: "\"hello\""
type StringLit struct {
	Pos      Position
	EndPos   Position
	Value    string // unquoted contents
	Literal  string // raw source text including quotes
	metadata *Metadata
}

// IdentExpr represents identifier references in expression position
// Example: "total", "counter"
type IdentExpr struct {
	Pos      Position
	EndPos   Position
	Name     string
	metadata *Metadata
}

// Functions returns the function declarations among the program's
// top-level statements, in declaration order.
func (p *Program) Functions() []*Function {
	var fns []*Function
	for _, stmt := range p.Stmts {
		if fn, ok := stmt.(*Function); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// ModuleName returns the declared module name, or "main" when the
// header is omitted.
func (p *Program) ModuleName() string {
	if p.Module == nil {
		return "main"
	}
	return p.Module.Name.Value
}
