package parser

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"neksis/internal/ast"
)

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
}

var assignOperators = map[string]ast.AssignType{
	"=":  ast.ASSIGN,
	"+=": ast.PLUS_ASSIGN,
	"-=": ast.MINUS_ASSIGN,
	"*=": ast.STAR_ASSIGN,
	"/=": ast.SLASH_ASSIGN,
	"%=": ast.PERCENT_ASSIGN,
}

// lowerer converts grammar nodes into the internal AST. Grouping parentheses
// are dissolved here: the tree keeps evaluation structure, the printer
// re-parenthesizes on output.
type lowerer struct {
	errs []ParseError
}

func position(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func lowerIdent(p PosIdent) ast.Ident {
	return ast.Ident{Pos: position(p.Pos), EndPos: position(p.EndPos), Value: p.Value}
}

func (l *lowerer) lowerProgram(p *Program) *ast.Program {
	program := &ast.Program{Pos: position(p.Pos), EndPos: position(p.EndPos)}

	if p.Module != nil {
		program.Module = &ast.ModuleDecl{
			Pos:    position(p.Module.Pos),
			EndPos: position(p.Module.EndPos),
			Name:   lowerIdent(p.Module.Name),
		}
	}

	for _, top := range p.Stmts {
		switch {
		case top.Function != nil:
			program.Stmts = append(program.Stmts, l.lowerFunction(top.Function))
		case top.Stmt != nil:
			program.Stmts = append(program.Stmts, l.lowerStatement(top.Stmt))
		}
	}

	return program
}

func (l *lowerer) lowerFunction(f *Function) *ast.Function {
	fn := &ast.Function{
		Pos:    position(f.Pos),
		EndPos: position(f.EndPos),
		Name:   lowerIdent(f.Name),
	}

	for _, param := range f.Params {
		fn.Params = append(fn.Params, &ast.FunctionParam{
			Pos:    position(param.Pos),
			EndPos: position(param.EndPos),
			Name:   lowerIdent(param.Name),
			Type:   l.lowerType(param.Type),
		})
	}

	if f.Return != nil {
		fn.Return = l.lowerType(f.Return)
	}
	fn.Body = l.lowerBlock(f.Body)

	return fn
}

func (l *lowerer) lowerType(t *Type) *ast.TypeRef {
	if t == nil {
		return nil
	}
	return &ast.TypeRef{Pos: position(t.Pos), EndPos: position(t.EndPos), Name: lowerIdent(t.Name)}
}

func (l *lowerer) lowerBlock(b *Block) *ast.BlockExpr {
	block := &ast.BlockExpr{Pos: position(b.Pos), EndPos: position(b.EndPos)}

	for _, stmt := range b.Stmts {
		block.Items = append(block.Items, l.lowerStatement(stmt))
	}

	// A trailing expression without a semicolon is the block's value
	if n := len(block.Items); n > 0 {
		if es, ok := block.Items[n-1].(*ast.ExprStmt); ok && !es.Semicolon {
			block.Tail = es.Expr
			block.Items = block.Items[:n-1]
		}
	}

	return block
}

func (l *lowerer) lowerStatement(s *Statement) ast.Statement {
	switch {
	case s.Let != nil:
		return &ast.LetStmt{
			Pos:    position(s.Let.Pos),
			EndPos: position(s.Let.EndPos),
			Mut:    s.Let.Mut,
			Name:   lowerIdent(s.Let.Name),
			Type:   l.lowerType(s.Let.Type),
			Value:  l.lowerExpr(s.Let.Value),
		}

	case s.Return != nil:
		return &ast.ReturnStmt{
			Pos:    position(s.Return.Pos),
			EndPos: position(s.Return.EndPos),
			Value:  l.lowerExpr(s.Return.Value),
		}

	case s.Assign != nil:
		target := &ast.IdentExpr{
			Pos:    position(s.Assign.Target.Pos),
			EndPos: position(s.Assign.Target.EndPos),
			Name:   s.Assign.Target.Value,
		}
		return &ast.AssignStmt{
			Pos:      position(s.Assign.Pos),
			EndPos:   position(s.Assign.EndPos),
			Target:   target,
			Operator: assignOperators[s.Assign.Operator],
			Value:    l.lowerExpr(s.Assign.Value),
		}

	case s.Expr != nil:
		return &ast.ExprStmt{
			Pos:       position(s.Expr.Pos),
			EndPos:    position(s.Expr.EndPos),
			Expr:      l.lowerExpr(s.Expr.Expr),
			Semicolon: s.Expr.Semicolon,
		}

	default:
		return &ast.BadStmt{Bad: ast.BadNode{
			Pos:     position(s.Pos),
			EndPos:  position(s.EndPos),
			Message: "empty statement",
		}}
	}
}

func (l *lowerer) lowerExpr(e *Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return l.lowerBinary(e.Binary)
}

func (l *lowerer) lowerBinary(b *BinaryExpr) ast.Expr {
	chain := &opChain{}
	chain.operands = append(chain.operands, l.lowerUnary(b.Left))
	for _, op := range b.Ops {
		chain.ops = append(chain.ops, op.Operator)
		chain.operands = append(chain.operands, l.lowerUnary(op.Right))
	}
	return chain.climb(1)
}

// opChain resolves a flat operand/operator sequence into a left-associative
// tree by precedence climbing.
type opChain struct {
	operands []ast.Expr
	ops      []string
	next     int
}

func (c *opChain) climb(minPrec int) ast.Expr {
	left := c.operands[c.next]
	for c.next < len(c.ops) {
		op := c.ops[c.next]
		prec := binaryPrecedence[op]
		if prec < minPrec {
			break
		}
		c.next++
		right := c.climb(prec + 1)
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op,
			Left:   left,
			Right:  right,
		}
	}
	return left
}

func (l *lowerer) lowerUnary(u *UnaryExpr) ast.Expr {
	value := l.lowerPostfix(u.Value)
	if u.Operator == "" {
		return value
	}
	return &ast.UnaryExpr{
		Pos:    position(u.Pos),
		EndPos: value.NodeEndPos(),
		Op:     u.Operator,
		Value:  value,
	}
}

func (l *lowerer) lowerPostfix(p *PostfixExpr) ast.Expr {
	expr := l.lowerPrimary(p.Primary)

	for _, call := range p.Calls {
		callExpr := &ast.CallExpr{
			Pos:    expr.NodePos(),
			EndPos: position(call.EndPos),
			Callee: expr,
		}
		for _, arg := range call.Args {
			callExpr.Args = append(callExpr.Args, l.lowerExpr(arg))
		}
		expr = callExpr
	}

	return expr
}

func (l *lowerer) lowerPrimary(p *PrimaryExpr) ast.Expr {
	switch {
	case p.If != nil:
		return l.lowerIf(p.If)

	case p.While != nil:
		return &ast.WhileExpr{
			Pos:    position(p.While.Pos),
			EndPos: position(p.While.EndPos),
			Cond:   l.lowerExpr(p.While.Cond),
			Body:   l.lowerBlock(p.While.Body),
		}

	case p.Block != nil:
		return l.lowerBlock(p.Block)

	case p.Float != nil:
		value, err := strconv.ParseFloat(*p.Float, 64)
		if err != nil {
			return l.badExpr(p, "invalid float literal "+*p.Float)
		}
		return &ast.FloatLit{Pos: position(p.Pos), EndPos: position(p.EndPos), Value: value, Literal: *p.Float}

	case p.Int != nil:
		value, err := strconv.ParseInt(*p.Int, 0, 64)
		if err != nil {
			return l.badExpr(p, "integer literal out of range: "+*p.Int)
		}
		return &ast.IntLit{Pos: position(p.Pos), EndPos: position(p.EndPos), Value: value, Literal: *p.Int}

	case p.Bool != nil:
		return &ast.BoolLit{Pos: position(p.Pos), EndPos: position(p.EndPos), Value: *p.Bool == "true", Literal: *p.Bool}

	case p.Str != nil:
		value, err := strconv.Unquote(*p.Str)
		if err != nil {
			return l.badExpr(p, "invalid string literal "+*p.Str)
		}
		return &ast.StringLit{Pos: position(p.Pos), EndPos: position(p.EndPos), Value: value, Literal: *p.Str}

	case p.Ident != nil:
		return &ast.IdentExpr{
			Pos:    position(p.Ident.Pos),
			EndPos: position(p.Ident.EndPos),
			Name:   p.Ident.Value,
		}

	case p.Parens != nil:
		return l.lowerExpr(p.Parens)

	default:
		return l.badExpr(p, "empty expression")
	}
}

func (l *lowerer) lowerIf(i *IfExpr) ast.Expr {
	out := &ast.IfExpr{
		Pos:    position(i.Pos),
		EndPos: position(i.EndPos),
		Cond:   l.lowerExpr(i.Cond),
		Then:   l.lowerBlock(i.Then),
	}

	if i.Else != nil {
		switch {
		case i.Else.If != nil:
			out.Else = l.lowerIf(i.Else.If)
		case i.Else.Block != nil:
			out.Else = l.lowerBlock(i.Else.Block)
		}
	}

	return out
}

func (l *lowerer) badExpr(p *PrimaryExpr, message string) ast.Expr {
	pos := position(p.Pos)
	l.errs = append(l.errs, ParseError{Position: pos, Message: message})
	return &ast.BadExpr{Bad: ast.BadNode{Pos: pos, EndPos: position(p.EndPos), Message: message}}
}
