package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	if p.Module != nil {
		b.WriteString(p.Module.String())
		b.WriteString("\n\n")
	}

	for i, stmt := range p.Stmts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}

	return b.String()
}

func (m *ModuleDecl) String() string {
	return fmt.Sprintf("module %s;", m.Name.Value)
}

func (bs *BadStmt) String() string {
	return fmt.Sprintf("BadStmt: %s", bs.Bad.Message)
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func (t *TypeRef) String() string {
	return t.Name.Value
}

func (f *Function) String() string {
	var b strings.Builder

	b.WriteString("fn ")
	b.WriteString(f.Name.Value)
	b.WriteString("(")
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")

	if f.Return != nil {
		b.WriteString(" -> ")
		b.WriteString(f.Return.String())
	}

	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (fp *FunctionParam) String() string {
	if fp.Type == nil {
		return fp.Name.Value
	}
	return fmt.Sprintf("%s: %s", fp.Name.Value, fp.Type.String())
}

func (l *LetStmt) String() string {
	var b strings.Builder
	b.WriteString("let ")
	if l.Mut {
		b.WriteString("mut ")
	}
	b.WriteString(l.Name.Value)
	if l.Type != nil {
		b.WriteString(": ")
		b.WriteString(l.Type.String())
	}
	b.WriteString(" = ")
	b.WriteString(l.Value.String())
	b.WriteString(";")
	return b.String()
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s %s %s;", a.Target.String(), a.Operator.Token(), a.Value.String())
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (e *ExprStmt) String() string {
	s := e.Expr.String()
	if e.Semicolon {
		return s + ";"
	}
	return s
}

func (b *BlockExpr) String() string {
	return b.StringIndented("  ")
}

// StringIndented renders the block with every line prefixed by indent.
func (b *BlockExpr) StringIndented(indent string) string {
	var out strings.Builder
	out.WriteString("{\n")
	for _, item := range b.Items {
		out.WriteString(indent)
		out.WriteString(strings.ReplaceAll(item.String(), "\n", "\n"+indent))
		out.WriteByte('\n')
	}
	if b.Tail != nil {
		out.WriteString(indent)
		out.WriteString(strings.ReplaceAll(b.Tail.String(), "\n", "\n"+indent))
		out.WriteByte('\n')
	}
	out.WriteString("}")
	return out.String()
}

func (i *IfExpr) String() string {
	var b strings.Builder

	b.WriteString("if ")
	b.WriteString(i.Cond.String())
	b.WriteString(" ")
	b.WriteString(i.Then.String())

	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}

	return b.String()
}

func (w *WhileExpr) String() string {
	return fmt.Sprintf("while %s %s", w.Cond.String(), w.Body.String())
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Value.String())
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteString(c.Callee.String())
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (i *IntLit) String() string {
	if i.Literal != "" {
		return i.Literal
	}
	return strconv.FormatInt(i.Value, 10)
}

func (f *FloatLit) String() string {
	if f.Literal != "" {
		return f.Literal
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (b *BoolLit) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (s *StringLit) String() string {
	if s.Literal != "" {
		return s.Literal
	}
	return fmt.Sprintf("%q", s.Value)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (i *Ident) String() string {
	return i.Value
}
