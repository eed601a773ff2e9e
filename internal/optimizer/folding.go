package optimizer

import (
	"strconv"

	"neksis/internal/ast"
)

const passConstantFolding = "constant-folding"

// constantFoldingPass collapses literal arithmetic into single literals. It
// is the only pass that can fail the pipeline: a literal division or modulo
// by zero aborts optimization.
type constantFoldingPass struct{}

func (p *constantFoldingPass) Name() string { return passConstantFolding }

func (p *constantFoldingPass) Description() string {
	return "evaluates literal arithmetic at compile time"
}

func (p *constantFoldingPass) MinLevel() Level { return LevelBasic }

func (p *constantFoldingPass) Apply(program *ast.Program, stats *Stats) error {
	f := &folder{stats: stats}
	for _, stmt := range program.Stmts {
		f.foldStatement(stmt)
	}
	return f.err
}

// folder rewrites expressions bottom-up, replacing parent fields as it
// returns. The first error stops further folding.
type folder struct {
	stats *Stats
	err   error
}

func (f *folder) foldStatement(stmt ast.Statement) {
	switch node := stmt.(type) {
	case *ast.Function:
		if node.Body != nil {
			f.foldBlock(node.Body)
		}
	case *ast.LetStmt:
		node.Value = f.foldExpr(node.Value)
	case *ast.AssignStmt:
		node.Value = f.foldExpr(node.Value)
	case *ast.ReturnStmt:
		if node.Value != nil {
			node.Value = f.foldExpr(node.Value)
		}
	case *ast.ExprStmt:
		node.Expr = f.foldExpr(node.Expr)
	}
}

func (f *folder) foldBlock(block *ast.BlockExpr) {
	for _, item := range block.Items {
		f.foldStatement(item)
	}
	if block.Tail != nil {
		block.Tail = f.foldExpr(block.Tail)
	}
}

func (f *folder) foldExpr(expr ast.Expr) ast.Expr {
	if expr == nil || f.err != nil {
		return expr
	}

	switch node := expr.(type) {
	case *ast.BinaryExpr:
		node.Left = f.foldExpr(node.Left)
		node.Right = f.foldExpr(node.Right)
		if folded, ok := f.foldBinary(node); ok {
			f.stats.Transformations++
			return folded
		}

	case *ast.UnaryExpr:
		node.Value = f.foldExpr(node.Value)
		if folded, ok := f.foldUnary(node); ok {
			f.stats.Transformations++
			return folded
		}

	case *ast.IfExpr:
		node.Cond = f.foldExpr(node.Cond)
		if node.Then != nil {
			f.foldBlock(node.Then)
		}
		node.Else = f.foldExpr(node.Else)

	case *ast.WhileExpr:
		node.Cond = f.foldExpr(node.Cond)
		if node.Body != nil {
			f.foldBlock(node.Body)
		}

	case *ast.BlockExpr:
		f.foldBlock(node)

	case *ast.CallExpr:
		node.Callee = f.foldExpr(node.Callee)
		for i, arg := range node.Args {
			node.Args[i] = f.foldExpr(arg)
		}
	}

	return expr
}

func (f *folder) foldBinary(node *ast.BinaryExpr) (ast.Expr, bool) {
	switch left := node.Left.(type) {
	case *ast.IntLit:
		if right, ok := node.Right.(*ast.IntLit); ok {
			return f.foldInts(node, left, right)
		}
	case *ast.FloatLit:
		if right, ok := node.Right.(*ast.FloatLit); ok {
			return f.foldFloats(node, left, right)
		}
	}
	return nil, false
}

func (f *folder) foldInts(node *ast.BinaryExpr, left, right *ast.IntLit) (ast.Expr, bool) {
	var val int64
	switch node.Op {
	case "+":
		val = left.Value + right.Value
	case "-":
		val = left.Value - right.Value
	case "*":
		val = left.Value * right.Value
	case "/":
		if right.Value == 0 {
			f.err = &Error{Pos: node.NodePos(), Err: ErrDivisionByZero}
			return nil, false
		}
		val = left.Value / right.Value
	case "%":
		if right.Value == 0 {
			f.err = &Error{Pos: node.NodePos(), Err: ErrDivisionByZero}
			return nil, false
		}
		val = left.Value % right.Value
	default:
		return nil, false
	}

	lit := &ast.IntLit{
		Pos:     node.NodePos(),
		EndPos:  node.NodeEndPos(),
		Value:   val,
		Literal: strconv.FormatInt(val, 10),
	}
	f.recordFold(lit, node)
	return lit, true
}

func (f *folder) foldFloats(node *ast.BinaryExpr, left, right *ast.FloatLit) (ast.Expr, bool) {
	var val float64
	switch node.Op {
	case "+":
		val = left.Value + right.Value
	case "-":
		val = left.Value - right.Value
	case "*":
		val = left.Value * right.Value
	case "/":
		if right.Value == 0 {
			f.err = &Error{Pos: node.NodePos(), Err: ErrDivisionByZero}
			return nil, false
		}
		val = left.Value / right.Value
	default:
		return nil, false
	}

	lit := &ast.FloatLit{
		Pos:     node.NodePos(),
		EndPos:  node.NodeEndPos(),
		Value:   val,
		Literal: strconv.FormatFloat(val, 'g', -1, 64),
	}
	f.recordFold(lit, node)
	return lit, true
}

func (f *folder) foldUnary(node *ast.UnaryExpr) (ast.Expr, bool) {
	switch value := node.Value.(type) {
	case *ast.IntLit:
		if node.Op != "-" {
			return nil, false
		}
		v := -value.Value
		lit := &ast.IntLit{
			Pos:     node.NodePos(),
			EndPos:  node.NodeEndPos(),
			Value:   v,
			Literal: strconv.FormatInt(v, 10),
		}
		f.recordFold(lit, node)
		return lit, true

	case *ast.FloatLit:
		if node.Op != "-" {
			return nil, false
		}
		v := -value.Value
		lit := &ast.FloatLit{
			Pos:     node.NodePos(),
			EndPos:  node.NodeEndPos(),
			Value:   v,
			Literal: strconv.FormatFloat(v, 'g', -1, 64),
		}
		f.recordFold(lit, node)
		return lit, true

	case *ast.BoolLit:
		if node.Op != "!" {
			return nil, false
		}
		v := !value.Value
		lit := &ast.BoolLit{
			Pos:     node.NodePos(),
			EndPos:  node.NodeEndPos(),
			Value:   v,
			Literal: strconv.FormatBool(v),
		}
		f.recordFold(lit, node)
		return lit, true
	}
	return nil, false
}

// recordFold carries the folded expression's identity over to the literal
// that replaces it and notes the original text in the metadata side-table.
func (f *folder) recordFold(lit ast.Node, original ast.Node) {
	lit.SetMetadata(original.GetMetadata())
	ast.MarkOptimizedOut(lit, passConstantFolding, nil, true, original.String())
}
