package ast

// Complexity computes the weight of a subtree: literals and identifier
// references count 1, every operator, branch, loop, and call counts 1 plus
// the weight of its children, and statements contribute the weight of the
// expressions they contain. Function complexity drives inlining candidacy
// and the optimizer's program-size estimate.
func Complexity(node Node) int {
	switch n := node.(type) {
	case *IntLit, *FloatLit, *BoolLit, *StringLit, *IdentExpr, *Ident:
		return 1

	case *BinaryExpr:
		return 1 + Complexity(n.Left) + Complexity(n.Right)

	case *UnaryExpr:
		return 1 + Complexity(n.Value)

	case *IfExpr:
		weight := 1 + Complexity(n.Cond)
		if n.Then != nil {
			weight += Complexity(n.Then)
		}
		if n.Else != nil {
			weight += Complexity(n.Else)
		}
		return weight

	case *WhileExpr:
		weight := 1 + Complexity(n.Cond)
		if n.Body != nil {
			weight += Complexity(n.Body)
		}
		return weight

	case *CallExpr:
		weight := 1 + Complexity(n.Callee)
		for _, arg := range n.Args {
			weight += Complexity(arg)
		}
		return weight

	case *BlockExpr:
		weight := 0
		for _, item := range n.Items {
			weight += Complexity(item)
		}
		if n.Tail != nil {
			weight += Complexity(n.Tail)
		}
		return weight

	case *LetStmt:
		return Complexity(n.Value)

	case *AssignStmt:
		return Complexity(n.Target) + Complexity(n.Value)

	case *ReturnStmt:
		if n.Value != nil {
			return Complexity(n.Value)
		}
		return 0

	case *ExprStmt:
		return Complexity(n.Expr)

	case *Function:
		if n.Body != nil {
			return Complexity(n.Body)
		}
		return 0

	case *Program:
		weight := 0
		for _, stmt := range n.Stmts {
			weight += Complexity(stmt)
		}
		return weight

	default:
		return 0
	}
}
