package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*BlockExpr) isExpr() {}

func (*IfExpr) isExpr() {}

func (*WhileExpr) isExpr() {}

func (*IntLit) isExpr() {}

func (*FloatLit) isExpr() {}

func (*BoolLit) isExpr() {}

func (*StringLit) isExpr() {}

func (*IdentExpr) isExpr() {}
