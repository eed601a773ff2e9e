package ast

type Statement interface {
	Node
	isStatement()
}

func (*Function) isStatement()   {}
func (*LetStmt) isStatement()    {}
func (*AssignStmt) isStatement() {}
func (*ReturnStmt) isStatement() {}
func (*ExprStmt) isStatement()   {}
func (*BadStmt) isStatement()    {}
