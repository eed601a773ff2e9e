package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string

	// Metadata support for debugging and compilation tracking
	GetMetadata() *Metadata
	SetMetadata(*Metadata)
}

func (bs *BadStmt) NodePos() Position    { return bs.Bad.Pos }
func (bs *BadStmt) NodeEndPos() Position { return bs.Bad.EndPos }
func (*BadStmt) NodeType() NodeType      { return BAD_STMT }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (m *ModuleDecl) NodePos() Position    { return m.Pos }
func (m *ModuleDecl) NodeEndPos() Position { return m.EndPos }
func (*ModuleDecl) NodeType() NodeType     { return MODULE_DECL }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (fp *FunctionParam) NodePos() Position    { return fp.Pos }
func (fp *FunctionParam) NodeEndPos() Position { return fp.EndPos }
func (*FunctionParam) NodeType() NodeType      { return FUNCTION_PARAM }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (b *BlockExpr) NodePos() Position    { return b.Pos }
func (b *BlockExpr) NodeEndPos() Position { return b.EndPos }
func (*BlockExpr) NodeType() NodeType     { return BLOCK_EXPR }

func (i *IfExpr) NodePos() Position    { return i.Pos }
func (i *IfExpr) NodeEndPos() Position { return i.EndPos }
func (*IfExpr) NodeType() NodeType     { return IF_EXPR }

func (w *WhileExpr) NodePos() Position    { return w.Pos }
func (w *WhileExpr) NodeEndPos() Position { return w.EndPos }
func (*WhileExpr) NodeType() NodeType     { return WHILE_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (i *IntLit) NodePos() Position    { return i.Pos }
func (i *IntLit) NodeEndPos() Position { return i.EndPos }
func (*IntLit) NodeType() NodeType     { return INT_LIT }

func (f *FloatLit) NodePos() Position    { return f.Pos }
func (f *FloatLit) NodeEndPos() Position { return f.EndPos }
func (*FloatLit) NodeType() NodeType     { return FLOAT_LIT }

func (b *BoolLit) NodePos() Position    { return b.Pos }
func (b *BoolLit) NodeEndPos() Position { return b.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (s *StringLit) NodePos() Position    { return s.Pos }
func (s *StringLit) NodeEndPos() Position { return s.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

// GetMetadata and SetMetadata implementations for all AST nodes

func (bs *BadStmt) GetMetadata() *Metadata  { return bs.metadata }
func (bs *BadStmt) SetMetadata(m *Metadata) { bs.metadata = m }

func (be *BadExpr) GetMetadata() *Metadata  { return be.metadata }
func (be *BadExpr) SetMetadata(m *Metadata) { be.metadata = m }

func (p *Program) GetMetadata() *Metadata  { return p.metadata }
func (p *Program) SetMetadata(m *Metadata) { p.metadata = m }

func (m *ModuleDecl) GetMetadata() *Metadata     { return m.metadata }
func (m *ModuleDecl) SetMetadata(meta *Metadata) { m.metadata = meta }

func (i *Ident) GetMetadata() *Metadata  { return i.metadata }
func (i *Ident) SetMetadata(m *Metadata) { i.metadata = m }

func (t *TypeRef) GetMetadata() *Metadata  { return t.metadata }
func (t *TypeRef) SetMetadata(m *Metadata) { t.metadata = m }

func (f *Function) GetMetadata() *Metadata  { return f.metadata }
func (f *Function) SetMetadata(m *Metadata) { f.metadata = m }

func (fp *FunctionParam) GetMetadata() *Metadata  { return fp.metadata }
func (fp *FunctionParam) SetMetadata(m *Metadata) { fp.metadata = m }

func (l *LetStmt) GetMetadata() *Metadata  { return l.metadata }
func (l *LetStmt) SetMetadata(m *Metadata) { l.metadata = m }

func (a *AssignStmt) GetMetadata() *Metadata  { return a.metadata }
func (a *AssignStmt) SetMetadata(m *Metadata) { a.metadata = m }

func (r *ReturnStmt) GetMetadata() *Metadata  { return r.metadata }
func (r *ReturnStmt) SetMetadata(m *Metadata) { r.metadata = m }

func (e *ExprStmt) GetMetadata() *Metadata  { return e.metadata }
func (e *ExprStmt) SetMetadata(m *Metadata) { e.metadata = m }

func (b *BlockExpr) GetMetadata() *Metadata  { return b.metadata }
func (b *BlockExpr) SetMetadata(m *Metadata) { b.metadata = m }

func (i *IfExpr) GetMetadata() *Metadata  { return i.metadata }
func (i *IfExpr) SetMetadata(m *Metadata) { i.metadata = m }

func (w *WhileExpr) GetMetadata() *Metadata  { return w.metadata }
func (w *WhileExpr) SetMetadata(m *Metadata) { w.metadata = m }

func (b *BinaryExpr) GetMetadata() *Metadata  { return b.metadata }
func (b *BinaryExpr) SetMetadata(m *Metadata) { b.metadata = m }

func (u *UnaryExpr) GetMetadata() *Metadata  { return u.metadata }
func (u *UnaryExpr) SetMetadata(m *Metadata) { u.metadata = m }

func (c *CallExpr) GetMetadata() *Metadata  { return c.metadata }
func (c *CallExpr) SetMetadata(m *Metadata) { c.metadata = m }

func (i *IntLit) GetMetadata() *Metadata  { return i.metadata }
func (i *IntLit) SetMetadata(m *Metadata) { i.metadata = m }

func (f *FloatLit) GetMetadata() *Metadata  { return f.metadata }
func (f *FloatLit) SetMetadata(m *Metadata) { f.metadata = m }

func (b *BoolLit) GetMetadata() *Metadata  { return b.metadata }
func (b *BoolLit) SetMetadata(m *Metadata) { b.metadata = m }

func (s *StringLit) GetMetadata() *Metadata  { return s.metadata }
func (s *StringLit) SetMetadata(m *Metadata) { s.metadata = m }

func (i *IdentExpr) GetMetadata() *Metadata  { return i.metadata }
func (i *IdentExpr) SetMetadata(m *Metadata) { i.metadata = m }
