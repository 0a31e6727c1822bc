package decl

// VarDeclStmt declares a local variable with an initializer.
type VarDeclStmt struct {
	// Name is the local variable identifier.
	Name string

	// Type is the declared variable type.
	Type TypeRef

	// Init is the initializer expression.
	Init Expr
}

// Kind returns KindVarDecl.
func (s *VarDeclStmt) Kind() StmtKind { return KindVarDecl }

func (*VarDeclStmt) sealedStmt() {}

// DeclareVar returns a VarDeclStmt for a typed local with an initializer.
func DeclareVar(name string, typ TypeRef, init Expr) *VarDeclStmt {
	return &VarDeclStmt{Name: name, Type: typ, Init: init}
}

// AssignStmt assigns a value to an assignable target expression.
type AssignStmt struct {
	// Target is the assignment destination (identifier or selection).
	Target Expr

	// Value is the assigned expression.
	Value Expr
}

// Kind returns KindAssign.
func (s *AssignStmt) Kind() StmtKind { return KindAssign }

func (*AssignStmt) sealedStmt() {}

// Assign returns an AssignStmt.
func Assign(target, value Expr) *AssignStmt {
	return &AssignStmt{Target: target, Value: value}
}

// IfStmt executes the Then statements when Cond evaluates true.
// There is deliberately no else branch; no generated member needs one.
type IfStmt struct {
	// Cond is the condition expression.
	Cond Expr

	// Then contains the ordered true-branch statements.
	Then []Stmt
}

// Kind returns KindIf.
func (s *IfStmt) Kind() StmtKind { return KindIf }

func (*IfStmt) sealedStmt() {}

// If returns an IfStmt.
func If(cond Expr, then ...Stmt) *IfStmt {
	return &IfStmt{Cond: cond, Then: then}
}

// ReturnStmt returns a value from the enclosing method or getter.
type ReturnStmt struct {
	// Result is the returned expression, or nil for a bare return.
	Result Expr
}

// Kind returns KindReturn.
func (s *ReturnStmt) Kind() StmtKind { return KindReturn }

func (*ReturnStmt) sealedStmt() {}

// Return returns a ReturnStmt.
func Return(result Expr) *ReturnStmt {
	return &ReturnStmt{Result: result}
}

// ExprStmt evaluates an expression for its side effect.
type ExprStmt struct {
	// X is the evaluated expression.
	X Expr
}

// Kind returns KindExprStmt.
func (s *ExprStmt) Kind() StmtKind { return KindExprStmt }

func (*ExprStmt) sealedStmt() {}

// Eval returns an ExprStmt.
func Eval(x Expr) *ExprStmt {
	return &ExprStmt{X: x}
}
