package decl

// BinaryOp is a binary operator in a BinaryExpr.
type BinaryOp int

const (
	// OpEq is the identity/equality comparison.
	OpEq BinaryOp = iota
)

// String returns the operator's conventional token.
func (op BinaryOp) String() string {
	switch op {
	case OpEq:
		return "=="
	default:
		return "?"
	}
}

// ThisExpr references the enclosing instance.
type ThisExpr struct{}

// Kind returns KindThis.
func (e *ThisExpr) Kind() ExprKind { return KindThis }

func (*ThisExpr) sealedExpr() {}

// This returns a ThisExpr.
func This() *ThisExpr { return &ThisExpr{} }

// IdentExpr references a local variable or parameter by name.
type IdentExpr struct {
	// Name is the referenced identifier.
	Name string
}

// Kind returns KindIdent.
func (e *IdentExpr) Kind() ExprKind { return KindIdent }

func (*IdentExpr) sealedExpr() {}

// Ident returns an IdentExpr.
func Ident(name string) *IdentExpr { return &IdentExpr{Name: name} }

// SelectExpr selects a named member of a receiver expression. It
// covers field references, property references, method references
// prior to a call, and enum member references (receiver = TypeExpr).
type SelectExpr struct {
	// Receiver is the expression whose member is selected.
	Receiver Expr

	// Name is the selected member name.
	Name string
}

// Kind returns KindSelect.
func (e *SelectExpr) Kind() ExprKind { return KindSelect }

func (*SelectExpr) sealedExpr() {}

// Select returns a SelectExpr.
func Select(receiver Expr, name string) *SelectExpr {
	return &SelectExpr{Receiver: receiver, Name: name}
}

// CallExpr invokes a callable expression with arguments. The callee
// is typically a SelectExpr naming a method.
type CallExpr struct {
	// Callee is the invoked expression.
	Callee Expr

	// Args contains the ordered argument expressions.
	Args []Expr
}

// Kind returns KindCall.
func (e *CallExpr) Kind() ExprKind { return KindCall }

func (*CallExpr) sealedExpr() {}

// Call returns a CallExpr.
func Call(callee Expr, args ...Expr) *CallExpr {
	return &CallExpr{Callee: callee, Args: args}
}

// NewExpr constructs an instance of a type via its constructor.
type NewExpr struct {
	// Type is the constructed type.
	Type TypeRef

	// Args contains the ordered constructor arguments.
	Args []Expr
}

// Kind returns KindNew.
func (e *NewExpr) Kind() ExprKind { return KindNew }

func (*NewExpr) sealedExpr() {}

// New returns a NewExpr.
func New(typ TypeRef, args ...Expr) *NewExpr {
	return &NewExpr{Type: typ, Args: args}
}

// TypeExpr references a type in expression position, as the receiver
// of static member selections (factory calls, enum values).
type TypeExpr struct {
	// Type is the referenced type.
	Type TypeRef
}

// Kind returns KindTypeExpr.
func (e *TypeExpr) Kind() ExprKind { return KindTypeExpr }

func (*TypeExpr) sealedExpr() {}

// TypeOf returns a TypeExpr.
func TypeOf(typ TypeRef) *TypeExpr { return &TypeExpr{Type: typ} }

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	// Op is the operator.
	Op BinaryOp

	// X is the left operand.
	X Expr

	// Y is the right operand.
	Y Expr
}

// Kind returns KindBinary.
func (e *BinaryExpr) Kind() ExprKind { return KindBinary }

func (*BinaryExpr) sealedExpr() {}

// Eq returns a BinaryExpr comparing two operands for equality.
func Eq(x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: OpEq, X: x, Y: y}
}

// NullLit is the target language's null/empty reference literal.
type NullLit struct{}

// Kind returns KindNullLit.
func (e *NullLit) Kind() ExprKind { return KindNullLit }

func (*NullLit) sealedExpr() {}

// Null returns a NullLit.
func Null() *NullLit { return &NullLit{} }

// StringLit is a quoted string literal.
type StringLit struct {
	// Value is the unquoted literal value.
	Value string
}

// Kind returns KindStringLit.
func (e *StringLit) Kind() ExprKind { return KindStringLit }

func (*StringLit) sealedExpr() {}

// Str returns a StringLit.
func Str(value string) *StringLit { return &StringLit{Value: value} }
