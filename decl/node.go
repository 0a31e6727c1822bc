// Package decl defines a small language-neutral declaration AST for
// generated client classes. Backends (csharp, gogen) walk these nodes
// and render source text; decorators construct them.
package decl

// MemberKind identifies the category of a class member declaration.
type MemberKind int

const (
	KindField MemberKind = iota
	KindProperty
	KindMethod
)

// String returns the string representation of the member kind.
func (k MemberKind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindProperty:
		return "Property"
	case KindMethod:
		return "Method"
	default:
		return "Unknown"
	}
}

// StmtKind identifies the category of a statement node.
type StmtKind int

const (
	KindVarDecl StmtKind = iota
	KindAssign
	KindIf
	KindReturn
	KindExprStmt
)

// String returns the string representation of the statement kind.
func (k StmtKind) String() string {
	switch k {
	case KindVarDecl:
		return "VarDecl"
	case KindAssign:
		return "Assign"
	case KindIf:
		return "If"
	case KindReturn:
		return "Return"
	case KindExprStmt:
		return "ExprStmt"
	default:
		return "Unknown"
	}
}

// ExprKind identifies the category of an expression node.
type ExprKind int

const (
	KindThis ExprKind = iota
	KindIdent
	KindSelect
	KindCall
	KindNew
	KindBinary
	KindTypeExpr
	KindNullLit
	KindStringLit
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case KindThis:
		return "This"
	case KindIdent:
		return "Ident"
	case KindSelect:
		return "Select"
	case KindCall:
		return "Call"
	case KindNew:
		return "New"
	case KindBinary:
		return "Binary"
	case KindTypeExpr:
		return "TypeExpr"
	case KindNullLit:
		return "NullLit"
	case KindStringLit:
		return "StringLit"
	default:
		return "Unknown"
	}
}

// MemberDecl is the base interface for class member declarations.
type MemberDecl interface {
	// Kind returns the member kind for type switching.
	Kind() MemberKind

	// MemberName returns the declared name of the member.
	MemberName() string

	// Ensure only types in this package can implement MemberDecl.
	sealedMember()
}

// Stmt is the base interface for statement nodes.
type Stmt interface {
	// Kind returns the statement kind for type switching.
	Kind() StmtKind

	sealedStmt()
}

// Expr is the base interface for expression nodes.
type Expr interface {
	// Kind returns the expression kind for type switching.
	Kind() ExprKind

	sealedExpr()
}
