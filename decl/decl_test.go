package decl

import (
	"reflect"
	"testing"
)

func TestMemberKind_String(t *testing.T) {
	tests := []struct {
		kind MemberKind
		want string
	}{
		{KindField, "Field"},
		{KindProperty, "Property"},
		{KindMethod, "Method"},
		{MemberKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("MemberKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTypeRef_Qualified(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{
			name: "namespaced",
			ref:  NamedType("Newtonsoft.Json", "JsonSerializer"),
			want: "Newtonsoft.Json.JsonSerializer",
		},
		{
			name: "builtin",
			ref:  Builtin("string"),
			want: "string",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.Qualified(); got != tt.want {
				t.Errorf("Qualified() = %q, want %q", got, tt.want)
			}
		})
	}

	if !(TypeRef{}).IsZero() {
		t.Error("zero TypeRef should report IsZero")
	}
	if Builtin("string").IsZero() {
		t.Error("builtin TypeRef should not report IsZero")
	}
}

func TestClassDecl_AppendMember(t *testing.T) {
	class := &ClassDecl{Name: "S"}

	class.AppendMember(&FieldDecl{Name: "a"})
	class.AppendMember(&PropertyDecl{Name: "B"})
	class.AppendMember(&MethodDecl{Name: "C"})

	want := []string{"a", "B", "C"}
	if got := class.MemberNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("MemberNames() = %v, want %v", got, want)
	}

	kinds := []MemberKind{KindField, KindProperty, KindMethod}
	for i, m := range class.Members {
		if m.Kind() != kinds[i] {
			t.Errorf("Members[%d].Kind() = %v, want %v", i, m.Kind(), kinds[i])
		}
	}
}

func TestConstructorHelpers(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		kind ExprKind
	}{
		{"This", This(), KindThis},
		{"Ident", Ident("x"), KindIdent},
		{"Select", Select(This(), "f"), KindSelect},
		{"Call", Call(Ident("f")), KindCall},
		{"New", New(Builtin("T")), KindNew},
		{"TypeOf", TypeOf(Builtin("T")), KindTypeExpr},
		{"Eq", Eq(Ident("a"), Null()), KindBinary},
		{"Null", Null(), KindNullLit},
		{"Str", Str("v"), KindStringLit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}

	stmts := []struct {
		name string
		stmt Stmt
		kind StmtKind
	}{
		{"DeclareVar", DeclareVar("x", Builtin("T"), Null()), KindVarDecl},
		{"Assign", Assign(Ident("x"), Null()), KindAssign},
		{"If", If(Eq(Ident("x"), Null())), KindIf},
		{"Return", Return(Ident("x")), KindReturn},
		{"Eval", Eval(Call(Ident("f"))), KindExprStmt},
	}
	for _, tt := range stmts {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestIf_PreservesThenOrder(t *testing.T) {
	a := Assign(Ident("a"), Null())
	b := Assign(Ident("b"), Null())
	c := Assign(Ident("c"), Null())

	s := If(Eq(Ident("x"), Null()), a, b, c)
	want := []Stmt{a, b, c}
	if !reflect.DeepEqual(s.Then, want) {
		t.Errorf("Then = %v, want %v", s.Then, want)
	}
}

func TestBinaryOp_String(t *testing.T) {
	if got := OpEq.String(); got != "==" {
		t.Errorf("OpEq.String() = %q, want %q", got, "==")
	}
}
