package decl

// Access is the access level of a class member.
type Access int

const (
	Public Access = iota
	Private
)

// String returns the string representation of the access level.
func (a Access) String() string {
	switch a {
	case Public:
		return "Public"
	case Private:
		return "Private"
	default:
		return "Unknown"
	}
}

// TypeRef names a type in the target language, optionally qualified
// by a dot-separated namespace. Backends decide how a reference maps
// onto their own type system.
type TypeRef struct {
	// Namespace is the dot-separated qualifier, empty for built-ins.
	Namespace string

	// Name is the type identifier.
	Name string
}

// NamedType returns a TypeRef for a namespace-qualified type.
func NamedType(namespace, name string) TypeRef {
	return TypeRef{Namespace: namespace, Name: name}
}

// Builtin returns a TypeRef for an unqualified built-in type.
func Builtin(name string) TypeRef {
	return TypeRef{Name: name}
}

// Qualified returns the full dotted name of the type.
func (t TypeRef) Qualified() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// IsZero reports whether the reference names no type.
func (t TypeRef) IsZero() bool {
	return t.Namespace == "" && t.Name == ""
}

// ClassDecl represents a generated class under construction.
//
// The member list is ordered; decorators append to it and backends
// render members in insertion order. ClassDecl performs no name
// collision checking — sequencing decorators so names stay unique is
// the pipeline's responsibility.
type ClassDecl struct {
	// Name is the class identifier.
	Name string

	// Doc is an optional documentation comment for the class.
	Doc string

	// Members contains the ordered member declarations.
	Members []MemberDecl
}

// AppendMember appends a member declaration to the class.
func (c *ClassDecl) AppendMember(m MemberDecl) {
	c.Members = append(c.Members, m)
}

// MemberNames returns the declared names of all members in order.
func (c *ClassDecl) MemberNames() []string {
	names := make([]string, len(c.Members))
	for i, m := range c.Members {
		names[i] = m.MemberName()
	}
	return names
}

// FieldDecl represents an instance field.
type FieldDecl struct {
	// Name is the field identifier.
	Name string

	// Type is the declared field type.
	Type TypeRef

	// Access is the field's access level.
	Access Access

	// Init is the field initializer expression, or nil for the
	// target language's default value.
	Init Expr
}

// Kind returns KindField.
func (d *FieldDecl) Kind() MemberKind { return KindField }

// MemberName returns the field's name.
func (d *FieldDecl) MemberName() string { return d.Name }

func (*FieldDecl) sealedMember() {}

// PropertyDecl represents an accessor with a computed body.
type PropertyDecl struct {
	// Name is the property identifier.
	Name string

	// Type is the property's value type.
	Type TypeRef

	// Access is the property's access level.
	Access Access

	// GetOnly marks the property as having no setter.
	GetOnly bool

	// Body contains the ordered getter statements.
	Body []Stmt
}

// Kind returns KindProperty.
func (d *PropertyDecl) Kind() MemberKind { return KindProperty }

// MemberName returns the property's name.
func (d *PropertyDecl) MemberName() string { return d.Name }

func (*PropertyDecl) sealedMember() {}

// Param represents a single method parameter.
type Param struct {
	// Name is the parameter identifier.
	Name string

	// Type is the parameter type.
	Type TypeRef
}

// MethodDecl represents a method.
type MethodDecl struct {
	// Name is the method identifier.
	Name string

	// Access is the method's access level.
	Access Access

	// Params contains the ordered parameter list.
	Params []Param

	// Return is the return type; zero value for void methods.
	Return TypeRef

	// Body contains the ordered method statements.
	Body []Stmt
}

// Kind returns KindMethod.
func (d *MethodDecl) Kind() MemberKind { return KindMethod }

// MemberName returns the method's name.
func (d *MethodDecl) MemberName() string { return d.Name }

func (*MethodDecl) sealedMember() {}
