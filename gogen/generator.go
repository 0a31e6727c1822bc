// Package gogen renders decl nodes as Go source using jennifer.
//
// The neutral AST models classes with fields, properties, and
// methods; gogen maps them onto a struct with methods. Properties
// become getter methods, and property references in member bodies
// become calls to those getters. Type references resolve through a
// mapping table onto Go types; static members of a mapped type
// (factories, enum values) resolve to package-level identifiers of
// the mapped type's package.
package gogen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/MSPSL/clientgen/decl"
)

// FileExtension is the extension for emitted files.
const FileExtension = ".go"

// serdePkg is the import path of the bundled serialization runtime.
const serdePkg = "github.com/MSPSL/clientgen/serde"

// Options configures Go generation.
type Options struct {
	// PackageName is the generated package name (default "client").
	PackageName string

	// TypeMappings maps qualified decl type names onto Go types.
	// Values are "name" for builtins or "import/path.Name", with an
	// optional leading "*" for pointer types. Entries are merged over
	// DefaultTypeMappings.
	TypeMappings map[string]string

	// MethodNames renames invoked methods (e.g. "ToString" to
	// "String"). Entries are merged over the defaults.
	MethodNames map[string]string
}

// DefaultTypeMappings maps the serializer surface the decorators
// target onto the bundled serde runtime.
func DefaultTypeMappings() map[string]string {
	return map[string]string{
		"object":                                 "any",
		"string":                                 "string",
		"Newtonsoft.Json.JsonSerializer":         "*" + serdePkg + ".Serializer",
		"Newtonsoft.Json.JsonSerializerSettings": "*" + serdePkg + ".Settings",
		"Newtonsoft.Json.NullValueHandling":      serdePkg + ".NullValueHandling",
		"System.IO.StringWriter":                 "*strings.Builder",
	}
}

// DefaultMethodNames renames target-language method calls onto their
// Go equivalents.
func DefaultMethodNames() map[string]string {
	return map[string]string{
		"ToString": "String",
	}
}

// Generator renders declaration nodes into Go source.
type Generator struct {
	opts Options
}

// NewGenerator creates a Generator, applying option defaults.
func NewGenerator(opts Options) *Generator {
	if opts.PackageName == "" {
		opts.PackageName = "client"
	}

	types := DefaultTypeMappings()
	for k, v := range opts.TypeMappings {
		types[k] = v
	}
	opts.TypeMappings = types

	methods := DefaultMethodNames()
	for k, v := range opts.MethodNames {
		methods[k] = v
	}
	opts.MethodNames = methods

	return &Generator{opts: opts}
}

// Generate renders the class as a formatted Go source file.
func (g *Generator) Generate(class *decl.ClassDecl) (string, error) {
	r, err := g.newClassRenderer(class)
	if err != nil {
		return "", err
	}

	f := jen.NewFile(g.opts.PackageName)
	f.HeaderComment("Code generated by clientgen. DO NOT EDIT.")

	if err := r.renderStruct(f); err != nil {
		return "", err
	}
	if err := r.renderMembers(f); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render Go source: %w", err)
	}

	formatted, err := imports.Process(strings.ToLower(class.Name)+FileExtension, buf.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to format generated source: %w", err)
	}
	return string(formatted), nil
}

// classRenderer holds per-class naming state: which member names are
// fields and which are properties, and the Go method name chosen for
// each property.
type classRenderer struct {
	g     *Generator
	class *decl.ClassDecl
	recv  string

	fields map[string]bool
	props  map[string]string
}

func (g *Generator) newClassRenderer(class *decl.ClassDecl) (*classRenderer, error) {
	r := &classRenderer{
		g:      g,
		class:  class,
		recv:   "s",
		fields: map[string]bool{},
		props:  map[string]string{},
	}

	for _, m := range class.Members {
		if f, ok := m.(*decl.FieldDecl); ok {
			r.fields[f.Name] = true
		}
	}
	for _, m := range class.Members {
		p, ok := m.(*decl.PropertyDecl)
		if !ok {
			continue
		}
		name := p.Name
		if p.Access == decl.Private {
			name = lowerFirst(name)
		}
		// A struct field and a method cannot share a name; fall back
		// to a get prefix for the accessor.
		if r.fields[name] {
			name = "get" + upperFirst(p.Name)
		}
		r.props[p.Name] = name
	}
	return r, nil
}

func (r *classRenderer) renderStruct(f *jen.File) error {
	var fields []jen.Code
	for _, m := range r.class.Members {
		fd, ok := m.(*decl.FieldDecl)
		if !ok {
			continue
		}
		if fd.Init != nil {
			if _, isNull := fd.Init.(*decl.NullLit); !isNull {
				return fmt.Errorf("field %q: only null initializers map to Go zero values", fd.Name)
			}
		}
		typ, err := r.typeCode(fd.Type)
		if err != nil {
			return fmt.Errorf("field %q: %w", fd.Name, err)
		}
		fields = append(fields, jen.Id(fd.Name).Add(typ))
	}

	if r.class.Doc != "" {
		f.Comment(fmt.Sprintf("%s %s", r.class.Name, r.class.Doc))
	}
	f.Type().Id(r.class.Name).Struct(fields...)
	f.Line()
	return nil
}

func (r *classRenderer) renderMembers(f *jen.File) error {
	for _, m := range r.class.Members {
		var err error
		switch d := m.(type) {
		case *decl.FieldDecl:
			// Rendered in the struct definition.
		case *decl.PropertyDecl:
			err = r.renderProperty(f, d)
		case *decl.MethodDecl:
			err = r.renderMethod(f, d)
		default:
			err = fmt.Errorf("unsupported member kind: %s", m.Kind())
		}
		if err != nil {
			return fmt.Errorf("failed to render member %q: %w", m.MemberName(), err)
		}
	}
	return nil
}

func (r *classRenderer) renderProperty(f *jen.File, p *decl.PropertyDecl) error {
	typ, err := r.typeCode(p.Type)
	if err != nil {
		return err
	}
	body, err := r.stmtCodes(p.Body)
	if err != nil {
		return err
	}
	f.Func().Params(jen.Id(r.recv).Op("*").Id(r.class.Name)).
		Id(r.props[p.Name]).Params().Add(typ).Block(body...)
	f.Line()
	return nil
}

func (r *classRenderer) renderMethod(f *jen.File, m *decl.MethodDecl) error {
	params := make([]jen.Code, len(m.Params))
	for i, p := range m.Params {
		typ, err := r.typeCode(p.Type)
		if err != nil {
			return err
		}
		params[i] = jen.Id(p.Name).Add(typ)
	}

	body, err := r.stmtCodes(m.Body)
	if err != nil {
		return err
	}

	name := m.Name
	if m.Access == decl.Private {
		name = lowerFirst(name)
	}

	fn := f.Func().Params(jen.Id(r.recv).Op("*").Id(r.class.Name)).
		Id(name).Params(params...)
	if !m.Return.IsZero() {
		ret, err := r.typeCode(m.Return)
		if err != nil {
			return err
		}
		fn.Add(ret)
	}
	fn.Block(body...)
	f.Line()
	return nil
}

func (r *classRenderer) stmtCodes(stmts []decl.Stmt) ([]jen.Code, error) {
	codes := make([]jen.Code, len(stmts))
	for i, s := range stmts {
		c, err := r.stmtCode(s)
		if err != nil {
			return nil, err
		}
		codes[i] = c
	}
	return codes, nil
}

func (r *classRenderer) stmtCode(stmt decl.Stmt) (jen.Code, error) {
	switch s := stmt.(type) {
	case *decl.VarDeclStmt:
		if s.Init == nil {
			return nil, fmt.Errorf("local %q: declarations without initializers are not supported", s.Name)
		}
		init, err := r.exprCode(s.Init)
		if err != nil {
			return nil, err
		}
		return jen.Id(s.Name).Op(":=").Add(init), nil
	case *decl.AssignStmt:
		target, err := r.exprCode(s.Target)
		if err != nil {
			return nil, err
		}
		value, err := r.exprCode(s.Value)
		if err != nil {
			return nil, err
		}
		return jen.Add(target).Op("=").Add(value), nil
	case *decl.IfStmt:
		cond, err := r.exprCode(s.Cond)
		if err != nil {
			return nil, err
		}
		body, err := r.stmtCodes(s.Then)
		if err != nil {
			return nil, err
		}
		return jen.If(jen.Add(cond)).Block(body...), nil
	case *decl.ReturnStmt:
		if s.Result == nil {
			return jen.Return(), nil
		}
		result, err := r.exprCode(s.Result)
		if err != nil {
			return nil, err
		}
		return jen.Return(result), nil
	case *decl.ExprStmt:
		return r.exprCode(s.X)
	default:
		return nil, fmt.Errorf("unsupported statement kind: %s", stmt.Kind())
	}
}

func (r *classRenderer) exprCode(expr decl.Expr) (jen.Code, error) {
	switch x := expr.(type) {
	case *decl.ThisExpr:
		return jen.Id(r.recv), nil
	case *decl.IdentExpr:
		return jen.Id(x.Name), nil
	case *decl.SelectExpr:
		return r.selectCode(x, "")
	case *decl.CallExpr:
		return r.callCode(x)
	case *decl.NewExpr:
		return r.newCode(x)
	case *decl.BinaryExpr:
		lhs, err := r.exprCode(x.X)
		if err != nil {
			return nil, err
		}
		rhs, err := r.exprCode(x.Y)
		if err != nil {
			return nil, err
		}
		return jen.Add(lhs).Op(x.Op.String()).Add(rhs), nil
	case *decl.NullLit:
		return jen.Nil(), nil
	case *decl.StringLit:
		return jen.Lit(x.Value), nil
	default:
		return nil, fmt.Errorf("unsupported expression kind: %s", expr.Kind())
	}
}

// selectCode renders a member selection. rename overrides the
// selected name when non-empty (used for invoked method names).
func (r *classRenderer) selectCode(x *decl.SelectExpr, rename string) (jen.Code, error) {
	name := x.Name
	if rename != "" {
		name = rename
	}

	// Static members of a mapped type resolve to package-level
	// identifiers in the mapped package.
	if te, ok := x.Receiver.(*decl.TypeExpr); ok {
		mapped, err := r.mappedType(te.Type)
		if err != nil {
			return nil, err
		}
		if mapped.pkg == "" {
			return nil, fmt.Errorf("type %q has no package for static member %q", te.Type.Qualified(), name)
		}
		return jen.Qual(mapped.pkg, name), nil
	}

	// Property references become getter calls.
	if _, ok := x.Receiver.(*decl.ThisExpr); ok {
		if goName, isProp := r.props[x.Name]; isProp && rename == "" {
			return jen.Id(r.recv).Dot(goName).Call(), nil
		}
	}

	recv, err := r.exprCode(x.Receiver)
	if err != nil {
		return nil, err
	}
	return jen.Add(recv).Dot(name), nil
}

func (r *classRenderer) callCode(x *decl.CallExpr) (jen.Code, error) {
	args := make([]jen.Code, len(x.Args))
	for i, a := range x.Args {
		c, err := r.exprCode(a)
		if err != nil {
			return nil, err
		}
		args[i] = c
	}

	if sel, ok := x.Callee.(*decl.SelectExpr); ok {
		name := sel.Name
		if mapped, ok := r.g.opts.MethodNames[name]; ok {
			name = mapped
		}
		callee, err := r.selectCode(sel, name)
		if err != nil {
			return nil, err
		}
		return jen.Add(callee).Call(args...), nil
	}

	callee, err := r.exprCode(x.Callee)
	if err != nil {
		return nil, err
	}
	return jen.Add(callee).Call(args...), nil
}

func (r *classRenderer) newCode(x *decl.NewExpr) (jen.Code, error) {
	if len(x.Args) > 0 {
		return nil, fmt.Errorf("constructor arguments are not supported for %q", x.Type.Qualified())
	}
	mapped, err := r.mappedType(x.Type)
	if err != nil {
		return nil, err
	}
	if !mapped.ptr || mapped.pkg == "" {
		return nil, fmt.Errorf("type %q does not map to a constructible Go type", x.Type.Qualified())
	}
	return jen.Op("&").Qual(mapped.pkg, mapped.name).Values(), nil
}

// goType is a parsed type mapping value.
type goType struct {
	ptr  bool
	pkg  string
	name string
}

func (r *classRenderer) mappedType(t decl.TypeRef) (goType, error) {
	mapping, ok := r.g.opts.TypeMappings[t.Qualified()]
	if !ok {
		return goType{}, fmt.Errorf("no Go type mapping for %q", t.Qualified())
	}

	var gt goType
	rest := mapping
	if strings.HasPrefix(rest, "*") {
		gt.ptr = true
		rest = rest[1:]
	}
	if i := strings.LastIndex(rest, "."); i >= 0 {
		gt.pkg = rest[:i]
		gt.name = rest[i+1:]
	} else {
		gt.name = rest
	}
	return gt, nil
}

func (r *classRenderer) typeCode(t decl.TypeRef) (jen.Code, error) {
	gt, err := r.mappedType(t)
	if err != nil {
		return nil, err
	}

	var code *jen.Statement
	if gt.pkg != "" {
		code = jen.Qual(gt.pkg, gt.name)
	} else {
		code = jen.Id(gt.name)
	}
	if gt.ptr {
		return jen.Op("*").Add(code), nil
	}
	return code, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
