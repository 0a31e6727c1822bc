// Package csharp renders decl nodes as C# source text.
package csharp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/MSPSL/clientgen/decl"
)

// Options configures C# emission.
type Options struct {
	// IndentSize is the number of spaces per indent level (default 4).
	IndentSize int

	// Namespace wraps the emitted class when non-empty.
	Namespace string

	// FileHeader is emitted verbatim at the top of the file when
	// non-empty (e.g. a generated-code banner).
	FileHeader string
}

// FileExtension is the extension for emitted files.
const FileExtension = ".cs"

// Emitter renders declaration nodes into C# source.
type Emitter struct {
	opts Options
}

// NewEmitter creates an Emitter, applying option defaults.
func NewEmitter(opts Options) *Emitter {
	if opts.IndentSize == 0 {
		opts.IndentSize = 4
	}
	return &Emitter{opts: opts}
}

// EmitFile emits a complete source file containing the class,
// wrapped in the configured namespace.
func (e *Emitter) EmitFile(buf *bytes.Buffer, class *decl.ClassDecl) error {
	if e.opts.FileHeader != "" {
		buf.WriteString(e.opts.FileHeader)
		if !strings.HasSuffix(e.opts.FileHeader, "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	depth := 0
	if e.opts.Namespace != "" {
		fmt.Fprintf(buf, "namespace %s\n{\n", e.opts.Namespace)
		depth = 1
	}

	if err := e.EmitClass(buf, class, depth); err != nil {
		return err
	}

	if e.opts.Namespace != "" {
		buf.WriteString("}\n")
	}
	return nil
}

// EmitClass emits the class declaration and its members in order.
func (e *Emitter) EmitClass(buf *bytes.Buffer, class *decl.ClassDecl, depth int) error {
	ind := e.indent(depth)

	if class.Doc != "" {
		fmt.Fprintf(buf, "%s/// <summary>%s</summary>\n", ind, class.Doc)
	}
	fmt.Fprintf(buf, "%spublic class %s\n%s{\n", ind, class.Name, ind)

	for i, m := range class.Members {
		if i > 0 {
			buf.WriteString("\n")
		}
		var err error
		switch d := m.(type) {
		case *decl.FieldDecl:
			err = e.emitField(buf, d, depth+1)
		case *decl.PropertyDecl:
			err = e.emitProperty(buf, d, depth+1)
		case *decl.MethodDecl:
			err = e.emitMethod(buf, d, depth+1)
		default:
			err = fmt.Errorf("unsupported member kind: %s", m.Kind())
		}
		if err != nil {
			return fmt.Errorf("failed to emit member %q: %w", m.MemberName(), err)
		}
	}

	fmt.Fprintf(buf, "%s}\n", ind)
	return nil
}

func (e *Emitter) emitField(buf *bytes.Buffer, f *decl.FieldDecl, depth int) error {
	ind := e.indent(depth)
	fmt.Fprintf(buf, "%s%s %s %s", ind, accessKeyword(f.Access), f.Type.Qualified(), f.Name)
	if f.Init != nil {
		init, err := e.EmitExpr(f.Init)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, " = %s", init)
	}
	buf.WriteString(";\n")
	return nil
}

func (e *Emitter) emitProperty(buf *bytes.Buffer, p *decl.PropertyDecl, depth int) error {
	// PropertyDecl carries a getter body only; a bodied getter cannot
	// pair with an auto-setter in C#.
	if !p.GetOnly {
		return fmt.Errorf("settable properties are not supported")
	}

	ind := e.indent(depth)
	fmt.Fprintf(buf, "%s%s %s %s\n%s{\n", ind, accessKeyword(p.Access), p.Type.Qualified(), p.Name, ind)
	fmt.Fprintf(buf, "%sget\n%s{\n", e.indent(depth+1), e.indent(depth+1))
	for _, s := range p.Body {
		if err := e.emitStmt(buf, s, depth+2); err != nil {
			return err
		}
	}
	fmt.Fprintf(buf, "%s}\n", e.indent(depth+1))
	fmt.Fprintf(buf, "%s}\n", ind)
	return nil
}

func (e *Emitter) emitMethod(buf *bytes.Buffer, m *decl.MethodDecl, depth int) error {
	ind := e.indent(depth)

	ret := "void"
	if !m.Return.IsZero() {
		ret = m.Return.Qualified()
	}
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Type.Qualified() + " " + p.Name
	}
	fmt.Fprintf(buf, "%s%s %s %s(%s)\n%s{\n", ind, accessKeyword(m.Access), ret, m.Name, strings.Join(params, ", "), ind)
	for _, s := range m.Body {
		if err := e.emitStmt(buf, s, depth+1); err != nil {
			return err
		}
	}
	fmt.Fprintf(buf, "%s}\n", ind)
	return nil
}

func (e *Emitter) emitStmt(buf *bytes.Buffer, stmt decl.Stmt, depth int) error {
	ind := e.indent(depth)

	switch s := stmt.(type) {
	case *decl.VarDeclStmt:
		init, err := e.EmitExpr(s.Init)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s%s %s = %s;\n", ind, s.Type.Qualified(), s.Name, init)
	case *decl.AssignStmt:
		target, err := e.EmitExpr(s.Target)
		if err != nil {
			return err
		}
		value, err := e.EmitExpr(s.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s%s = %s;\n", ind, target, value)
	case *decl.IfStmt:
		cond, err := e.EmitExpr(s.Cond)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%sif (%s)\n%s{\n", ind, cond, ind)
		for _, inner := range s.Then {
			if err := e.emitStmt(buf, inner, depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(buf, "%s}\n", ind)
	case *decl.ReturnStmt:
		if s.Result == nil {
			fmt.Fprintf(buf, "%sreturn;\n", ind)
			return nil
		}
		result, err := e.EmitExpr(s.Result)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%sreturn %s;\n", ind, result)
	case *decl.ExprStmt:
		x, err := e.EmitExpr(s.X)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s%s;\n", ind, x)
	default:
		return fmt.Errorf("unsupported statement kind: %s", stmt.Kind())
	}
	return nil
}

// EmitExpr renders an expression node as C# source.
func (e *Emitter) EmitExpr(expr decl.Expr) (string, error) {
	switch x := expr.(type) {
	case *decl.ThisExpr:
		return "this", nil
	case *decl.IdentExpr:
		return x.Name, nil
	case *decl.SelectExpr:
		recv, err := e.EmitExpr(x.Receiver)
		if err != nil {
			return "", err
		}
		return recv + "." + x.Name, nil
	case *decl.TypeExpr:
		return x.Type.Qualified(), nil
	case *decl.CallExpr:
		callee, err := e.EmitExpr(x.Callee)
		if err != nil {
			return "", err
		}
		args, err := e.emitArgs(x.Args)
		if err != nil {
			return "", err
		}
		return callee + "(" + args + ")", nil
	case *decl.NewExpr:
		args, err := e.emitArgs(x.Args)
		if err != nil {
			return "", err
		}
		return "new " + x.Type.Qualified() + "(" + args + ")", nil
	case *decl.BinaryExpr:
		lhs, err := e.EmitExpr(x.X)
		if err != nil {
			return "", err
		}
		rhs, err := e.EmitExpr(x.Y)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", lhs, x.Op, rhs), nil
	case *decl.NullLit:
		return "null", nil
	case *decl.StringLit:
		return fmt.Sprintf("%q", x.Value), nil
	default:
		return "", fmt.Errorf("unsupported expression kind: %s", expr.Kind())
	}
}

func (e *Emitter) emitArgs(args []decl.Expr) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		s, err := e.EmitExpr(a)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

func (e *Emitter) indent(depth int) string {
	return strings.Repeat(" ", depth*e.opts.IndentSize)
}

func accessKeyword(a decl.Access) string {
	switch a {
	case decl.Private:
		return "private"
	default:
		return "public"
	}
}
