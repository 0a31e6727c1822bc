// Package clientgen generates client-library source for a service
// described by a discovery document. The pipeline builds a class
// declaration for the service, runs decorators over it, renders the
// result with a target-language backend, and writes it through an
// output sink.
package clientgen

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/MSPSL/clientgen/csharp"
	"github.com/MSPSL/clientgen/decl"
	"github.com/MSPSL/clientgen/decorator"
	"github.com/MSPSL/clientgen/discovery"
	"github.com/MSPSL/clientgen/gogen"
	"github.com/MSPSL/clientgen/sink"
)

var validate = validator.New()

// Config holds the configuration for client generation.
type Config struct {
	// OutDir is the directory generated files are written to.
	OutDir string `validate:"required"`

	// Target selects the rendering backend: "csharp" (default) or "go".
	Target string `validate:"omitempty,oneof=csharp go"`

	// Namespace wraps generated C# classes (default derived from the
	// service name).
	Namespace string

	// GoPackage names the generated Go package (default "client").
	GoPackage string

	// Decorators overrides the decorator sequence. The default is
	// ServiceInfo followed by JSONSerializer.
	Decorators []decorator.Decorator
}

// applyDefaults returns a copy of cfg with defaults filled in.
func applyDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Target == "" {
		result.Target = "csharp"
	}
	if result.Decorators == nil {
		result.Decorators = []decorator.Decorator{
			&decorator.ServiceInfo{},
			decorator.NewJSONSerializer(),
		}
	}
	return &result
}

// Generate generates the service class for doc and writes it under
// cfg.OutDir.
func Generate(ctx context.Context, doc *discovery.Document, cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return GenerateTo(ctx, doc, cfg, sink.NewFilesystemSink(cfg.OutDir))
}

// GenerateTo is Generate with a caller-supplied output sink. The
// OutDir requirement does not apply.
func GenerateTo(ctx context.Context, doc *discovery.Document, cfg *Config, out sink.OutputSink) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	cfg = applyDefaults(cfg)

	class := &decl.ClassDecl{
		Name: ClassName(doc),
		Doc:  doc.Title,
	}
	decorator.Apply(doc, class, cfg.Decorators...)

	var (
		content []byte
		path    string
		err     error
	)
	switch cfg.Target {
	case "csharp":
		content, path, err = renderCSharp(doc, class, cfg)
	case "go":
		content, path, err = renderGo(doc, class, cfg)
	default:
		return fmt.Errorf("unknown target: %q", cfg.Target)
	}
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", class.Name, err)
	}

	if err := out.WriteFile(ctx, path, content); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func renderCSharp(doc *discovery.Document, class *decl.ClassDecl, cfg *Config) ([]byte, string, error) {
	ns := cfg.Namespace
	if ns == "" {
		ns = "Generated." + identifier(doc.Name)
	}
	e := csharp.NewEmitter(csharp.Options{
		Namespace:  ns,
		FileHeader: fileHeader(doc),
	})

	var buf bytes.Buffer
	if err := e.EmitFile(&buf, class); err != nil {
		return nil, "", err
	}
	path := doc.Name + "/" + doc.Version + "/" + class.Name + csharp.FileExtension
	return buf.Bytes(), path, nil
}

func renderGo(doc *discovery.Document, class *decl.ClassDecl, cfg *Config) ([]byte, string, error) {
	g := gogen.NewGenerator(gogen.Options{PackageName: cfg.GoPackage})
	src, err := g.Generate(class)
	if err != nil {
		return nil, "", err
	}
	path := doc.Name + "/" + doc.Version + "/" + strings.ToLower(class.Name) + gogen.FileExtension
	return []byte(src), path, nil
}

// ClassName derives the generated class name from the service name:
// "calendar" becomes "CalendarService".
func ClassName(doc *discovery.Document) string {
	return identifier(doc.Name) + "Service"
}

// identifier upper-camel-cases a service name, dropping characters
// that cannot appear in an identifier.
func identifier(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fileHeader(doc *discovery.Document) string {
	return fmt.Sprintf("// Generated client for %s %s. Do not edit.", doc.Name, doc.Version)
}
