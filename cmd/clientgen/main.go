package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/MSPSL/clientgen"
	"github.com/MSPSL/clientgen/discovery"
)

const version = "0.1.0"

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate a service client from a discovery document."`
	List    ListCmd    `cmd:"" help:"List services available in the discovery directory."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("clientgen " + version)
	return nil
}

type GenCmd struct {
	Doc       string `arg:"" help:"Discovery document path or URL."`
	Out       string `help:"Output directory for generated files." short:"o" default:"./gen"`
	Target    string `help:"Output language (csharp or go)." short:"t" default:"csharp"`
	Namespace string `help:"Namespace for generated C# classes."`
	Package   string `help:"Package name for generated Go code."`
}

func (c *GenCmd) Run() error {
	ctx := context.Background()

	doc, err := c.loadDocument(ctx)
	if err != nil {
		return err
	}

	cfg := &clientgen.Config{
		OutDir:    c.Out,
		Target:    c.Target,
		Namespace: c.Namespace,
		GoPackage: c.Package,
	}
	if err := clientgen.Generate(ctx, doc, cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "generated %s client for %s %s in %s\n", c.Target, doc.Name, doc.Version, c.Out)
	return nil
}

func (c *GenCmd) loadDocument(ctx context.Context) (*discovery.Document, error) {
	if strings.HasPrefix(c.Doc, "http://") || strings.HasPrefix(c.Doc, "https://") {
		return (&discovery.Client{}).Get(ctx, c.Doc)
	}
	data, err := os.ReadFile(c.Doc)
	if err != nil {
		return nil, fmt.Errorf("failed to read discovery document: %w", err)
	}
	return discovery.ParseDocument(data)
}

type ListCmd struct {
	Name         string `help:"Only list services with this name."`
	Preferred    bool   `help:"Only list preferred service versions."`
	DirectoryURL string `help:"Discovery directory endpoint." name:"directory-url"`
}

func (c *ListCmd) Run() error {
	client := &discovery.Client{DirectoryURL: c.DirectoryURL}
	dir, err := client.List(context.Background(), discovery.ListCall{
		Name:      c.Name,
		Preferred: c.Preferred,
	})
	if err != nil {
		return err
	}

	for _, item := range dir.Items {
		fmt.Printf("%-40s %s\n", item.ID, item.Title)
	}
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("clientgen"),
		kong.Description("Generate client libraries from service discovery documents."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
