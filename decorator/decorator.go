// Package decorator provides class decorators: units that augment a
// generated service class with members. Decorators compose; the
// pipeline applies them sequentially over the same class node.
package decorator

import (
	"github.com/MSPSL/clientgen/decl"
	"github.com/MSPSL/clientgen/discovery"
)

// Decorator mutates a generated class by appending members.
//
// Decorate must only append to the class's member list; it must not
// remove or reorder existing members. Decorators perform no duplicate
// name checking — applying the same decorator twice to one class
// produces colliding members.
type Decorator interface {
	// Name identifies the decorator in diagnostics.
	Name() string

	// Decorate appends members derived from the service description.
	Decorate(doc *discovery.Document, class *decl.ClassDecl)
}

// Apply runs the decorators over the class in order.
func Apply(doc *discovery.Document, class *decl.ClassDecl, decorators ...Decorator) {
	for _, d := range decorators {
		d.Decorate(doc, class)
	}
}
