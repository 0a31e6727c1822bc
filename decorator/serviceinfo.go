package decorator

import (
	"github.com/MSPSL/clientgen/decl"
	"github.com/MSPSL/clientgen/discovery"
)

// Member names appended by ServiceInfo.
const (
	ServiceNamePropertyName    = "Name"
	ServiceVersionPropertyName = "Version"
	ServiceBaseURIPropertyName = "BaseUri"
)

// ServiceInfo adds public get-only string properties exposing the
// service's identity (Name, Version, BaseUri) from the discovery
// document. Unlike JSONSerializer, this decorator's output depends on
// the description it is given.
type ServiceInfo struct{}

// Name implements Decorator.
func (s *ServiceInfo) Name() string { return "service-info" }

// Decorate appends the three identity properties in fixed order.
func (s *ServiceInfo) Decorate(doc *discovery.Document, class *decl.ClassDecl) {
	class.AppendMember(infoProperty(ServiceNamePropertyName, doc.Name))
	class.AppendMember(infoProperty(ServiceVersionPropertyName, doc.Version))
	class.AppendMember(infoProperty(ServiceBaseURIPropertyName, doc.BaseURL()))
}

func infoProperty(name, value string) *decl.PropertyDecl {
	return &decl.PropertyDecl{
		Name:    name,
		Type:    decl.Builtin("string"),
		Access:  decl.Public,
		GetOnly: true,
		Body: []decl.Stmt{
			decl.Return(decl.Str(value)),
		},
	}
}
