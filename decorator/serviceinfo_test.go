package decorator

import (
	"testing"

	"github.com/MSPSL/clientgen/decl"
	"github.com/MSPSL/clientgen/discovery"
)

func TestServiceInfo_Decorate(t *testing.T) {
	doc := &discovery.Document{
		Name:        "calendar",
		Version:     "v3",
		RootURL:     "https://www.googleapis.com/",
		ServicePath: "calendar/v3/",
	}

	class := &decl.ClassDecl{Name: "CalendarService"}
	(&ServiceInfo{}).Decorate(doc, class)

	if got := len(class.Members); got != 3 {
		t.Fatalf("len(Members) = %d, want 3", got)
	}

	wantValues := map[string]string{
		"Name":    "calendar",
		"Version": "v3",
		"BaseUri": "https://www.googleapis.com/calendar/v3/",
	}
	wantOrder := []string{"Name", "Version", "BaseUri"}

	for i, m := range class.Members {
		p, ok := m.(*decl.PropertyDecl)
		if !ok {
			t.Fatalf("Members[%d] = %T, want *decl.PropertyDecl", i, m)
		}
		if p.Name != wantOrder[i] {
			t.Errorf("Members[%d].Name = %q, want %q", i, p.Name, wantOrder[i])
		}
		if p.Access != decl.Public || !p.GetOnly {
			t.Errorf("property %q should be public get-only", p.Name)
		}
		if len(p.Body) != 1 {
			t.Fatalf("property %q has %d statements, want 1", p.Name, len(p.Body))
		}
		ret, ok := p.Body[0].(*decl.ReturnStmt)
		if !ok {
			t.Fatalf("property %q body = %T, want *decl.ReturnStmt", p.Name, p.Body[0])
		}
		lit, ok := ret.Result.(*decl.StringLit)
		if !ok {
			t.Fatalf("property %q returns %T, want *decl.StringLit", p.Name, ret.Result)
		}
		if lit.Value != wantValues[p.Name] {
			t.Errorf("property %q returns %q, want %q", p.Name, lit.Value, wantValues[p.Name])
		}
	}
}

func TestApply_RunsDecoratorsInOrder(t *testing.T) {
	doc := &discovery.Document{Name: "drive", Version: "v2"}
	class := &decl.ClassDecl{Name: "DriveService"}

	Apply(doc, class, &ServiceInfo{}, NewJSONSerializer())

	want := []string{"Name", "Version", "BaseUri", "serializer", "Serializer", "ObjectToJson"}
	got := class.MemberNames()
	if len(got) != len(want) {
		t.Fatalf("len(Members) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Members[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
