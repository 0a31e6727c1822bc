// Package discovery models the discovery document describing a
// network service and provides a client for the discovery directory.
// Decorators receive a *Document but treat it as opaque input; only
// the generation pipeline and backends read identity fields.
package discovery

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Document is a parsed discovery document for one service version.
type Document struct {
	// Kind is the document kind marker (e.g. "discovery#restDescription").
	Kind string `json:"kind"`

	// ID is the service identifier: "{name}:{version}".
	ID string `json:"id"`

	// Name is the service name (e.g. "calendar").
	Name string `json:"name" validate:"required"`

	// Version is the service version (e.g. "v3").
	Version string `json:"version" validate:"required"`

	// Title is the human-readable service title.
	Title string `json:"title"`

	// Description is the service description.
	Description string `json:"description"`

	// RootURL is the root URL under which all API services live.
	RootURL string `json:"rootUrl" validate:"omitempty,url"`

	// ServicePath is the base path for REST requests, relative to RootURL.
	ServicePath string `json:"servicePath"`

	// DocumentationLink points at the service's reference docs.
	DocumentationLink string `json:"documentationLink"`

	// Methods contains top-level methods keyed by method name.
	Methods map[string]*Method `json:"methods"`

	// Resources contains nested resources keyed by resource name.
	Resources map[string]*Resource `json:"resources"`
}

// BaseURL returns the absolute base URL for REST requests.
func (d *Document) BaseURL() string {
	return d.RootURL + d.ServicePath
}

// Validate checks that the document carries the fields generation
// requires.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid discovery document: %w", err)
	}
	return nil
}

// Resource is a group of related methods, possibly nested.
type Resource struct {
	// Methods contains the resource's methods keyed by method name.
	Methods map[string]*Method `json:"methods"`

	// Resources contains nested sub-resources keyed by name.
	Resources map[string]*Resource `json:"resources"`
}

// Method is a single REST method of a service or resource.
type Method struct {
	// ID is the qualified method identifier (e.g. "calendar.events.list").
	ID string `json:"id"`

	// Path is the URI template relative to the service base path.
	Path string `json:"path"`

	// HTTPMethod is the HTTP verb used by this method.
	HTTPMethod string `json:"httpMethod"`

	// Description documents the method.
	Description string `json:"description"`
}

// ParseDocument decodes and validates a discovery document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode discovery document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
