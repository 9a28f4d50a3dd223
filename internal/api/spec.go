// Package api describes and implements the authorizer's line-oriented wire format.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component schema names in the embedded document
const (
	SchemaOperation    = "Operation"
	SchemaAccountState = "AccountState"
)

//go:embed openapi.yaml
var rawDocument []byte

// GetSwagger loads and validates the embedded OpenAPI document
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(rawDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
}

// LookupSchema returns a component schema by name
func LookupSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema %q not found", name)
	}
	return ref.Value, nil
}
