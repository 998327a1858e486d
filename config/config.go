// Package config loads enum declarations from YAML or JSON documents and
// builds them into a populated enum registry.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/enu-go/enu"
	"gopkg.in/yaml.v3"
)

// Document is the root of a declaration file.
type Document struct {
	Enums []EnumDecl `json:"enums" yaml:"enums"`
}

// EnumDecl declares one enum type. Extends names a previously declared (or
// pre-registered) enum whose options seed this one.
type EnumDecl struct {
	Name    string       `json:"name" yaml:"name"`
	Extends string       `json:"extends" yaml:"extends"`
	Options []OptionDecl `json:"options" yaml:"options"`
}

// OptionDecl declares one option. In the document it is either a plain
// string (auto-assigned value) or a single-entry mapping key: value
// (explicit value):
//
//	options:
//	  - draft
//	  - moderated: 10
//
// Value stays untyped here; integer validation happens in the registry.
type OptionDecl struct {
	Key   string
	Value any
}

// UnmarshalYAML accepts the scalar and single-entry-mapping forms.
func (o *OptionDecl) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&o.Key)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: option mapping must have exactly one entry", node.Line)
		}
		if err := node.Content[0].Decode(&o.Key); err != nil {
			return err
		}
		return node.Content[1].Decode(&o.Value)
	default:
		return fmt.Errorf("line %d: option must be a string or a single-entry mapping", node.Line)
	}
}

// UnmarshalJSON accepts the same two forms as UnmarshalYAML.
func (o *OptionDecl) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		o.Key = key
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("option must be a string or a single-entry object: %w", err)
	}
	if len(m) != 1 {
		return fmt.Errorf("option object must have exactly one entry, got %d", len(m))
	}
	for k, v := range m {
		o.Key = k
		o.Value = v
	}
	return nil
}

// LoadFromYAML parses a YAML declaration document.
func LoadFromYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse enum declarations: %w", err)
	}
	return &doc, nil
}

// LoadFromJSON parses a JSON declaration document.
func LoadFromJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse enum declarations: %w", err)
	}
	return &doc, nil
}

// LoadFromFile reads a declaration document from disk, picking the parser
// from the file extension (.yml, .yaml or .json).
func LoadFromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadByExtension(path, data)
}

// LoadFromFS is LoadFromFile over an fs.FS, e.g. an embedded filesystem.
func LoadFromFS(fsys fs.FS, path string) (*Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return loadByExtension(path, data)
}

func loadByExtension(path string, data []byte) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return LoadFromYAML(data)
	case ".json":
		return LoadFromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported declaration file extension: %s", path)
	}
}

// Build declares every enum of the document into a fresh registry.
func (d *Document) Build() (*enu.Registry, error) {
	return d.BuildInto(enu.NewRegistry())
}

// BuildInto declares the document's enums into reg, in document order.
// Extends resolves against enums already in reg, so a document may extend
// both its own earlier declarations and pre-registered ones. The first
// declaration error aborts the build.
func (d *Document) BuildInto(reg *enu.Registry) (*enu.Registry, error) {
	for _, decl := range d.Enums {
		if decl.Name == "" {
			return nil, fmt.Errorf("enum declaration without a name")
		}

		var e *enu.Enum
		if decl.Extends != "" {
			parent, ok := reg.Get(decl.Extends)
			if !ok {
				return nil, fmt.Errorf("enum %q extends unknown enum %q", decl.Name, decl.Extends)
			}
			e = parent.Derive(decl.Name)
		} else {
			e = enu.New(decl.Name)
		}

		for _, opt := range decl.Options {
			if err := e.OptionValue(opt.Key, opt.Value); err != nil {
				return nil, err
			}
		}

		if err := reg.Register(e); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
