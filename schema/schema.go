// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package schema describes the value sequence inside an encoded buffer. The
// wire format is type-blind, so producer and consumer must agree on the
// exact order of types out of band; a schema file is that agreement written
// down, and it is what lets the command line tools decode a buffer they did
// not produce.
//
// Schemas are TOML documents:
//
//	name = "sensor-frame"
//
//	[[field]]
//	name = "id"
//	type = "u32"
//
//	[[field]]
//	name = "samples"
//	type = "[]f64"
//
// Field types use the wire vocabulary: u8, i8, u16, i16, u32, i32, u64,
// i64, f32, f64, bool, string, and bytes, plus []T forms of the multi-byte
// numeric types and string. Single-byte blocks are spelled bytes, which has
// the same encoding as a collection of u8.
package schema

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Field is one entry in a schema: a display name and a wire type.
type Field struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Schema is an ordered field sequence. Order is significant, it is the read
// order of the buffer.
type Schema struct {
	Name   string  `toml:"name"`
	Fields []Field `toml:"field"`
}

// Value is one decoded field: its schema name and type, and the decoded Go
// value.
type Value struct {
	Name string
	Type string
	V    any
}

var scalarTypes = map[string]bool{
	"u8":     true,
	"i8":     true,
	"u16":    true,
	"i16":    true,
	"u32":    true,
	"i32":    true,
	"u64":    true,
	"i64":    true,
	"f32":    true,
	"f64":    true,
	"bool":   true,
	"string": true,
	"bytes":  true,
}

var sliceElemTypes = map[string]bool{
	"u16":    true,
	"i16":    true,
	"u32":    true,
	"i32":    true,
	"u64":    true,
	"i64":    true,
	"f32":    true,
	"f64":    true,
	"string": true,
}

func validType(t string) bool {
	if scalarTypes[t] {
		return true
	}
	elem, ok := strings.CutPrefix(t, "[]")
	return ok && sliceElemTypes[elem]
}

// Parse decodes a TOML schema document and validates it.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parsing schema")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a TOML schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "schema %s", path)
	}
	return s, nil
}

// Validate checks that the schema has at least one field and that every
// field has a unique name and a known type.
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return errors.New("schema has no fields")
	}
	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return errors.Errorf("field %d has no name", i)
		}
		if seen[f.Name] {
			return errors.Errorf("field %q appears twice", f.Name)
		}
		seen[f.Name] = true
		if !validType(f.Type) {
			return errors.Errorf("field %q has unknown type %q", f.Name, f.Type)
		}
	}
	return nil
}
