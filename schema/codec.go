// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package schema

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/binit-io/binit-go/binit"
)

// Decode reads the schema's field sequence from r and returns one Value per
// field, in order. The first failed read is returned with the field name and
// type attached; the reader is left wherever the failed read stopped.
func (s *Schema) Decode(r *binit.Reader) ([]Value, error) {
	out := make([]Value, 0, len(s.Fields))
	for _, f := range s.Fields {
		v, err := readValue(r, f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q (%s)", f.Name, f.Type)
		}
		out = append(out, Value{Name: f.Name, Type: f.Type, V: v})
	}
	return out, nil
}

// Encode writes values onto w in the schema's field order. Values must
// appear in schema order carrying the Go types Decode produces; a value
// whose dynamic type does not match its field type is rejected.
func (s *Schema) Encode(w *binit.Writer, values []Value) error {
	if len(values) != len(s.Fields) {
		return errors.Errorf("schema has %d fields, got %d values", len(s.Fields), len(values))
	}
	for i, f := range s.Fields {
		if err := writeValue(w, f.Type, values[i].V); err != nil {
			return errors.Wrapf(err, "field %q (%s)", f.Name, f.Type)
		}
	}
	return nil
}

func readValue(r *binit.Reader, typ string) (any, error) {
	switch typ {
	case "u8":
		return r.ReadUint8()
	case "i8":
		return r.ReadInt8()
	case "u16":
		return r.ReadUint16()
	case "i16":
		return r.ReadInt16()
	case "u32":
		return r.ReadUint32()
	case "i32":
		return r.ReadInt32()
	case "u64":
		return r.ReadUint64()
	case "i64":
		return r.ReadInt64()
	case "f32":
		return r.ReadFloat32()
	case "f64":
		return r.ReadFloat64()
	case "bool":
		return r.ReadBool()
	case "string":
		return r.ReadString()
	case "bytes":
		return r.ReadBytes()
	}
	if elem, ok := strings.CutPrefix(typ, "[]"); ok {
		switch elem {
		case "u16":
			return r.ReadUint16Slice()
		case "i16":
			return r.ReadInt16Slice()
		case "u32":
			return r.ReadUint32Slice()
		case "i32":
			return r.ReadInt32Slice()
		case "u64":
			return r.ReadUint64Slice()
		case "i64":
			return r.ReadInt64Slice()
		case "f32":
			return r.ReadFloat32Slice()
		case "f64":
			return r.ReadFloat64Slice()
		case "string":
			return r.ReadStringSlice()
		}
	}
	return nil, errors.Errorf("unknown type %q", typ)
}

// put asserts v to the element type of write and applies it.
func put[T any](w *binit.Writer, v any, write func(*binit.Writer, T)) error {
	t, ok := v.(T)
	if !ok {
		return errors.Errorf("expected %T, got %T", t, v)
	}
	write(w, t)
	return nil
}

func writeValue(w *binit.Writer, typ string, v any) error {
	switch typ {
	case "u8":
		return put(w, v, (*binit.Writer).WriteUint8)
	case "i8":
		return put(w, v, (*binit.Writer).WriteInt8)
	case "u16":
		return put(w, v, (*binit.Writer).WriteUint16)
	case "i16":
		return put(w, v, (*binit.Writer).WriteInt16)
	case "u32":
		return put(w, v, (*binit.Writer).WriteUint32)
	case "i32":
		return put(w, v, (*binit.Writer).WriteInt32)
	case "u64":
		return put(w, v, (*binit.Writer).WriteUint64)
	case "i64":
		return put(w, v, (*binit.Writer).WriteInt64)
	case "f32":
		return put(w, v, (*binit.Writer).WriteFloat32)
	case "f64":
		return put(w, v, (*binit.Writer).WriteFloat64)
	case "bool":
		return put(w, v, (*binit.Writer).WriteBool)
	case "string":
		return put(w, v, (*binit.Writer).WriteString)
	case "bytes":
		return put(w, v, (*binit.Writer).WriteBytes)
	}
	if elem, ok := strings.CutPrefix(typ, "[]"); ok {
		switch elem {
		case "u16":
			return put(w, v, (*binit.Writer).WriteUint16Slice)
		case "i16":
			return put(w, v, (*binit.Writer).WriteInt16Slice)
		case "u32":
			return put(w, v, (*binit.Writer).WriteUint32Slice)
		case "i32":
			return put(w, v, (*binit.Writer).WriteInt32Slice)
		case "u64":
			return put(w, v, (*binit.Writer).WriteUint64Slice)
		case "i64":
			return put(w, v, (*binit.Writer).WriteInt64Slice)
		case "f32":
			return put(w, v, (*binit.Writer).WriteFloat32Slice)
		case "f64":
			return put(w, v, (*binit.Writer).WriteFloat64Slice)
		case "string":
			return put(w, v, (*binit.Writer).WriteStringSlice)
		}
	}
	return errors.Errorf("unknown type %q", typ)
}
