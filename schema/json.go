// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// jsonMaxSafeInt is the largest integer magnitude a float64 holds exactly,
// which is the working range of most JSON consumers.
const jsonMaxSafeInt = 1<<53 - 1

// ValuesToJSON renders values as one JSON object in field order. Integers
// wider than the float64-safe range are rendered as strings so they survive
// consumers that parse every number as float64. Byte blocks render as
// base64 strings.
func ValuesToJSON(values []Value) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(v.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", v.Name)
		}
		buf.Write(name)
		buf.WriteByte(':')
		b, err := marshalValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", v.Name)
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValuesFromJSON parses a JSON object, as produced by ValuesToJSON or
// written by hand, against the schema. Every schema field must be present
// and unknown keys are rejected. Wide integers may be given bare or as
// strings.
func (s *Schema) ValuesFromJSON(data []byte) ([]Value, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing values")
	}
	for name := range raw {
		if !s.hasField(name) {
			return nil, errors.Errorf("unknown field %q", name)
		}
	}

	out := make([]Value, 0, len(s.Fields))
	for _, f := range s.Fields {
		m, ok := raw[f.Name]
		if !ok {
			return nil, errors.Errorf("missing field %q", f.Name)
		}
		v, err := parseValue(f.Type, m)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q (%s)", f.Name, f.Type)
		}
		out = append(out, Value{Name: f.Name, Type: f.Type, V: v})
	}
	return out, nil
}

func (s *Schema) hasField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func marshalValue(v Value) ([]byte, error) {
	switch x := v.V.(type) {
	case uint64:
		return marshalUint64(x), nil
	case int64:
		return marshalInt64(x), nil
	case []uint64:
		return marshalNumberSlice(x, marshalUint64), nil
	case []int64:
		return marshalNumberSlice(x, marshalInt64), nil
	}
	return json.Marshal(v.V)
}

func marshalUint64(v uint64) []byte {
	s := strconv.FormatUint(v, 10)
	if v > jsonMaxSafeInt {
		s = `"` + s + `"`
	}
	return []byte(s)
}

func marshalInt64(v int64) []byte {
	s := strconv.FormatInt(v, 10)
	if v > jsonMaxSafeInt || v < -jsonMaxSafeInt {
		s = `"` + s + `"`
	}
	return []byte(s)
}

func marshalNumberSlice[T any](values []T, one func(T) []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(one(v))
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func parseValue(typ string, raw json.RawMessage) (any, error) {
	switch typ {
	case "u8":
		n, err := parseUint(raw, 8)
		return uint8(n), err
	case "i8":
		n, err := parseInt(raw, 8)
		return int8(n), err
	case "u16":
		n, err := parseUint(raw, 16)
		return uint16(n), err
	case "i16":
		n, err := parseInt(raw, 16)
		return int16(n), err
	case "u32":
		n, err := parseUint(raw, 32)
		return uint32(n), err
	case "i32":
		n, err := parseInt(raw, 32)
		return int32(n), err
	case "u64":
		return parseUint(raw, 64)
	case "i64":
		return parseInt(raw, 64)
	case "f32":
		var f float32
		err := json.Unmarshal(raw, &f)
		return f, err
	case "f64":
		var f float64
		err := json.Unmarshal(raw, &f)
		return f, err
	case "bool":
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case "string":
		var str string
		err := json.Unmarshal(raw, &str)
		return str, err
	case "bytes":
		var b []byte
		err := json.Unmarshal(raw, &b)
		if b == nil {
			b = []byte{}
		}
		return b, err
	}
	if elem, ok := strings.CutPrefix(typ, "[]"); ok {
		return parseSliceValue(elem, raw)
	}
	return nil, errors.Errorf("unknown type %q", typ)
}

func parseSliceValue(elem string, raw json.RawMessage) (any, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	switch elem {
	case "u16":
		return parseSlice(items, func(m json.RawMessage) (uint16, error) {
			n, err := parseUint(m, 16)
			return uint16(n), err
		})
	case "i16":
		return parseSlice(items, func(m json.RawMessage) (int16, error) {
			n, err := parseInt(m, 16)
			return int16(n), err
		})
	case "u32":
		return parseSlice(items, func(m json.RawMessage) (uint32, error) {
			n, err := parseUint(m, 32)
			return uint32(n), err
		})
	case "i32":
		return parseSlice(items, func(m json.RawMessage) (int32, error) {
			n, err := parseInt(m, 32)
			return int32(n), err
		})
	case "u64":
		return parseSlice(items, func(m json.RawMessage) (uint64, error) {
			return parseUint(m, 64)
		})
	case "i64":
		return parseSlice(items, func(m json.RawMessage) (int64, error) {
			return parseInt(m, 64)
		})
	case "f32":
		return parseSlice(items, func(m json.RawMessage) (float32, error) {
			var f float32
			err := json.Unmarshal(m, &f)
			return f, err
		})
	case "f64":
		return parseSlice(items, func(m json.RawMessage) (float64, error) {
			var f float64
			err := json.Unmarshal(m, &f)
			return f, err
		})
	case "string":
		return parseSlice(items, func(m json.RawMessage) (string, error) {
			var str string
			err := json.Unmarshal(m, &str)
			return str, err
		})
	}
	return nil, errors.Errorf("unknown type %q", "[]"+elem)
}

func parseSlice[T any](items []json.RawMessage, elem func(json.RawMessage) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := elem(item)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseUint(raw json.RawMessage, bits int) (uint64, error) {
	return strconv.ParseUint(numberToken(raw), 10, bits)
}

func parseInt(raw json.RawMessage, bits int) (int64, error) {
	return strconv.ParseInt(numberToken(raw), 10, bits)
}

// numberToken strips the quotes from a JSON string so wide integers can be
// given either bare or quoted. Digits never need escaping, so unquoting is
// just trimming.
func numberToken(raw json.RawMessage) string {
	s := string(bytes.TrimSpace(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
