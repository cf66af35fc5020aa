// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binit

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterPrimitives(t *testing.T) {
	testCases := []struct {
		name  string
		write func(*Writer)
		want  []byte
	}{
		{"uint8", func(w *Writer) { w.WriteUint8(0xCA) }, []byte{0xCA}},
		{"int8", func(w *Writer) { w.WriteInt8(0x7F) }, []byte{0x7F}},
		{"int8/negative", func(w *Writer) { w.WriteInt8(-1) }, []byte{0xFF}},
		{"int8/min", func(w *Writer) { w.WriteInt8(math.MinInt8) }, []byte{0x80}},
		{"uint16", func(w *Writer) { w.WriteUint16(0x0B0A) }, []byte{0x0A, 0x0B}},
		{"int16/negative", func(w *Writer) { w.WriteInt16(-2) }, []byte{0xFE, 0xFF}},
		{"uint32", func(w *Writer) { w.WriteUint32(0x0D0C0B0A) }, []byte{0x0A, 0x0B, 0x0C, 0x0D}},
		{"int32/negative", func(w *Writer) { w.WriteInt32(-2) }, []byte{0xFE, 0xFF, 0xFF, 0xFF}},
		{
			"uint64",
			func(w *Writer) { w.WriteUint64(0x1110_0F0E_0D0C_0B0A) },
			[]byte{0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11},
		},
		{
			"int64/negative",
			func(w *Writer) { w.WriteInt64(-2) },
			[]byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{"float32/one", func(w *Writer) { w.WriteFloat32(1.0) }, []byte{0x00, 0x00, 0x80, 0x3F}},
		{
			"float64/one",
			func(w *Writer) { w.WriteFloat64(1.0) },
			[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F},
		},
		{"bool/true", func(w *Writer) { w.WriteBool(true) }, []byte{0x01}},
		{"bool/false", func(w *Writer) { w.WriteBool(false) }, []byte{0x00}},
		{"string", func(w *Writer) { w.WriteString("Hi") }, []byte{0x02, 0x00, 0x00, 0x00, 0x48, 0x69}},
		{"string/empty", func(w *Writer) { w.WriteString("") }, []byte{0x00, 0x00, 0x00, 0x00}},
		{
			"bytes",
			func(w *Writer) { w.WriteBytes([]byte{0xDE, 0xAD}) },
			[]byte{0x02, 0x00, 0x00, 0x00, 0xDE, 0xAD},
		},
		{"bytes/nil", func(w *Writer) { w.WriteBytes(nil) }, []byte{0x00, 0x00, 0x00, 0x00}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			tc.write(w)
			assert.Equal(t, tc.want, w.Bytes())
			assert.Equal(t, len(tc.want), w.Len())
		})
	}
}

// Consecutive writes concatenate with no separators or padding, so the
// buffer length is always the sum of the individual encoding widths.
func TestWriterConcatenation(t *testing.T) {
	w := NewWriter()

	w.WriteUint32(42)
	require.Equal(t, 4, w.Len())
	first := append([]byte(nil), w.Bytes()...)

	w.WriteString("Hi")
	require.Equal(t, 4+6, w.Len())
	assert.Equal(t, first, w.Bytes()[:4])

	w.WriteFloat64(3.14159)
	require.Equal(t, 4+6+8, w.Len())
	assert.Equal(t, first, w.Bytes()[:4])
}

// The documented layout for writing u32 42, "Hi", and f64 3.14159:
// 4 + (4+2) + 8 = 18 bytes.
func TestWriterEncodingVector(t *testing.T) {
	pi := make([]byte, 8)
	binary.LittleEndian.PutUint64(pi, math.Float64bits(3.14159))

	w := NewWriter()
	w.WriteUint32(42)
	w.WriteString("Hi")
	w.WriteFloat64(3.14159)

	want := []byte{
		0x2A, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x48, 0x69,
	}
	want = append(want, pi...)

	require.Equal(t, 18, w.Len())
	assert.Equal(t, want, w.Bytes())
	assert.Equal(t, []byte{0x6E, 0x86, 0x1B, 0xF0, 0xF9, 0x21, 0x09, 0x40}, pi)

	r := NewReader(w.Bytes())
	id, err := r.ReadUint32()
	require.NoError(t, err)
	greeting, err := r.ReadString()
	require.NoError(t, err)
	ratio, err := r.ReadFloat64()
	require.NoError(t, err)

	assert.Equal(t, uint32(42), id)
	assert.Equal(t, "Hi", greeting)
	assert.Equal(t, 3.14159, ratio)
	assert.Equal(t, 0, r.Len())
}

func TestWriterBytesNonDestructive(t *testing.T) {
	w := NewWriter()
	w.WriteUint16(0x0B0A)

	assert.Equal(t, []byte{0x0A, 0x0B}, w.Bytes())
	assert.Equal(t, []byte{0x0A, 0x0B}, w.Bytes())
	assert.Equal(t, 2, w.Len())

	w.WriteUint8(0x0C)
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C}, w.Bytes())
}

func TestWriterZeroValue(t *testing.T) {
	var w Writer
	w.WriteBool(true)
	assert.Equal(t, []byte{0x01}, w.Bytes())
}

func TestWriterEmpty(t *testing.T) {
	w := NewWriter()
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Bytes())
}
