// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceEncoding(t *testing.T) {
	testCases := []struct {
		name  string
		write func(*Writer)
		want  []byte
	}{
		{
			"uint16 slice",
			func(w *Writer) { w.WriteUint16Slice([]uint16{0x0B0A, 0x0D0C}) },
			[]byte{0x02, 0x00, 0x00, 0x00, 0x0A, 0x0B, 0x0C, 0x0D},
		},
		{
			"uint32 slice/empty",
			func(w *Writer) { w.WriteUint32Slice(nil) },
			[]byte{0x00, 0x00, 0x00, 0x00},
		},
		{
			"string slice",
			func(w *Writer) { w.WriteStringSlice([]string{"Hi", ""}) },
			[]byte{
				0x02, 0x00, 0x00, 0x00,
				0x02, 0x00, 0x00, 0x00, 0x48, 0x69,
				0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			"int16 slice/negative",
			func(w *Writer) { w.WriteInt16Slice([]int16{-2}) },
			[]byte{0x01, 0x00, 0x00, 0x00, 0xFE, 0xFF},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			tc.write(w)
			assert.Equal(t, tc.want, w.Bytes())
		})
	}
}

func TestSliceRoundTrip(t *testing.T) {
	t.Run("uint16", func(t *testing.T) {
		want := []uint16{0, 1, 0x8000, math.MaxUint16}
		w := NewWriter()
		w.WriteUint16Slice(want)

		r := NewReader(w.Bytes())
		got, err := r.ReadUint16Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 0, r.Len())
	})
	t.Run("int32", func(t *testing.T) {
		want := []int32{math.MinInt32, -1, 0, math.MaxInt32}
		w := NewWriter()
		w.WriteInt32Slice(want)

		got, err := NewReader(w.Bytes()).ReadInt32Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("uint64", func(t *testing.T) {
		want := []uint64{0, math.MaxUint64}
		w := NewWriter()
		w.WriteUint64Slice(want)

		got, err := NewReader(w.Bytes()).ReadUint64Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("int64", func(t *testing.T) {
		want := []int64{math.MinInt64, math.MaxInt64}
		w := NewWriter()
		w.WriteInt64Slice(want)

		got, err := NewReader(w.Bytes()).ReadInt64Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("int16", func(t *testing.T) {
		want := []int16{math.MinInt16, 0, math.MaxInt16}
		w := NewWriter()
		w.WriteInt16Slice(want)

		got, err := NewReader(w.Bytes()).ReadInt16Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("uint32", func(t *testing.T) {
		want := []uint32{42, math.MaxUint32}
		w := NewWriter()
		w.WriteUint32Slice(want)

		got, err := NewReader(w.Bytes()).ReadUint32Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("float32", func(t *testing.T) {
		want := []float32{0, 1.5, -2.5, math.MaxFloat32}
		w := NewWriter()
		w.WriteFloat32Slice(want)

		got, err := NewReader(w.Bytes()).ReadFloat32Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("float64", func(t *testing.T) {
		want := []float64{3.14159, math.Inf(1), math.SmallestNonzeroFloat64}
		w := NewWriter()
		w.WriteFloat64Slice(want)

		got, err := NewReader(w.Bytes()).ReadFloat64Slice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
	t.Run("string", func(t *testing.T) {
		want := []string{"", "Hi", "héllo wörld", "文字列"}
		w := NewWriter()
		w.WriteStringSlice(want)

		got, err := NewReader(w.Bytes()).ReadStringSlice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestSliceEmpty(t *testing.T) {
	w := NewWriter()
	w.WriteFloat64Slice(nil)
	require.Equal(t, 4, w.Len(), "an empty collection is just its count prefix")

	got, err := NewReader(w.Bytes()).ReadFloat64Slice()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestSliceGenericElements(t *testing.T) {
	type sample struct {
		ID    uint32
		Value float64
	}

	want := []sample{{1, 1.5}, {2, -2.5}, {3, 0}}

	w := NewWriter()
	WriteSlice(w, want, func(w *Writer, s sample) {
		w.WriteUint32(s.ID)
		w.WriteFloat64(s.Value)
	})
	require.Equal(t, 4+3*(4+8), w.Len())

	got, err := ReadSlice(NewReader(w.Bytes()), func(r *Reader) (sample, error) {
		id, err := r.ReadUint32()
		if err != nil {
			return sample{}, err
		}
		v, err := r.ReadFloat64()
		if err != nil {
			return sample{}, err
		}
		return sample{ID: id, Value: v}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSliceNested(t *testing.T) {
	want := [][]uint16{{1}, {2, 3}, {}}

	w := NewWriter()
	WriteSlice(w, want, (*Writer).WriteUint16Slice)

	got, err := ReadSlice(NewReader(w.Bytes()), (*Reader).ReadUint16Slice)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSliceTruncated(t *testing.T) {
	w := NewWriter()
	w.WriteUint32Slice([]uint32{1, 2, 3})
	full := w.Bytes()

	for k := 0; k < len(full); k++ {
		r := NewReader(full[:k])
		_, err := r.ReadUint32Slice()
		require.ErrorIs(t, err, ErrUnexpectedEOF, "first %d bytes", k)
	}
}

func TestSliceHostileCount(t *testing.T) {
	// A count prefix claiming 4294967295 elements backed by one byte must
	// fail on the first element without allocating for the claimed count.
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x01})
	_, err := r.ReadUint32Slice()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestSliceElementFailurePropagates(t *testing.T) {
	// Two booleans, the second invalid.
	r := NewReader([]byte{0x02, 0x00, 0x00, 0x00, 0x01, 0x07})
	_, err := ReadSlice(r, (*Reader).ReadBool)
	require.ErrorIs(t, err, ErrInvalidBoolean)
	assert.Equal(t, 6, r.Position())
}
