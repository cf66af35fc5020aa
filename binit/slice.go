// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binit

// ElementWriter encodes a single collection element onto w.
type ElementWriter[T any] func(w *Writer, v T)

// ElementReader decodes a single collection element from r.
type ElementReader[T any] func(r *Reader) (T, error)

// WriteSlice appends a u32 element-count prefix followed by each element of
// values in order, encoded by elem. Elements may themselves be collections;
// nesting composes with no extra framing.
func WriteSlice[T any](w *Writer, values []T, elem ElementWriter[T]) {
	w.WriteUint32(uint32(len(values)))
	for _, v := range values {
		elem(w, v)
	}
}

// ReadSlice reads a u32 element-count prefix and then decodes that many
// elements with elem. The first element failure is returned as is, with the
// cursor left wherever the failed read stopped. A zero count decodes to a
// non-nil empty slice.
func ReadSlice[T any](r *Reader, elem ElementReader[T]) ([]T, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	// Every element encoding is at least one byte wide, so a count larger
	// than the unread byte count can never be satisfied. Clamp the initial
	// allocation to what the input could actually hold.
	capacity := uint64(n)
	if remaining := uint64(r.Len()); capacity > remaining {
		capacity = remaining
	}
	out := make([]T, 0, int(capacity))
	for i := uint32(0); i < n; i++ {
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteUint16Slice appends a u32 count prefix followed by each element as 2
// little-endian bytes.
func (w *Writer) WriteUint16Slice(values []uint16) { WriteSlice(w, values, (*Writer).WriteUint16) }

// WriteInt16Slice appends a u32 count prefix followed by each element as 2
// little-endian two's-complement bytes.
func (w *Writer) WriteInt16Slice(values []int16) { WriteSlice(w, values, (*Writer).WriteInt16) }

// WriteUint32Slice appends a u32 count prefix followed by each element as 4
// little-endian bytes.
func (w *Writer) WriteUint32Slice(values []uint32) { WriteSlice(w, values, (*Writer).WriteUint32) }

// WriteInt32Slice appends a u32 count prefix followed by each element as 4
// little-endian two's-complement bytes.
func (w *Writer) WriteInt32Slice(values []int32) { WriteSlice(w, values, (*Writer).WriteInt32) }

// WriteUint64Slice appends a u32 count prefix followed by each element as 8
// little-endian bytes.
func (w *Writer) WriteUint64Slice(values []uint64) { WriteSlice(w, values, (*Writer).WriteUint64) }

// WriteInt64Slice appends a u32 count prefix followed by each element as 8
// little-endian two's-complement bytes.
func (w *Writer) WriteInt64Slice(values []int64) { WriteSlice(w, values, (*Writer).WriteInt64) }

// WriteFloat32Slice appends a u32 count prefix followed by each element as 4
// little-endian IEEE-754 bytes.
func (w *Writer) WriteFloat32Slice(values []float32) { WriteSlice(w, values, (*Writer).WriteFloat32) }

// WriteFloat64Slice appends a u32 count prefix followed by each element as 8
// little-endian IEEE-754 bytes.
func (w *Writer) WriteFloat64Slice(values []float64) { WriteSlice(w, values, (*Writer).WriteFloat64) }

// WriteStringSlice appends a u32 count prefix followed by each element as a
// length-prefixed string.
func (w *Writer) WriteStringSlice(values []string) { WriteSlice(w, values, (*Writer).WriteString) }

// ReadUint16Slice reads a u32 count prefix and that many uint16 elements.
func (r *Reader) ReadUint16Slice() ([]uint16, error) { return ReadSlice(r, (*Reader).ReadUint16) }

// ReadInt16Slice reads a u32 count prefix and that many int16 elements.
func (r *Reader) ReadInt16Slice() ([]int16, error) { return ReadSlice(r, (*Reader).ReadInt16) }

// ReadUint32Slice reads a u32 count prefix and that many uint32 elements.
func (r *Reader) ReadUint32Slice() ([]uint32, error) { return ReadSlice(r, (*Reader).ReadUint32) }

// ReadInt32Slice reads a u32 count prefix and that many int32 elements.
func (r *Reader) ReadInt32Slice() ([]int32, error) { return ReadSlice(r, (*Reader).ReadInt32) }

// ReadUint64Slice reads a u32 count prefix and that many uint64 elements.
func (r *Reader) ReadUint64Slice() ([]uint64, error) { return ReadSlice(r, (*Reader).ReadUint64) }

// ReadInt64Slice reads a u32 count prefix and that many int64 elements.
func (r *Reader) ReadInt64Slice() ([]int64, error) { return ReadSlice(r, (*Reader).ReadInt64) }

// ReadFloat32Slice reads a u32 count prefix and that many float32 elements.
func (r *Reader) ReadFloat32Slice() ([]float32, error) { return ReadSlice(r, (*Reader).ReadFloat32) }

// ReadFloat64Slice reads a u32 count prefix and that many float64 elements.
func (r *Reader) ReadFloat64Slice() ([]float64, error) { return ReadSlice(r, (*Reader).ReadFloat64) }

// ReadStringSlice reads a u32 count prefix and that many length-prefixed
// strings.
func (r *Reader) ReadStringSlice() ([]string, error) { return ReadSlice(r, (*Reader).ReadString) }
