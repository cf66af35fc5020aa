// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binit

import (
	"github.com/binit-io/binit-go/bincore"
)

// Writer accumulates a little-endian encoding in an append-only buffer.
// The zero value is ready to use. Write methods cannot fail and therefore
// return no error.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with an empty buffer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoding accumulated so far. Calling it does not consume
// or reset the buffer. The returned slice is valid for use only until the
// next write method call.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of encoded bytes accumulated so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteUint8 appends v as a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = bincore.AppendByte(w.buf, v)
}

// WriteInt8 appends v as a single two's-complement byte.
func (w *Writer) WriteInt8(v int8) {
	w.buf = bincore.AppendByte(w.buf, byte(v))
}

// WriteUint16 appends v as 2 little-endian bytes.
func (w *Writer) WriteUint16(v uint16) {
	w.buf = bincore.AppendUint16(w.buf, v)
}

// WriteInt16 appends v as 2 little-endian two's-complement bytes.
func (w *Writer) WriteInt16(v int16) {
	w.buf = bincore.AppendUint16(w.buf, uint16(v))
}

// WriteUint32 appends v as 4 little-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = bincore.AppendUint32(w.buf, v)
}

// WriteInt32 appends v as 4 little-endian two's-complement bytes.
func (w *Writer) WriteInt32(v int32) {
	w.buf = bincore.AppendUint32(w.buf, uint32(v))
}

// WriteUint64 appends v as 8 little-endian bytes.
func (w *Writer) WriteUint64(v uint64) {
	w.buf = bincore.AppendUint64(w.buf, v)
}

// WriteInt64 appends v as 8 little-endian two's-complement bytes.
func (w *Writer) WriteInt64(v int64) {
	w.buf = bincore.AppendUint64(w.buf, uint64(v))
}

// WriteFloat32 appends the IEEE-754 bits of v as 4 little-endian bytes.
func (w *Writer) WriteFloat32(v float32) {
	w.buf = bincore.AppendFloat32(w.buf, v)
}

// WriteFloat64 appends the IEEE-754 bits of v as 8 little-endian bytes.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = bincore.AppendFloat64(w.buf, v)
}

// WriteBool appends v as a single byte, 0x01 for true and 0x00 for false.
func (w *Writer) WriteBool(v bool) {
	w.buf = bincore.AppendBool(w.buf, v)
}

// WriteString appends a u32 byte-length prefix followed by the raw bytes of
// s. The prefix counts bytes, not runes, and no terminator is written.
func (w *Writer) WriteString(s string) {
	w.buf = bincore.AppendString(w.buf, s)
}

// WriteBytes appends a u32 length prefix followed by the contents of p. The
// encoding is identical to a collection of single-byte elements.
func (w *Writer) WriteBytes(p []byte) {
	w.buf = bincore.AppendBytes(w.buf, p)
}
