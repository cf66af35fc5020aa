// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binit

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/binit-io/binit-go/bincore"
)

// ErrUnexpectedEOF is returned when the source ends before the value being
// read is complete. It covers truncated input and misreads that walk the
// cursor past the data, since the format itself cannot tell those apart.
var ErrUnexpectedEOF = errors.New("unexpected end of data")

// ErrInvalidUTF8 is returned when a string payload is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// ErrInvalidBoolean is returned when a boolean byte is neither 0x00 nor
// 0x01.
var ErrInvalidBoolean = errors.New("invalid byte for boolean")

// Reader decodes values from a borrowed byte slice, advancing a cursor as
// values are consumed. The source is never copied or modified; the caller
// must not mutate it while the Reader is in use.
//
// Every read checks that enough bytes remain before moving the cursor. A
// fixed-width read that fails with ErrUnexpectedEOF leaves the cursor
// unmoved. Compound reads are not rolled back: a string or collection that
// fails partway leaves the cursor wherever the failing step stopped, and
// the remaining state is not reliable for further structured reads.
type Reader struct {
	d   []byte
	off int
}

// NewReader returns a Reader that decodes from src with the cursor at the
// start.
func NewReader(src []byte) *Reader {
	return &Reader{d: src}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.d) - r.off
}

// Position returns the cursor offset from the start of the source.
func (r *Reader) Position() int {
	return r.off
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, _, ok := bincore.ReadByte(r.d[r.off:])
	if !ok {
		return 0x0, ErrUnexpectedEOF
	}
	r.off++
	return b, nil
}

// ReadInt8 reads a single byte as a two's-complement int8.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads 2 little-endian bytes as a uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	v, _, ok := bincore.ReadUint16(r.d[r.off:])
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	r.off += 2
	return v, nil
}

// ReadInt16 reads 2 little-endian bytes as a two's-complement int16.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads 4 little-endian bytes as a uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	v, _, ok := bincore.ReadUint32(r.d[r.off:])
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	r.off += 4
	return v, nil
}

// ReadInt32 reads 4 little-endian bytes as a two's-complement int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads 8 little-endian bytes as a uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	v, _, ok := bincore.ReadUint64(r.d[r.off:])
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	r.off += 8
	return v, nil
}

// ReadInt64 reads 8 little-endian bytes as a two's-complement int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads 4 little-endian bytes as IEEE-754 float32 bits.
func (r *Reader) ReadFloat32() (float32, error) {
	v, _, ok := bincore.ReadFloat32(r.d[r.off:])
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	r.off += 4
	return v, nil
}

// ReadFloat64 reads 8 little-endian bytes as IEEE-754 float64 bits.
func (r *Reader) ReadFloat64() (float64, error) {
	v, _, ok := bincore.ReadFloat64(r.d[r.off:])
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	r.off += 8
	return v, nil
}

// ReadBool reads a single boolean byte. A byte other than 0x00 or 0x01
// yields an error wrapping ErrInvalidBoolean, and the byte still counts as
// consumed.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}
	if b > 1 {
		return false, fmt.Errorf("%w, %b", ErrInvalidBoolean, b)
	}
	return b == 1, nil
}

// ReadString reads a u32 byte-length prefix followed by that many bytes of
// UTF-8 payload. A short prefix or payload yields ErrUnexpectedEOF; a
// payload that is not valid UTF-8 yields ErrInvalidUTF8 after the payload
// bytes have been consumed. A zero-length prefix decodes to "".
func (r *Reader) ReadString() (string, error) {
	b, err := r.readBlock()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// ReadBytes reads a u32 length prefix followed by a raw byte block. The
// returned slice is a copy and does not alias the source buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	b, err := r.readBlock()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// readBlock reads a u32 length prefix and consumes that many payload bytes,
// returning them as a subslice of the source. A failed payload read leaves
// the cursor after the prefix.
func (r *Reader) readBlock() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	// Compare in uint64 so a hostile prefix cannot wrap the cursor math on
	// 32-bit platforms.
	if uint64(r.Len()) < uint64(n) {
		return nil, ErrUnexpectedEOF
	}
	start := r.off
	r.off += int(n)
	return r.d[start:r.off], nil
}
