// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bincore contains functions that can be used to encode and decode
// values to or from a slice of bytes in the little-endian, length-prefixed
// layout shared by the Writer and Reader types in the binit package. These
// functions are aimed at allowing low level manipulation of encoded buffers
// and can be used to build a higher level serialization API.
//
// The Read* functions within this package return the decoded value, the
// remaining bytes, and a boolean indicating if the read was valid. A boolean
// was used instead of an error because any error that would be returned would
// be the same: not enough bytes. This package attempts to do no validation,
// it will only return false if there are not enough bytes for an item to be
// read. For example, the ReadString function checks the length prefix, if
// that length is larger than the number of bytes available, it will return
// false, if there are enough bytes, it will return those bytes and true. It
// is the consumer's responsibility to validate those bytes.
//
// The Append* functions within this package will append the encoding of the
// given value to the dst slice. If the slice has enough capacity, it will
// not grow the slice.
package bincore

import "math"

// AppendByte will append b to dst and return the extended buffer.
func AppendByte(dst []byte, b byte) []byte { return append(dst, b) }

// ReadByte will read a single byte from src. If there are not enough bytes
// it will return false.
func ReadByte(src []byte) (byte, []byte, bool) {
	if len(src) < 1 {
		return 0x0, src, false
	}
	return src[0], src[1:], true
}

// AppendUint16 will append v to dst in little-endian byte order and return
// the extended buffer.
func AppendUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

// ReadUint16 will read a 2-byte little-endian uint16 from src. If there are
// not enough bytes it will return false.
func ReadUint16(src []byte) (uint16, []byte, bool) {
	if len(src) < 2 {
		return 0, src, false
	}
	return uint16(src[0]) | uint16(src[1])<<8, src[2:], true
}

// AppendUint32 will append v to dst in little-endian byte order and return
// the extended buffer.
func AppendUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// ReadUint32 will read a 4-byte little-endian uint32 from src. If there are
// not enough bytes it will return false.
func ReadUint32(src []byte) (uint32, []byte, bool) {
	if len(src) < 4 {
		return 0, src, false
	}

	_ = src[3] // bounds check hint to compiler

	v := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	return v, src[4:], true
}

// AppendUint64 will append v to dst in little-endian byte order and return
// the extended buffer.
func AppendUint64(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

// ReadUint64 will read an 8-byte little-endian uint64 from src. If there are
// not enough bytes it will return false.
func ReadUint64(src []byte) (uint64, []byte, bool) {
	if len(src) < 8 {
		return 0, src, false
	}

	_ = src[7] // bounds check hint to compiler

	v := uint64(src[0]) | uint64(src[1])<<8 | uint64(src[2])<<16 | uint64(src[3])<<24 |
		uint64(src[4])<<32 | uint64(src[5])<<40 | uint64(src[6])<<48 | uint64(src[7])<<56
	return v, src[8:], true
}

// AppendFloat32 will append the IEEE-754 bits of f to dst in little-endian
// byte order and return the extended buffer.
func AppendFloat32(dst []byte, f float32) []byte {
	return AppendUint32(dst, math.Float32bits(f))
}

// ReadFloat32 will read a 4-byte little-endian float32 from src. If there
// are not enough bytes it will return false.
func ReadFloat32(src []byte) (float32, []byte, bool) {
	bits, rem, ok := ReadUint32(src)
	if !ok {
		return 0, src, false
	}
	return math.Float32frombits(bits), rem, true
}

// AppendFloat64 will append the IEEE-754 bits of f to dst in little-endian
// byte order and return the extended buffer.
func AppendFloat64(dst []byte, f float64) []byte {
	return AppendUint64(dst, math.Float64bits(f))
}

// ReadFloat64 will read an 8-byte little-endian float64 from src. If there
// are not enough bytes it will return false.
func ReadFloat64(src []byte) (float64, []byte, bool) {
	bits, rem, ok := ReadUint64(src)
	if !ok {
		return 0, src, false
	}
	return math.Float64frombits(bits), rem, true
}

// AppendBool will append b to dst as a single byte, 0x01 for true and 0x00
// for false, and return the extended buffer. Rejecting other byte values on
// the way back in is left to the consumer: this package only moves bytes.
func AppendBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, 0x01)
	}
	return append(dst, 0x00)
}

// AppendLength will append a 4-byte little-endian length or count prefix to
// dst and return the extended buffer.
func AppendLength(dst []byte, n uint32) []byte { return AppendUint32(dst, n) }

// ReadLength will read a 4-byte little-endian length or count prefix from
// src. If there are not enough bytes it will return false.
func ReadLength(src []byte) (uint32, []byte, bool) { return ReadUint32(src) }

// AppendString will append the length-prefixed bytes of s to dst and return
// the extended buffer. The prefix holds the byte length of s, not the rune
// count, and no terminator follows the payload.
func AppendString(dst []byte, s string) []byte {
	dst = AppendLength(dst, uint32(len(s)))
	return append(dst, s...)
}

// ReadString will read a length-prefixed string from src. If there are not
// enough bytes for the prefix or for the payload it describes, it will
// return false. The payload is not validated as UTF-8.
func ReadString(src []byte) (string, []byte, bool) {
	l, rem, ok := ReadLength(src)
	if !ok {
		return "", src, false
	}
	// Compare in uint64 so a hostile prefix cannot wrap the index math.
	if uint64(len(rem)) < uint64(l) {
		return "", src, false
	}
	return string(rem[:l]), rem[l:], true
}

// AppendBytes will append the length-prefixed contents of p to dst and
// return the extended buffer.
func AppendBytes(dst []byte, p []byte) []byte {
	dst = AppendLength(dst, uint32(len(p)))
	return append(dst, p...)
}

// ReadBytes will read a length-prefixed byte block from src. If there are
// not enough bytes for the prefix or for the payload it describes, it will
// return false. The returned slice shares memory with src and must be copied
// before it outlives the source buffer.
func ReadBytes(src []byte) ([]byte, []byte, bool) {
	l, rem, ok := ReadLength(src)
	if !ok {
		return nil, src, false
	}
	if uint64(len(rem)) < uint64(l) {
		return nil, src, false
	}
	return rem[:l], rem[l:], true
}
