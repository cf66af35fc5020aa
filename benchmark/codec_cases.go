// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/binit-io/binit-go/binit"
	"github.com/binit-io/binit-go/schema"
)

// Encoded frame sizes in bytes, fixed by the wire format.
const (
	flatFrameSize   = 43
	stringFrameSize = 4 + 64*(4+24)
	sliceFrameSize  = (4 + 8*1024) + (4 + 8*512) + (4 + 4*256)
)

const flatFrameSchema = `
name = "flat-frame"

[[field]]
name = "u8"
type = "u8"

[[field]]
name = "i8"
type = "i8"

[[field]]
name = "u16"
type = "u16"

[[field]]
name = "i16"
type = "i16"

[[field]]
name = "u32"
type = "u32"

[[field]]
name = "i32"
type = "i32"

[[field]]
name = "u64"
type = "u64"

[[field]]
name = "i64"
type = "i64"

[[field]]
name = "f32"
type = "f32"

[[field]]
name = "f64"
type = "f64"

[[field]]
name = "flag"
type = "bool"
`

func buildFlatFrame() []byte {
	w := binit.NewWriter()
	w.WriteUint8(42)
	w.WriteInt8(-42)
	w.WriteUint16(4242)
	w.WriteInt16(-4242)
	w.WriteUint32(42424242)
	w.WriteInt32(-42424242)
	w.WriteUint64(4242424242424242)
	w.WriteInt64(-4242424242424242)
	w.WriteFloat32(2.71828)
	w.WriteFloat64(3.14159)
	w.WriteBool(true)
	return w.Bytes()
}

func decodeFlatFrame(r *binit.Reader) error {
	if _, err := r.ReadUint8(); err != nil {
		return err
	}
	if _, err := r.ReadInt8(); err != nil {
		return err
	}
	if _, err := r.ReadUint16(); err != nil {
		return err
	}
	if _, err := r.ReadInt16(); err != nil {
		return err
	}
	if _, err := r.ReadUint32(); err != nil {
		return err
	}
	if _, err := r.ReadInt32(); err != nil {
		return err
	}
	if _, err := r.ReadUint64(); err != nil {
		return err
	}
	if _, err := r.ReadInt64(); err != nil {
		return err
	}
	if _, err := r.ReadFloat32(); err != nil {
		return err
	}
	if _, err := r.ReadFloat64(); err != nil {
		return err
	}
	flag, err := r.ReadBool()
	if err != nil {
		return err
	}
	if !flag || r.Len() != 0 {
		return errors.New("decoding failed")
	}
	return nil
}

func stringFrameValues() []string {
	out := make([]string, 64)
	for i := range out {
		out[i] = fmt.Sprintf("sample-payload-%09d", i)
	}
	return out
}

func sliceFrameValues() ([]float64, []uint64, []uint32) {
	floats := make([]float64, 1024)
	words := make([]uint64, 512)
	ids := make([]uint32, 256)
	for i := range floats {
		floats[i] = float64(i) * 0.5
	}
	for i := range words {
		words[i] = uint64(i) << 32
	}
	for i := range ids {
		ids[i] = uint32(i) * 2654435761
	}
	return floats, words, ids
}

func FlatFrameEncoding(ctx context.Context, tm TimerManager, iters int) error {
	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		if len(buildFlatFrame()) != flatFrameSize {
			return errors.New("encoding failed")
		}
	}
	return nil
}

func FlatFrameDecoding(ctx context.Context, tm TimerManager, iters int) error {
	frame := buildFlatFrame()

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		if err := decodeFlatFrame(binit.NewReader(frame)); err != nil {
			return err
		}
	}
	return nil
}

func StringFrameEncoding(ctx context.Context, tm TimerManager, iters int) error {
	values := stringFrameValues()

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		w := binit.NewWriter()
		w.WriteStringSlice(values)
		if w.Len() != stringFrameSize {
			return errors.New("encoding failed")
		}
	}
	return nil
}

func StringFrameDecoding(ctx context.Context, tm TimerManager, iters int) error {
	w := binit.NewWriter()
	w.WriteStringSlice(stringFrameValues())
	frame := w.Bytes()

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		r := binit.NewReader(frame)
		got, err := r.ReadStringSlice()
		if err != nil {
			return err
		}
		if len(got) != 64 || r.Len() != 0 {
			return errors.New("decoding failed")
		}
	}
	return nil
}

func SliceFrameEncoding(ctx context.Context, tm TimerManager, iters int) error {
	floats, words, ids := sliceFrameValues()

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		w := binit.NewWriter()
		w.WriteFloat64Slice(floats)
		w.WriteUint64Slice(words)
		w.WriteUint32Slice(ids)
		if w.Len() != sliceFrameSize {
			return errors.New("encoding failed")
		}
	}
	return nil
}

func SliceFrameDecoding(ctx context.Context, tm TimerManager, iters int) error {
	floats, words, ids := sliceFrameValues()
	w := binit.NewWriter()
	w.WriteFloat64Slice(floats)
	w.WriteUint64Slice(words)
	w.WriteUint32Slice(ids)
	frame := w.Bytes()

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		r := binit.NewReader(frame)
		gotFloats, err := r.ReadFloat64Slice()
		if err != nil {
			return err
		}
		gotWords, err := r.ReadUint64Slice()
		if err != nil {
			return err
		}
		gotIDs, err := r.ReadUint32Slice()
		if err != nil {
			return err
		}
		if len(gotFloats) != 1024 || len(gotWords) != 512 || len(gotIDs) != 256 || r.Len() != 0 {
			return errors.New("decoding failed")
		}
	}
	return nil
}

func SchemaFrameEncoding(ctx context.Context, tm TimerManager, iters int) error {
	s, err := schema.Parse([]byte(flatFrameSchema))
	if err != nil {
		return err
	}
	values, err := s.Decode(binit.NewReader(buildFlatFrame()))
	if err != nil {
		return err
	}

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		w := binit.NewWriter()
		if err := s.Encode(w, values); err != nil {
			return err
		}
		if w.Len() != flatFrameSize {
			return errors.New("encoding failed")
		}
	}
	return nil
}

func SchemaFrameDecoding(ctx context.Context, tm TimerManager, iters int) error {
	s, err := schema.Parse([]byte(flatFrameSchema))
	if err != nil {
		return err
	}
	frame := buildFlatFrame()

	tm.ResetTimer()
	for i := 0; i < iters; i++ {
		values, err := s.Decode(binit.NewReader(frame))
		if err != nil {
			return err
		}
		if len(values) != len(s.Fields) {
			return errors.New("decoding failed")
		}
	}
	return nil
}
