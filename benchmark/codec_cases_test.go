// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import "testing"

func BenchmarkFlatFrameEncoding(b *testing.B)   { WrapCase(FlatFrameEncoding)(b) }
func BenchmarkFlatFrameDecoding(b *testing.B)   { WrapCase(FlatFrameDecoding)(b) }
func BenchmarkStringFrameEncoding(b *testing.B) { WrapCase(StringFrameEncoding)(b) }
func BenchmarkStringFrameDecoding(b *testing.B) { WrapCase(StringFrameDecoding)(b) }
func BenchmarkSliceFrameEncoding(b *testing.B)  { WrapCase(SliceFrameEncoding)(b) }
func BenchmarkSliceFrameDecoding(b *testing.B)  { WrapCase(SliceFrameDecoding)(b) }
func BenchmarkSchemaFrameEncoding(b *testing.B) { WrapCase(SchemaFrameEncoding)(b) }
func BenchmarkSchemaFrameDecoding(b *testing.B) { WrapCase(SchemaFrameDecoding)(b) }
