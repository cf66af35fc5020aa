// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package binit implements a minimal binary serialization format built from
// little-endian fixed-width primitives, length-prefixed strings, and
// count-prefixed collections.
//
// A Writer accumulates an encoding in an append-only buffer. Write methods
// never fail, so a frame can be assembled without intermediate error
// handling and retrieved with Bytes. A Reader decodes values from a borrowed
// byte slice, advancing a cursor as values are consumed. Read methods check
// that enough bytes remain before moving the cursor, so a read that fails
// with ErrUnexpectedEOF leaves the cursor where it was.
//
// The encoded bytes carry no header, no type tags, and no field names. The
// producer and consumer must agree on the exact sequence of types out of
// band; reading with a different sequence yields wrong values, not errors.
// Strings are UTF-8 with a u32 byte-length prefix, collections carry a u32
// element-count prefix, and booleans are a single 0x00 or 0x01 byte.
//
// Writer and Reader instances are not safe for concurrent use. Distinct
// instances share no state and may be used from different goroutines freely.
//
// The bincore package exposes the same encoding as stateless functions over
// byte slices for callers that manage buffers themselves.
package binit
