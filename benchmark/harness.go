// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	ExecutionTimeout = 5 * time.Minute
	StandardRuntime  = time.Minute
	MinimumRuntime   = 10 * time.Second
	MinIterations    = 100

	ten         = 10
	hundred     = ten * ten
	thousand    = ten * hundred
	tenThousand = ten * thousand
)

// TimerManager is a subset of the testing.B tool, used to manage setup code
// that should not count against the measured runtime.
type TimerManager interface {
	ResetTimer()
	StartTimer()
	StopTimer()
}

type BenchCase func(context.Context, TimerManager, int) error
type BenchFunction func(*testing.B)

func WrapCase(bench BenchCase) BenchFunction {
	name := getName(bench)
	return func(b *testing.B) {
		ctx := context.Background()
		b.ResetTimer()
		err := bench(ctx, b, b.N)
		require.NoError(b, err, "case='%s'", name)
	}
}

func getAllCases() []*CaseDefinition {
	return []*CaseDefinition{
		{
			Bench:   CanaryIncCase,
			Count:   hundred,
			Size:    -1,
			Runtime: MinimumRuntime,
		},
		{
			Bench:   GlobalCanaryIncCase,
			Count:   hundred,
			Size:    -1,
			Runtime: MinimumRuntime,
		},
		{
			Bench:   FlatFrameEncoding,
			Count:   tenThousand,
			Size:    flatFrameSize * tenThousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   FlatFrameDecoding,
			Count:   tenThousand,
			Size:    flatFrameSize * tenThousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   StringFrameEncoding,
			Count:   tenThousand,
			Size:    stringFrameSize * tenThousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   StringFrameDecoding,
			Count:   tenThousand,
			Size:    stringFrameSize * tenThousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   SliceFrameEncoding,
			Count:   thousand,
			Size:    sliceFrameSize * thousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   SliceFrameDecoding,
			Count:   thousand,
			Size:    sliceFrameSize * thousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   SchemaFrameEncoding,
			Count:   tenThousand,
			Size:    flatFrameSize * tenThousand,
			Runtime: StandardRuntime,
		},
		{
			Bench:   SchemaFrameDecoding,
			Count:   tenThousand,
			Size:    flatFrameSize * tenThousand,
			Runtime: StandardRuntime,
		},
	}
}
