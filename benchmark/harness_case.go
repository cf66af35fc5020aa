// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"
)

type CaseDefinition struct {
	Bench   BenchCase
	Count   int
	Size    int
	Runtime time.Duration

	startAt     time.Time
	elapsed     time.Duration
	lastStarted time.Time
}

// Run executes the case in a loop until its target runtime has elapsed and
// at least MinIterations trials have been collected, then reports the
// per-trial timings.
func (c *CaseDefinition) Run(ctx context.Context) *BenchResult {
	out := &BenchResult{
		Trials:     1,
		DataSize:   c.Size,
		Name:       c.Name(),
		Operations: c.Count,
	}
	var cancel context.CancelFunc
	ctx, cancel = context.WithTimeout(ctx, ExecutionTimeout)
	defer cancel()

	fmt.Println("=== RUN", out.Name)
	c.startAt = time.Now()
	for {
		if time.Since(c.startAt) > c.Runtime {
			if out.Trials >= MinIterations {
				break
			} else if ctx.Err() != nil {
				break
			}
		}

		res := Result{
			Iterations: c.Count,
		}
		c.ResetTimer()
		res.Error = c.Bench(ctx, c, c.Count)
		c.StopTimer()
		res.Duration = c.elapsed

		if res.Error == context.Canceled {
			break
		}

		out.Trials++
		out.Raw = append(out.Raw, res)
	}
	out.Duration = time.Since(c.startAt)
	if out.HasErrors() {
		fmt.Printf("--- FAIL: %s (%s)\n", out.Name, out.Duration.Round(time.Millisecond))
	} else {
		fmt.Printf("--- PASS: %s (%s)\n", out.Name, out.Duration.Round(time.Millisecond))
	}

	return out

}

// ResetTimer discards time accumulated so far in the current trial and
// restarts the clock, so cases can exclude their setup work.
func (c *CaseDefinition) ResetTimer() {
	c.elapsed = 0
	c.lastStarted = time.Now()
}

// StartTimer resumes the trial clock after a StopTimer.
func (c *CaseDefinition) StartTimer() {
	c.lastStarted = time.Now()
}

// StopTimer pauses the trial clock, folding the running span into the
// trial's elapsed time.
func (c *CaseDefinition) StopTimer() {
	if c.lastStarted.IsZero() {
		return
	}
	c.elapsed += time.Since(c.lastStarted)
	c.lastStarted = time.Time{}
}

func (c *CaseDefinition) String() string {
	return fmt.Sprintf("name=%s, count=%d, runtime=%s timeout=%s",
		c.Name(), c.Count, c.Runtime, ExecutionTimeout)
}

func (c *CaseDefinition) Name() string { return getName(c.Bench) }

func getName(i interface{}) string {
	n := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	parts := strings.Split(n, ".")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}

	return n

}
