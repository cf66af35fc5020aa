// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// RunCases executes cases, or every registered case when none are given,
// and writes the collected perf report to out as JSON. An error is returned
// after the whole run when any case recorded trial errors, so one bad case
// does not hide the timings of the rest.
func RunCases(ctx context.Context, out io.Writer, cases ...*CaseDefinition) error {
	if len(cases) == 0 {
		cases = getAllCases()
	}

	var failed []string
	report := []interface{}{}
	for _, c := range cases {
		res := c.Run(ctx)
		if res.HasErrors() {
			failed = append(failed, fmt.Sprintf("%s: %s", res.Name, strings.Join(res.errReport(), "; ")))
		}
		entries, err := res.PerfReport()
		if err != nil {
			return errors.Wrapf(err, "case %s", res.Name)
		}
		report = append(report, entries...)
	}

	data, err := json.MarshalIndent(report, "", "   ")
	if err != nil {
		return errors.Wrap(err, "rendering report")
	}
	data = append(data, '\n')
	if _, err := out.Write(data); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if len(failed) > 0 {
		return errors.Errorf("%d case(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}
