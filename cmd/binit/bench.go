// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"context"
	"io"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/binit-io/binit-go/benchmark"
)

func benchCommand() cli.Command {
	return cli.Command{
		Name:  "bench",
		Usage: "run the codec benchmark suite and write a perf report",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "out, o",
				Usage: "report file (defaults to stdout)",
			},
		},
		Action: benchAction,
	}
}

func benchAction(c *cli.Context) error {
	out := io.Writer(c.App.Writer)
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return benchmark.RunCases(context.Background(), out)
}
