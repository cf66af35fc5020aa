// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/binit-io/binit-go/binit"
	"github.com/binit-io/binit-go/schema"
)

func packCommand() cli.Command {
	return cli.Command{
		Name:      "pack",
		Usage:     "encode a JSON value file against a schema",
		ArgsUsage: "<values.json>",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "schema, s",
				Usage: "TOML schema describing the value sequence",
				Value: "schema.toml",
			},
			cli.StringFlag{
				Name:  "out, o",
				Usage: "output file (defaults to stdout)",
			},
		},
		Action: packAction,
	}
}

func packAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one value file is required")
	}
	s, err := schema.Load(c.String("schema"))
	if err != nil {
		return err
	}

	path := c.Args().First()
	doc, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	values, err := s.ValuesFromJSON(doc)
	if err != nil {
		return errors.Wrap(err, path)
	}

	w := binit.NewWriter()
	if err := s.Encode(w, values); err != nil {
		return errors.Wrap(err, path)
	}
	log.Infof("%s: encoded %d fields into %d bytes", path, len(values), w.Len())

	if out := c.String("out"); out != "" {
		return os.WriteFile(out, w.Bytes(), 0644)
	}
	_, err = c.App.Writer.Write(w.Bytes())
	return err
}
