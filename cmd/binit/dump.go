// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/binit-io/binit-go/binit"
	"github.com/binit-io/binit-go/schema"
)

func dumpCommand() cli.Command {
	return cli.Command{
		Name:      "dump",
		Usage:     "decode binary files against a schema and print them as JSON",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "schema, s",
				Usage: "TOML schema describing the value sequence",
				Value: "schema.toml",
			},
			cli.BoolFlag{
				Name:  "compact",
				Usage: "print one line of JSON per file",
			},
		},
		Action: dumpAction,
	}
}

func dumpAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("no input files")
	}
	s, err := schema.Load(c.String("schema"))
	if err != nil {
		return err
	}

	// Decode every file concurrently, but keep the output in argument
	// order so runs are comparable.
	debug := c.GlobalBool("debug")
	docs := make([][]byte, c.NArg())
	var g errgroup.Group
	for i, path := range c.Args() {
		i, path := i, path
		g.Go(func() error {
			doc, err := dumpFile(s, path, debug)
			if err != nil {
				return errors.Wrap(err, path)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, doc := range docs {
		if !c.Bool("compact") {
			doc = pretty.Pretty(doc)
		}
		if len(doc) == 0 || doc[len(doc)-1] != '\n' {
			doc = append(doc, '\n')
		}
		if _, err := c.App.Writer.Write(doc); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(s *schema.Schema, path string, debug bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := binit.NewReader(data)
	values, err := s.Decode(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Errorf("%d trailing bytes after the last field", r.Len())
	}
	log.Infof("%s: decoded %d fields from %d bytes", path, len(values), len(data))
	if debug {
		log.Debug(spew.Sdump(values))
	}
	return schema.ValuesToJSON(values)
}
