// Copyright (C) MongoDB, Inc. 2025-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Command binit inspects and builds encoded buffers. The wire format
// carries no type information, so every command takes a TOML schema that
// names the value sequence inside the buffer.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"
)

const version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "binit"
	app.Usage = "inspect and build binit-encoded buffers"
	app.Version = version
	app.Writer = os.Stdout
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log per-file progress to stderr",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log decoded values in Go syntax to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		log.SetOutput(os.Stderr)
		switch {
		case c.GlobalBool("debug"):
			log.SetLevel(log.DebugLevel)
		case c.GlobalBool("verbose"):
			log.SetLevel(log.InfoLevel)
		default:
			log.SetLevel(log.WarnLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		dumpCommand(),
		packCommand(),
		benchCommand(),
	}
	return app
}
