// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultNumKeys    = 10000
	defaultDebugLevel = "info"
)

// config defines the configuration options for treapdemo.
//
// See loadConfig for details on the configuration load process.
type config struct {
	NumKeys    int    `short:"n" long:"numkeys" description:"Number of keys inserted by the churn run"`
	Seed       uint64 `long:"seed" description:"Seed for node priorities; 0 draws them from the process-wide source"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	Dump       bool   `long:"dump" description:"Dump the final contents of the churn map"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		NumKeys:    defaultNumKeys,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, "loadConfig", cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.NumKeys < 0 {
		str := "%s: the number of keys may not be negative -- parsed [%v]"
		err := fmt.Errorf(str, "loadConfig", cfg.NumKeys)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
