// Copyright (c) 2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc, abdul@blockwatch.cc

// authd loads declarative custom authority specs and validates a stream
// of JSON encoded operations against them, one object per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/echa/log"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/chain"
	"github.com/chainsquad/bitshares-core/internal/authspec"
)

var (
	specFile string
	opsFile  string
	nowArg   string
	verbose  bool
)

func init() {
	flag.StringVar(&specFile, "spec", "authorities.yaml", "authority spec file")
	flag.StringVar(&opsFile, "ops", "-", "operations file, - for stdin")
	flag.StringVar(&nowArg, "now", "", "evaluation time, RFC3339 or unix seconds")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	if verbose {
		log.SetLevel(log.LevelDebug)
	}

	now := bitshares.NewTimePointSec(time.Now())
	if nowArg != "" {
		t, err := bitshares.ParseTimePointSec(nowArg)
		if err != nil {
			return err
		}
		now = t
	}

	records, err := authspec.ParseFile(specFile)
	if err != nil {
		return err
	}
	store := chain.NewStore().WithLogger(log.Log)
	for _, rec := range records {
		store.Insert(rec)
	}
	log.Infof("loaded %d authorities from %s", store.Len(), specFile)

	in := os.Stdin
	if opsFile != "-" {
		f, err := os.Open(opsFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var rejected int
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 1<<20), 1<<20)
	for lineNo := 1; scan.Scan(); lineNo++ {
		line := scan.Bytes()
		if len(line) == 0 {
			continue
		}
		op, err := authspec.ParseOperation(line)
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNo, err)
		}
		auth, err := store.FindAuthorizing(op.FeePayer(), op, now)
		switch {
		case auth != nil:
			log.Infof("line %d: %s authorized by %s", lineNo, op.Kind(), auth.Id)
		case err != nil:
			rejected++
			log.Warnf("line %d: %s rejected: %v", lineNo, op.Kind(), err)
		default:
			rejected++
			log.Warnf("line %d: %s rejected: account %s has no matching authority",
				lineNo, op.Kind(), op.FeePayer())
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}
	if rejected > 0 {
		return fmt.Errorf("%d operations rejected", rejected)
	}
	return nil
}
