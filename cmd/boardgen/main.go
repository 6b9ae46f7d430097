// Package main is the boardgen command: it generates, inspects, stores and
// previews board layouts.
//
// Tuning comes from BOARDGEN_* environment variables and flags; see
// internal/cmd/boardgen.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/nlbtt/internal/cmd/boardgen"
	"github.com/katalvlaran/nlbtt/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("boardgen: ")

	fs := flag.NewFlagSet("boardgen", flag.ContinueOnError)
	cfg, err := boardgen.ParseConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := boardgen.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("boardgen: %v", err)
	}
}
