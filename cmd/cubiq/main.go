// SPDX-License-Identifier: MIT

// Command cubiq inspects a task catalog and checks answers against it.
//
// Usage:
//
//	cubiq [-v] list      [-catalog tasks.json]
//	cubiq [-v] check     [-catalog tasks.json] -task 1.2 answer.json
//	cubiq [-v] normalize [lines.json]
//	cubiq [-v] replay    [-catalog tasks.json] -task 1.2 [-save answer.json] presses.json
//	cubiq [-v] author    [-catalog tasks.json] -task 1.2 [-kind 2D_to_3D] [-text ...] presses.json
//	cubiq [-v] author    [-catalog tasks.json] -task 1.2 -delete
//
// An answer is {"solid": [...]} for 2D_to_3D tasks and
// {"plan": [...], "front": [...], "side": [...]} for 3D_to_2D tasks, each
// list holding [[a...],[b...],0|1] lines. check exits with status 1 when the
// answer does not solve the task.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

var errNotSolved = errors.New("not solved")

func main() {
	verbose := flag.Bool("v", false, "verbose development logging")
	flag.Usage = usage
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cubiq:", err)
		os.Exit(2)
	}
	defer log.Sync()

	err = run(flag.Args(), os.Stdin, os.Stdout, log)
	switch {
	case err == nil:
	case errors.Is(err, errNotSolved):
		os.Exit(1)
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		log.Error("command failed", zap.Error(err))
		os.Exit(2)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), "usage: cubiq [-v] list|check|normalize|replay|author [flags] [file]")
	flag.PrintDefaults()
}

// run dispatches one subcommand.
func run(args []string, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	if len(args) == 0 {
		usage()
		return flag.ErrHelp
	}
	name, rest := args[0], args[1:]
	switch name {
	case "list":
		return cmdList(rest, stdout, log)
	case "check":
		return cmdCheck(rest, stdout, log)
	case "normalize":
		return cmdNormalize(rest, stdin, stdout)
	case "replay":
		return cmdReplay(rest, stdout, log)
	case "author":
		return cmdAuthor(rest, stdout, log)
	}
	return fmt.Errorf("unknown command %q", name)
}
