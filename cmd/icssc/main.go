/*
Command icssc compiles ICSS syntax trees to CSS.

Usage:

    icssc [-check] [-tree] [-v] [file.yaml]

The syntax tree is read from a YAML tree description (see package astyaml),
from the named file or from standard input. Without flags the CSS is written
to standard output. Checker errors are reported one per line on standard
error, and icssc exits with status 1.

    -check  check the tree only, do not evaluate it
    -tree   print the reduced tree instead of CSS
    -v      trace all passes at debug level to standard error

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/icss"
	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/astyaml"
	"github.com/npillmayer/icss/checker"
	"github.com/npillmayer/icss/generator"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var traceKeys = []string{
	"icss", "icss.ast", "icss.astyaml", "icss.checker", "icss.transform",
	"icss.generator", "icss.cssom", "icss.scope", "icss.style",
}

func main() {
	checkOnly := flag.Bool("check", false, "check the tree only")
	dumpTree := flag.Bool("tree", false, "print the reduced tree")
	verbose := flag.Bool("v", false, "debug tracing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: icssc [-check] [-tree] [-v] [file.yaml]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	setupTracing(*verbose)
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *checkOnly, *dumpTree, os.Stdout); err != nil {
		var errs checker.Errors
		if errors.As(err, &errs) {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "icssc: %v\n", e)
			}
		} else {
			fmt.Fprintf(os.Stderr, "icssc: %v\n", err)
		}
		os.Exit(1)
	}
}

// setupTracing routes all traces of the compiler to Go's standard logger,
// at debug level if verbose is set and at error level otherwise.
func setupTracing(verbose bool) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func run(filename string, checkOnly, dumpTree bool, w io.Writer) error {
	sheet, err := load(filename)
	if err != nil {
		return err
	}
	if checkOnly {
		return checker.Check(sheet)
	}
	if err := icss.Reduce(sheet); err != nil {
		return err
	}
	if dumpTree {
		_, err = io.WriteString(w, ast.Dump(sheet))
		return err
	}
	return generator.Generate(w, sheet)
}

func load(filename string) (*ast.Stylesheet, error) {
	if filename == "" || filename == "-" {
		return astyaml.Decode(os.Stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return astyaml.Decode(f)
}
