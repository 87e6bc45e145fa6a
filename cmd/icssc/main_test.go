package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/icss/checker"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeTree(t *testing.T, yaml string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(name, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

const valid = `
- var: W
  value: {px: 10}
- rule: p
  body:
    - if: {bool: true}
      then:
        - decl: width
          value: {mul: [{scalar: 3}, {ref: W}]}
`

func TestRunGeneratesCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss")
	defer teardown()
	//
	var out strings.Builder
	if err := run(writeTree(t, valid), false, false, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "p {\n  width: 30px;\n}\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunDumpsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss")
	defer teardown()
	//
	var out strings.Builder
	if err := run(writeTree(t, valid), false, true, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Pixel(30)") {
		t.Errorf("expected folded literal in dump, have\n%s", out.String())
	}
	if strings.Contains(out.String(), "IfClause") {
		t.Errorf("expected if-clause to be elaborated, have\n%s", out.String())
	}
}

func TestRunCheckOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss")
	defer teardown()
	//
	var out strings.Builder
	err := run(writeTree(t, "- rule: p\n  body:\n    - decl: width\n      value: {ref: Nope}\n"), true, false, &out)
	var errs checker.Errors
	if !errors.As(err, &errs) || !errs.Has(checker.ErrUndeclaredVariable) {
		t.Fatalf("expected undeclared variable error, have %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output when checking, have %q", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss")
	defer teardown()
	//
	if err := run(filepath.Join(t.TempDir(), "none.yaml"), false, false, &strings.Builder{}); err == nil {
		t.Error("expected error for missing input file")
	}
}

// traceOutput captures what the compiler traces to standard error while
// compiling the valid tree.
func traceOutput(t *testing.T, verbose bool) string {
	t.Helper()
	name := writeTree(t, valid)
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stderr := os.Stderr
	os.Stderr = w
	log.SetOutput(w)
	defer func() {
		os.Stderr = stderr
		log.SetOutput(stderr)
	}()
	captured := make(chan string)
	go func() {
		var b strings.Builder
		io.Copy(&b, r)
		captured <- b.String()
	}()
	setupTracing(verbose)
	runErr := run(name, false, false, io.Discard)
	w.Close()
	out := <-captured
	if runErr != nil {
		t.Fatal(runErr)
	}
	return out
}

// Tests below install the log adapter instead of the testing adapter.

func TestVerboseTracing(t *testing.T) {
	out := traceOutput(t, true)
	t.Logf("trace output:\n%s", out)
	for _, s := range []string{"builder: enter", "eval: condition is true"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected debug trace to contain %q", s)
		}
	}
}

func TestQuietTracing(t *testing.T) {
	if out := traceOutput(t, false); strings.Contains(out, "builder: enter") {
		t.Errorf("expected no debug traces without -v, have\n%s", out)
	}
}
