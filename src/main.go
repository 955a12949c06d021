package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/check"
	"github.com/yazaldefilimone/lemon/src/config"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/irbuild"
	"github.com/yazaldefilimone/lemon/src/loader"
	"github.com/yazaldefilimone/lemon/src/types"
)

// Compile type-checks and lowers prog, the pipeline this whole
// repository is built around: check.Program against a fresh Store,
// then irbuild.Build against that same Store. No lexer/parser target
// produces an ast.Program from source text here — the concrete grammar
// for this language is out of scope, the same way original_source's own
// main.rs left its compile/run subcommands as stubs — so prog must
// already be assembled by the caller (fixtures, embedding, a future
// parser) rather than read from opt.Src.
func Compile(opt config.Options, l loader.Loader, prog ast.Program) (*irbuild.Module, []*diag.Diag) {
	log := logrus.StandardLogger()
	if opt.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	store := types.NewStore()
	checker := check.New(l, log)
	_, diags := checker.Program(prog, store)
	if len(diags) > 0 {
		printDiags(diags)
		return nil, diags
	}

	b := irbuild.New(store, log)
	mod, err := b.Build(prog)
	if err != nil {
		d := toDiag(err)
		printDiags([]*diag.Diag{d})
		return nil, []*diag.Diag{d}
	}
	return mod, nil
}

func toDiag(err error) *diag.Diag {
	if d, ok := errors.Cause(err).(*diag.Diag); ok {
		return d
	}
	return diag.NewICE(ast.Range{}, err.Error())
}

// printDiags renders diagnostics the way a terminal-facing compiler
// reports them: kind in bold red, message plain, one per line.
func printDiags(diags []*diag.Diag) {
	bold := color.New(color.FgRed, color.Bold)
	for _, d := range diags {
		bold.Fprintf(os.Stderr, "error[%s]", d.Kind)
		fmt.Fprintf(os.Stderr, ": %s (%s)\n", d.Message, d.Primary)
	}
}

// main loads a project file and reports that it has nothing to parse
// yet. CLI argument handling and the concrete lexer/parser are both out
// of scope here; Compile is this repository's real entry point, meant
// to be driven directly by an embedder that already holds an
// ast.Program, not by this binary.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: lemon <project.yaml>")
		os.Exit(1)
	}
	opt, err := config.FromYAML(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "lemon: %s\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "lemon: loaded %s; no concrete parser is wired yet, use Compile as a library entry point with an already-parsed ast.Program\n", opt.Src)
	os.Exit(1)
}
