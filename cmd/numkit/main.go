// SPDX-License-Identifier: MIT

// Command numkit runs the numkit kernels on their classic demonstration
// problems and prints the results as aligned tables.
//
// Usage:
//
//	numkit <command> [flags]
//
// Commands: ode, dft, quad, hermite, interp1d, interp2d, linsolve, roots.
// Run "numkit <command> -h" for the flags of one command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"text/tabwriter"
)

type command struct {
	summary string
	run     func(args []string) error
}

var commands = map[string]command{
	"ode":      {"fixed-step Euler, RK2, RK4 against y' = -2x - y", runODE},
	"dft":      {"naive DFT round trip of a sampled sine", runDFT},
	"quad":     {"Newton-Cotes convergence on log(1+x)/x over [0,1]", runQuad},
	"hermite":  {"Gauss-Hermite estimates of the integral of exp(-x²)·sin²(kx)", runHermite},
	"interp1d": {"Lagrange polynomial versus cubic spline on |sin x|", runInterp1D},
	"interp2d": {"nearest and bilinear grid interpolation of cos²(r)", runInterp2D},
	"linsolve": {"direct, iterative and sparse solvers on the reference systems", runLinsolve},
	"roots":    {"bisection and 2D Newton-Raphson", runRoots},
}

func usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "usage: numkit <command> [flags]")
	fmt.Fprintln(os.Stderr, "\ncommands:")
	w := tabwriter.NewWriter(os.Stderr, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, commands[name].summary)
	}
	_ = w.Flush()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("numkit: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	name := flag.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		log.Printf("unknown command %q", name)
		usage()
		os.Exit(2)
	}
	err := cmd.run(flag.Args()[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

// newFlagSet returns a FlagSet whose parse errors are returned, not fatal.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("numkit "+name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	return fs
}

// table collects tab-separated rows and aligns them on flush.
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...any) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)}
	t.row(header...)

	return t
}

func (t *table) row(cells ...any) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, c)
	}
	fmt.Fprintln(t.w, "\t")
}

func (t *table) flush() error { return t.w.Flush() }

// section prints a blank-line separated title.
func section(title string) {
	fmt.Printf("\n%s\n", title)
}
