package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/csizer/layout"
	"github.com/wippyai/csizer/memory"
	"github.com/wippyai/csizer/render"
	"github.com/wippyai/csizer/typespec"
	"github.com/wippyai/csizer/witgen"
)

type options struct {
	strict      bool
	abi         bool
	print       bool
	wit         bool
	table       bool
	verbose     bool
	interactive bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("csizer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.strict, "strict", false, "Reject specs with unknown field kinds")
	fs.BoolVar(&opts.abi, "abi", false, "Pad the aggregate tail to its largest alignment")
	fs.BoolVar(&opts.print, "print", false, "Render the demo aggregate after each size")
	fs.BoolVar(&opts.wit, "wit", false, "Print each spec as a WIT record")
	fs.BoolVar(&opts.table, "layout", false, "Print member offsets and padding")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging to stderr")
	fs.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: csizer [flags] spec...")
		fmt.Fprintln(stderr, "       csizer -i  (interactive mode)")
		fmt.Fprintln(stderr, "\nSpec characters: c char, s short, i int, l long, z size_t, f float, d double, p pointer")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer func() { _ = log.Sync() }()
		installLogger(log)
	}

	var engOpts []layout.Option
	if opts.abi {
		engOpts = append(engOpts, layout.WithTailPadding())
	}
	eng := layout.New(engOpts...)

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(stderr, "Error: interactive mode needs a terminal")
			return 1
		}
		if err := runInteractive(eng, opts.strict); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := sizeAll(fs.Args(), eng, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func installLogger(log *zap.Logger) {
	typespec.SetLogger(log.Named("typespec"))
	layout.SetLogger(log.Named("layout"))
	render.SetLogger(log.Named("render"))
	memory.SetLogger(log.Named("memory"))
}

func parseSpec(s string, strict bool) (typespec.Spec, error) {
	if strict {
		return typespec.Parse(s)
	}
	return typespec.ParseLenient(s), nil
}

func sizeAll(args []string, eng *layout.Engine, opts options, w io.Writer) error {
	var demo *demoMemory
	if opts.print {
		ctx := context.Background()
		d, err := newDemoMemory(ctx, eng)
		if err != nil {
			return fmt.Errorf("demo memory: %w", err)
		}
		defer d.Close(ctx)
		demo = d
	}

	for _, arg := range args {
		spec, err := parseSpec(arg, opts.strict)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%8d %s\n", eng.Size(spec), arg)

		if opts.table {
			fmt.Fprintln(w, layoutTable(eng.Layout(spec)))
		}
		if opts.wit {
			fmt.Fprintln(w, witgen.Format(witgen.Record("aggregate", spec)))
		}
		if demo != nil {
			if err := demo.Print(w); err != nil {
				return fmt.Errorf("render demo: %w", err)
			}
		}
	}
	return nil
}
