// Package cli implements the arraykit command-line surface: running dispatch
// scenarios, printing resolution traces, and listing the built-in
// operations.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/arraykit/arraykit/internal/ops"
	"github.com/arraykit/arraykit/internal/scenario"
	"github.com/arraykit/arraykit/internal/trace"
)

// Options configures one scenario run.
type Options struct {
	// DBPath, when set, persists the resolution trace to a SQLite store.
	DBPath string
	// Quiet suppresses the trace listing; the outcome line still prints.
	Quiet bool
	// NoColor disables ANSI color even on a terminal.
	NoColor bool
	// Out receives the report; defaults to os.Stdout.
	Out io.Writer
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "arraykit",
	})
}

// RunScenario loads and runs a scenario file, reports the resolution trace,
// and returns the resolution error, if any.
func RunScenario(path string, opts Options) error {
	logger := newLogger()
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	logger.Info("running scenario", "path", path, "op", s.Op.Name, "method", s.Method, "args", len(s.Args))

	outcome := s.Run()
	report(out, outcome, opts)

	if opts.DBPath != "" && outcome.Trace != nil {
		if err := saveTrace(opts.DBPath, outcome.Trace); err != nil {
			return err
		}
		logger.Info("trace saved", "db", opts.DBPath, "id", outcome.Trace.ID)
	}
	return outcome.Err
}

func saveTrace(dbPath string, tr *trace.Trace) error {
	store, err := trace.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(tr)
}

// ListOps writes the built-in operation table.
func ListOps(out io.Writer) {
	for _, name := range ops.Names() {
		op, _ := ops.Lookup(name)
		fmt.Fprintf(out, "%-10s nin=%d nout=%d\n", op.Name, op.NIn, op.NOut)
	}
}

// useColor decides whether to emit ANSI codes into out.
func useColor(out io.Writer, opts Options) bool {
	if opts.NoColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
