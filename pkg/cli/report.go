package cli

import (
	"fmt"
	"io"

	"github.com/arraykit/arraykit/internal/override"
	"github.com/arraykit/arraykit/internal/scenario"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiDim    = "\x1b[2m"
)

func report(out io.Writer, outcome *scenario.Outcome, opts Options) {
	color := useColor(out, opts)
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	tr := outcome.Trace
	if tr == nil {
		fmt.Fprintln(out, paint(ansiDim, "no override: no argument participates, default handling applies"))
		return
	}

	if !opts.Quiet {
		fmt.Fprintf(out, "resolution %s: %s (method %s)\n", tr.ID, tr.Op, tr.Method)
		fmt.Fprintln(out, "candidates:")
		for _, c := range tr.Candidates {
			fmt.Fprintf(out, "  pos %d  %-12s %s\n", c.Pos, c.TypeID, paint(ansiDim, c.Value))
		}
		fmt.Fprintln(out, "rounds:")
		for i, round := range tr.Rounds {
			line := fmt.Sprintf("  %d. pos %d  %-12s %s", i+1, round.Pos, round.TypeID, round.Outcome)
			switch round.Outcome {
			case override.OutcomeAccepted:
				line = paint(ansiGreen, line)
				if round.Result != "" {
					line += " " + round.Result
				}
			case override.OutcomeDeclined:
				line = paint(ansiYellow, line)
			case override.OutcomeFailed:
				line = paint(ansiRed, line)
				if round.Err != "" {
					line += " " + round.Err
				}
			}
			fmt.Fprintln(out, line)
		}
	}

	switch {
	case outcome.Err != nil:
		fmt.Fprintf(out, "%s %v\n", paint(ansiRed, "failed:"), outcome.Err)
	default:
		fmt.Fprintf(out, "%s %s\n", paint(ansiGreen, "resolved:"), outcome.Result.Inspect())
	}
}
