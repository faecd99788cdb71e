package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arraykit/arraykit/pkg/cli"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "arraykit",
		Short:         "Inspect override resolution for arraykit operations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newOpsCommand())
	return root
}

// newRunCommand creates the `arraykit run` command.
func newRunCommand() *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a dispatch scenario and print its resolution trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunScenario(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "persist the trace to this SQLite file")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "print only the outcome line")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "disable ANSI color output")
	return cmd
}

// newOpsCommand creates the `arraykit ops` command.
func newOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the built-in operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cli.ListOps(cmd.OutOrStdout())
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
