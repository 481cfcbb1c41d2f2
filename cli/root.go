package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	return NewRootCommand(New(), version, commit).Execute()
}

// NewRootCommand builds the "morse" command tree around a.
func NewRootCommand(a *App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "morse",
		Short:        "Encode text to Morse code and decode it back",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()
			return a.InitTracing()
		},
	}

	root.PersistentFlags().StringVar(&a.TraceLevel, "trace", a.TraceLevel, "trace level: Error, Info or Debug")
	root.PersistentFlags().StringVar(&a.TraceTo, "trace-to", "", "trace destination: Stdout, Stderr or file://path (default is the error output)")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newTableCommand(a),
	)
	return root
}
