package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/morse"
)

func newTableCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [PREFIX]",
		Short: "List letters and their codes",
		Long: `List letters and their Morse codes. If PREFIX is given, only letters
whose code starts with PREFIX are listed, shortest codes first.
A PREFIX starting with a dash has to follow "--".`,
		Example: `  morse table ...
  morse table --no-headers -- -.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []morse.Entry
			if len(args) == 0 {
				entries = a.Table.Entries()
			} else {
				entries = a.Table.Completions(morse.Code(args[0]))
			}
			w := NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "LETTER\tCODE\t\n")
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%c\t%s\t\n", e.Letter, e.Code)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
	return cmd
}
