package cli

import (
	"github.com/spf13/cobra"
)

func newEncodeCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [TEXT...]",
		Short: "Encode text (letters A-Z and spaces) to Morse code",
		Long: `Encode text to Morse code. Letters are separated by a single space,
words by " / ". Lower case letters are encoded as upper case.

If no TEXT is given, the text is read from standard input.`,
		Example: `  morse encode HELLO WORLD
  echo sos | morse encode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.Input(args)
			if err != nil {
				return err
			}
			m, err := a.Table.Encode(text)
			if err != nil {
				return invalidInput(err)
			}
			return a.Output(m)
		},
	}
}

func newDecodeCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [MORSE]",
		Short: "Decode Morse code to text",
		Long: `Decode Morse code to text. Letters have to be separated by a single
space, words by " / ".

If no MORSE is given, it is read from standard input.`,
		Example: `  morse decode "... --- ..."
  morse encode HELLO | morse decode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.Input(args)
			if err != nil {
				return err
			}
			text, err := a.Table.Decode(m)
			if err != nil {
				return invalidInput(err)
			}
			return a.Output(text)
		},
	}
}
