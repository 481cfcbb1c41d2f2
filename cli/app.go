package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"github.com/npillmayer/morse"
)

// App holds the state shared by all commands of one CLI invocation.
type App struct {
	// I/O
	OutWriter io.Writer
	ErrWriter io.Writer
	InReader  io.Reader

	// Config state
	TraceLevel string // Error, Info or Debug
	TraceTo    string // tracing destination: Stdout, Stderr or a file URI

	// Display
	NoHeaderFlag bool

	Table *morse.Table
}

// New creates an App reading from stdin and writing to stdout/stderr,
// using the standard Morse table.
func New() *App {
	return &App{
		OutWriter:  os.Stdout,
		ErrWriter:  os.Stderr,
		InReader:   os.Stdin,
		TraceLevel: "Error",
		Table:      morse.Standard(),
	}
}

// InitTracing routes tracer "morse" to a Go standard logger.
// Called by PersistentPreRunE on the root command.
func (a *App) InitTracing() error {
	level, err := parseTraceLevel(a.TraceLevel)
	if err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"tracelevel.root":  "Error",
		"tracelevel.morse": level.String(),
	}
	if a.TraceTo != "" {
		conf["tracing.destination"] = a.TraceTo
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer := tracing.Select("morse")
	tracer.SetTraceLevel(level) // a replaced tracer inherits its predecessor's level
	if a.TraceTo == "" {
		tracer.SetOutput(a.ErrWriter)
	}
	return nil
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error", "info", "debug":
		return tracing.TraceLevelFromString(s), nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q (use Error, Info or Debug)", s)
}

// Input returns the command input: args joined by single spaces, or all of
// InReader if there are no args. One trailing line break is dropped.
func (a *App) Input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(bufio.NewReader(a.InReader))
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// Output writes a result followed by a line break.
func (a *App) Output(s string) error {
	_, err := fmt.Fprintln(a.OutWriter, s)
	return err
}

// NewTabWriter returns a tabwriter with consistent formatting.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// invalidInput marks codec errors as caused by the input, so they are told
// apart from I/O failures.
func invalidInput(err error) error {
	if errors.Is(err, morse.ErrUnsupportedCharacter) || errors.Is(err, morse.ErrMalformedToken) {
		return fmt.Errorf("invalid input: %w", err)
	}
	return err
}
