package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Source selects a JSON input source for a command: a file when the
// flag is set, stdin otherwise. Reading from a terminal stdin is
// refused so an interactive invocation can't hang waiting for input.
type Source struct {
	fileFlagValue string
}

func (s *Source) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &s.fileFlagValue,
	}
}

// Open returns the selected reader. Callers own closing it.
func (s *Source) Open() (io.ReadCloser, error) {
	if s.fileFlagValue != "" {
		f, err := os.Open(s.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}

	return io.NopCloser(os.Stdin), nil
}
