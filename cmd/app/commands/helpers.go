// Package commands contains CLI command implementations for the application.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// readSecret reads a secret value from the IOTuple reader. When the reader is
// a terminal the input is read without echo; otherwise a single line is read,
// which keeps commands scriptable and testable.
func readSecret(tuple IOTuple, prompt string) (string, error) {
	if file, ok := tuple.Reader.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fmt.Fprint(tuple.Writer, prompt)
		secret, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(tuple.Writer)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(secret), nil
	}

	line, err := readLine(tuple.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if line == "" {
		return "", fmt.Errorf("empty input")
	}
	return line, nil
}

// readLine reads a single line without buffering past the newline, so
// repeated prompts over the same reader each see their own line.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}
