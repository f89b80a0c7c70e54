// Package shrink condenses verbose test-runner output. Individual test
// result lines collapse to single progress characters while every other line
// passes through untouched, so a long `go test -v` run reads as a dot strip
// with failures still fully visible in the trailing output.
package shrink

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
)

// resultPattern matches one `go test -v` per-test result line, including the
// indented form subtests produce.
var resultPattern = regexp.MustCompile(`^\s*--- (PASS|FAIL|SKIP): `)

var tokens = map[string]string{
	"PASS": ".",
	"FAIL": "F",
	"SKIP": "I",
}

// Filter copies r to w line by line, replacing each per-test result line
// with its single-character token. Tokens are written without a trailing
// newline so consecutive results form one strip; all other lines keep their
// line break. Each write is followed by a flush so progress is visible on a
// terminal as the child produces it.
func Filter(r io.Reader, w io.Writer) error {
	type flusher interface{ Flush() error }

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		var err error
		if m := resultPattern.FindStringSubmatch(line); m != nil {
			_, err = io.WriteString(w, tokens[m[1]])
		} else {
			_, err = io.WriteString(w, line+"\n")
		}
		if err != nil {
			return err
		}
		if f, ok := w.(flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

// Run executes the child command given by args, filtering its stdout through
// Filter into stdout. Stderr is passed through untouched. The return value
// is the child's exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("no command given")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = stderr
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("open stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", args[0], err)
	}

	filterErr := Filter(pipe, stdout)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("wait for %s: %w", args[0], err)
	}
	if filterErr != nil {
		return 0, filterErr
	}
	return 0, nil
}
