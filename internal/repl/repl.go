// Package repl runs the interactive primality prompt.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thruflo/sieve/internal/logging"
	"github.com/thruflo/sieve/internal/primetable"
)

// Prompt is written before every read.
const Prompt = "input N: "

// Loop reads candidates from In and answers them on Out.
type Loop struct {
	In    io.Reader
	Out   io.Writer
	Table primetable.Querier
	Log   *logging.Logger
}

// Run prompts until EOF, a quit command, or ctx is cancelled.
// EOF and quit return nil; cancellation returns ctx.Err() even while a read
// is pending.
func (l *Loop) Run(ctx context.Context) error {
	log := l.Log
	if log == nil {
		log = logging.Default()
	}
	log = log.With("component", "repl")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, l.In)

	for {
		if _, err := io.WriteString(l.Out, Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-errc; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				fmt.Fprintln(l.Out)
				return nil
			}
			if l.handle(log, line) {
				return nil
			}
		}
	}
}

// readLines scans r on its own goroutine so a blocking read never delays
// cancellation. The error channel receives the scanner's final error before
// lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// handle answers one input line and reports whether the loop should stop.
func (l *Loop) handle(log *logging.Logger, line string) bool {
	text := strings.TrimSpace(line)

	switch strings.ToLower(text) {
	case "q", "quit", "exit":
		return true
	}

	k, err := ParseCandidate(text)
	if err != nil {
		log.Debug("rejected input", "input", text, "error", err)
		fmt.Fprintf(l.Out, "%q is not a valid number\n", text)
		return false
	}

	if !l.Table.Contains(k) {
		log.Debug("rejected out-of-range candidate", "k", k, "max", l.Table.N())
		fmt.Fprintf(l.Out, "%d is over than max candidate %d\n", k, l.Table.N())
		return false
	}

	fmt.Fprintf(l.Out, "%d is prime? : %t\n", k, l.Table.IsPrime(k))
	return false
}

// ErrEmptyInput is returned by ParseCandidate for blank input.
var ErrEmptyInput = errors.New("empty input")

// ParseCandidate parses a base-10 non-negative integer.
// Underscore digit separators such as 1_000 are accepted.
func ParseCandidate(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}
	s = strings.ReplaceAll(s, "_", "")
	k, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid candidate %q: %w", s, err)
	}
	return k, nil
}
