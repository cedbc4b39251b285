package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/sieve/internal/logging"
	"github.com/thruflo/sieve/internal/primetable"
	"github.com/thruflo/sieve/internal/testutil"
)

func runScript(t *testing.T, max uint64, input string) string {
	t.Helper()

	ctx, cancel := testutil.ShortOperationContext(t)
	defer cancel()

	var out bytes.Buffer
	loop := &Loop{
		In:    strings.NewReader(input),
		Out:   &out,
		Table: primetable.New(max),
	}
	require.NoError(t, loop.Run(ctx))
	return out.String()
}

func TestRun_AnswersQueries(t *testing.T) {
	out := runScript(t, 10, "2\n4\n7\n9\n10\n")

	assert.Equal(t, "input N: 2 is prime? : true\n"+
		"input N: 4 is prime? : false\n"+
		"input N: 7 is prime? : true\n"+
		"input N: 9 is prime? : false\n"+
		"input N: 10 is prime? : false\n"+
		"input N: \n", out)
}

func TestRun_OutOfRangeContinues(t *testing.T) {
	out := runScript(t, 10, "11\n3\n")

	assert.Contains(t, out, "11 is over than max candidate 10\n")
	assert.Contains(t, out, "3 is prime? : true\n")
	assert.NotContains(t, out, "11 is prime?")
}

func TestRun_InvalidInputContinues(t *testing.T) {
	out := runScript(t, 10, "seven\n\n-3\n5\n")

	assert.Contains(t, out, `"seven" is not a valid number`)
	assert.Contains(t, out, `"" is not a valid number`)
	assert.Contains(t, out, `"-3" is not a valid number`)
	assert.Contains(t, out, "5 is prime? : true\n")
}

func TestRun_TrimsWhitespace(t *testing.T) {
	out := runScript(t, 100, "  97  \r\n1_0\n")

	assert.Contains(t, out, "97 is prime? : true\n")
	assert.Contains(t, out, "10 is prime? : false\n")
}

func TestRun_Quit(t *testing.T) {
	for _, cmd := range []string{"q", "quit", "EXIT"} {
		t.Run(cmd, func(t *testing.T) {
			out := runScript(t, 10, "2\n"+cmd+"\n3\n")

			assert.Contains(t, out, "2 is prime? : true")
			assert.NotContains(t, out, "3 is prime?")
		})
	}
}

func TestRun_EOFWithoutNewline(t *testing.T) {
	out := runScript(t, 10, "7")

	assert.Equal(t, "input N: 7 is prime? : true\ninput N: \n", out)
}

func TestRun_ZeroBound(t *testing.T) {
	out := runScript(t, 0, "0\n1\n")

	assert.Contains(t, out, "0 is prime? : false\n")
	assert.Contains(t, out, "1 is over than max candidate 0\n")
}

func TestRun_LogsRejections(t *testing.T) {
	var logBuf bytes.Buffer
	logger := logging.NewWriter(&logBuf, logging.LevelDebug)

	loop := &Loop{
		In:    strings.NewReader("abc\n99\n"),
		Out:   io.Discard,
		Table: primetable.New(10),
		Log:   logger,
	}
	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, logBuf.String(), "DEBUG: rejected input")
	assert.Contains(t, logBuf.String(), "component=repl")
	assert.Contains(t, logBuf.String(), "DEBUG: rejected out-of-range candidate")
	assert.Contains(t, logBuf.String(), "k=99")
}

func TestRun_CancelWhileReading(t *testing.T) {
	// A pipe with no writer blocks the read until cancellation.
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	loop := &Loop{In: r, Out: io.Discard, Table: primetable.New(10)}

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRun_ReadError(t *testing.T) {
	loop := &Loop{In: failingReader{}, Out: io.Discard, Table: primetable.New(10)}

	err := loop.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")
	assert.Contains(t, err.Error(), "disk on fire")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriteError(t *testing.T) {
	loop := &Loop{In: strings.NewReader("2\n"), Out: failingWriter{}, Table: primetable.New(10)}

	err := loop.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write prompt")
}

func TestParseCandidate(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{" 42 ", 42, false},
		{"1_000", 1000, false},
		{"", 0, true},
		{"-1", 0, true},
		{"4.2", 0, true},
		{"0x10", 0, true},
		{"18446744073709551616", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCandidate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCandidate("  ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
