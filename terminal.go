package ushell

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// RawMode holds the saved terminal state for a hosted session. Enter
// raw mode before running the shell on a local terminal and restore it
// on the way out; embedded transports never need this.
type RawMode struct {
	fd    int
	state *term.State
}

// EnterRawMode puts the controlling terminal (stdin) into raw mode.
func EnterRawMode() (*RawMode, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore puts the terminal back into its original mode. Safe to call
// more than once.
func (r *RawMode) Restore() error {
	if r.state == nil {
		return nil
	}
	err := term.Restore(r.fd, r.state)
	r.state = nil
	return err
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// StdWriter is the hosted byte sink: buffered writes to an io.Writer
// (normally stdout), flushed on demand.
type StdWriter struct {
	w *bufio.Writer
}

// NewStdWriter creates a writer over stdout.
func NewStdWriter() *StdWriter {
	return &StdWriter{w: bufio.NewWriter(os.Stdout)}
}

// NewStdWriterTo creates a writer over an arbitrary stream.
func NewStdWriterTo(out io.Writer) *StdWriter {
	return &StdWriter{w: bufio.NewWriter(out)}
}

func (s *StdWriter) WriteString(str string) { _, _ = s.w.WriteString(str) }
func (s *StdWriter) WriteBytes(b []byte)    { _, _ = s.w.Write(b) }
func (s *StdWriter) Flush()                 { _ = s.w.Flush() }
