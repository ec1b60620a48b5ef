// Package sink delivers the generated markup to its destination. The
// splitter's obligation ends at producing the string; everything past that
// point lives here.
package sink

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/thediveo/enumflag/v2"
)

// Mode selects the markup destination.
type Mode enumflag.Flag

const (
	Clipboard Mode = iota
	Stdout
)

var CommandValue = map[Mode][]string{
	Clipboard: {"clipboard"},
	Stdout:    {"stdout"},
}

var HelpText = enumflag.Help[Mode]{
	Clipboard: "Copy the markup to the system clipboard",
	Stdout:    "Print the markup to standard output",
}

var Default = Clipboard

func (m Mode) String() string {
	return CommandValue[m][0]
}

func ListAll() []string {
	var modes []string
	for _, names := range CommandValue {
		modes = append(modes, names[0])
	}
	return modes
}

// Sink receives the finished markup fragment.
type Sink interface {
	Emit(markup string) error
}

// For returns the sink for a mode. Stdout mode writes to w.
func For(mode Mode, w io.Writer) Sink {
	if mode == Stdout {
		return NewWriterSink(w)
	}
	return clipboardSink{}
}

type clipboardSink struct{}

func (clipboardSink) Emit(markup string) error {
	if err := clipboard.WriteAll(markup); err != nil {
		return fmt.Errorf("failed to copy markup to clipboard: %w", err)
	}
	return nil
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink returns a sink that prints the markup to w.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

func (s writerSink) Emit(markup string) error {
	_, err := fmt.Fprintln(s.w, markup)
	return err
}
