// Package clipboard hands exported course text to the host clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/inovacc/edcourse/internal/model"
	"golang.org/x/term"
)

var (
	// ErrUnsupported is returned when no system clipboard utility is available.
	ErrUnsupported = errors.New("system clipboard is not available")

	// ErrNoTerminal is returned by OSC52 when its output is not a terminal.
	ErrNoTerminal = errors.New("osc52 output is not a terminal")
)

// isTerminal reports whether w is a terminal that can act on escape
// sequences. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}

	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set its clipboard with an OSC 52 escape
// sequence. It works over SSH where no system clipboard is reachable.
// Nothing is written unless Out is a terminal.
type OSC52 struct {
	Out io.Writer

	// Tmux wraps the sequence in a tmux passthrough
	Tmux bool
}

func (o OSC52) WriteAll(text string) error {
	if !isTerminal(o.Out) {
		return ErrNoTerminal
	}

	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}

	return nil
}

// Fallback tries Primary first and uses Secondary when it fails.
type Fallback struct {
	Primary   Writer
	Secondary Writer
}

func (f Fallback) WriteAll(text string) error {
	err := f.Primary.WriteAll(text)
	if err == nil {
		return nil
	}

	if err2 := f.Secondary.WriteAll(text); err2 != nil {
		return errors.Join(err, err2)
	}

	return nil
}

// New builds the Writer for a configured mode. OSC 52 sequences go to out.
func New(mode model.ClipboardMode, out io.Writer) Writer {
	osc := OSC52{Out: out, Tmux: os.Getenv("TMUX") != ""}

	switch mode {
	case model.ClipboardSystem:
		return System{}
	case model.ClipboardOSC52:
		return osc
	default:
		return Fallback{Primary: System{}, Secondary: osc}
	}
}
