// Package clipboard delivers generated work orders to the user's clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
	ModeNone   = "none"
)

// ErrDisabled is returned by the sink used when copying is turned off.
var ErrDisabled = errors.New("clipboard: copying is disabled")

// package-level hooks so tests can run without a desktop clipboard
var (
	systemWriteAll    = atotto.WriteAll
	systemUnsupported = func() bool { return atotto.Unsupported }
)

// Sink accepts text for copying.
type Sink interface {
	Copy(text string) error
}

// System writes to the desktop clipboard (pbcopy, xclip, wl-copy, ...).
type System struct{}

// Copy implements Sink.
func (System) Copy(text string) error {
	if systemUnsupported() {
		return fmt.Errorf("clipboard: no system clipboard utility found")
	}
	if err := systemWriteAll(text); err != nil {
		return fmt.Errorf("clipboard: system: %w", err)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard through an escape sequence,
// which also works over SSH.
type OSC52 struct {
	Out  io.Writer
	Tmux bool
}

// Copy implements Sink.
func (o OSC52) Copy(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("clipboard: osc52: %w", err)
	}
	return nil
}

// Fallback tries Primary and then Secondary.
type Fallback struct {
	Primary   Sink
	Secondary Sink
}

// Copy implements Sink.
func (f Fallback) Copy(text string) error {
	err := f.Primary.Copy(text)
	if err == nil {
		return nil
	}
	if f.Secondary == nil {
		return err
	}
	if fallbackErr := f.Secondary.Copy(text); fallbackErr != nil {
		return errors.Join(err, fallbackErr)
	}
	return nil
}

// Disabled refuses every copy.
type Disabled struct{}

// Copy implements Sink.
func (Disabled) Copy(string) error { return ErrDisabled }

// New builds the sink for mode. OSC52 sequences go to out.
func New(mode string, out io.Writer) (Sink, error) {
	osc := OSC52{Out: out, Tmux: os.Getenv("TMUX") != ""}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		if systemUnsupported() {
			return osc, nil
		}
		return Fallback{Primary: System{}, Secondary: osc}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return osc, nil
	case ModeNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("clipboard: unknown mode %q (want auto, system, osc52 or none)", mode)
	}
}
