// Package clipboard writes text to the system clipboard through the
// OSC 52 terminal escape sequence. OSC 52 is invisible (no screen
// effect), so the sequence can be written alongside a running TUI
// renderer without corrupting the display.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
)

// Clipboard writes OSC 52 sequences to a terminal. The zero value (or
// New) writes to /dev/tty per call; tests inject Out to capture the
// escape bytes.
type Clipboard struct {
	// Out overrides the destination. When nil, each Write opens
	// /dev/tty so the sequence bypasses any managed stdout.
	Out io.Writer
}

// New returns a clipboard that writes to the controlling terminal.
func New() *Clipboard {
	return &Clipboard{}
}

// Write sends text to the system clipboard. The payload is
// base64-encoded per OSC 52, terminated with BEL rather than ST: BEL
// is a single byte that survives layered terminal environments (SSH,
// tmux, screen) where ST's two-byte escape can be mangled.
//
// Under tmux the sequence is additionally wrapped in a DCS passthrough
// (for allow-passthrough configurations) as well as sent directly (for
// set-clipboard configurations). Duplicate clipboard sets are harmless.
func (c *Clipboard) Write(text string) error {
	out := c.Out
	if out == nil {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("opening controlling terminal: %w", err)
		}
		defer tty.Close()
		out = tty
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	osc52 := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)

	if inTmux() {
		// Escapes double inside the DCS wrapper; requires tmux
		// allow-passthrough on.
		if _, err := fmt.Fprintf(out, "\x1bPtmux;\x1b%s\x1b\\", osc52); err != nil {
			return fmt.Errorf("writing tmux passthrough: %w", err)
		}
	}

	if _, err := io.WriteString(out, osc52); err != nil {
		return fmt.Errorf("writing OSC 52 sequence: %w", err)
	}
	return nil
}

// inTmux reports whether the process appears to run under tmux, either
// locally ($TMUX) or forwarded over SSH (TERM prefix).
func inTmux() bool {
	return os.Getenv("TMUX") != "" ||
		strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
		strings.HasPrefix(os.Getenv("TERM"), "screen")
}
