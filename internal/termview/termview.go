// Package termview shows the display in a terminal using half block
// characters and reads keys from stdin in raw mode.
package termview

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jhbabon/johnny-eight/chip8"
	"github.com/jhbabon/johnny-eight/internal/keymap"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	frameInterval = time.Second / 60

	keyEscape = 0x1b
	keyCtrlC  = 0x03

	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

var errNotTerminal = errors.New("stdin is not a terminal")

// Options configures the terminal frontend.
type Options struct {
	In     *os.File
	Out    io.Writer
	Logger *log.Logger
}

// Run renders the display until Escape or Ctrl-C is typed or ctx is
// cancelled. The terminal state is restored before it returns.
func Run(ctx context.Context, opts Options, display *chip8.Display, keypad *chip8.Keypad) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	fd := int(opts.In.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil && opts.Logger != nil {
			opts.Logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	in, err := newInput(opts.In)
	if err != nil {
		return err
	}
	quit := make(chan struct{})
	go in.read(func(buf []byte) bool {
		if handleInput(buf, keypad) {
			close(quit)
			return false
		}
		return true
	})
	defer in.stop()

	out := bufio.NewWriter(opts.Out)
	fmt.Fprint(out, hideCursor, clearScreen)
	defer func() {
		fmt.Fprint(out, showCursor, clearScreen, cursorHome)
		_ = out.Flush()
	}()

	var screen chip8.Screen
	if err := renderFrame(out, &screen); err != nil {
		return err
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case <-ticker.C:
			if !screen.Drain(display) {
				continue
			}
			if err := renderFrame(out, &screen); err != nil {
				return err
			}
		}
	}
}

// handleInput presses the keys typed in buf and reports whether the user
// asked to quit.
func handleInput(buf []byte, keypad *chip8.Keypad) bool {
	for _, b := range buf {
		switch b {
		case keyEscape, keyCtrlC:
			return true
		}
		if k, ok := keymap.Lookup(rune(b)); ok {
			keypad.Press(k)
		}
	}
	return false
}

// renderFrame draws s with one text row per two display rows.
func renderFrame(w *bufio.Writer, s *chip8.Screen) error {
	if _, err := w.WriteString(cursorHome); err != nil {
		return err
	}
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if _, err := w.WriteRune(cell(s.At(x, y), s.At(x, y+1))); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\r\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func cell(top, bottom uint8) rune {
	switch {
	case top != 0 && bottom != 0:
		return '█'
	case top != 0:
		return '▀'
	case bottom != 0:
		return '▄'
	default:
		return ' '
	}
}
