// Package glview shows the display in a GLFW window rendered with OpenGL and
// forwards key presses to the keypad.
//
// GLFW requires its calls to be made from the main thread, so Run must be
// called from a goroutine locked to it.
package glview

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/jhbabon/johnny-eight/chip8"
	"github.com/jhbabon/johnny-eight/internal/keymap"
	"github.com/retroenv/retrogolib/log"
)

const frameInterval = time.Second / 60

// Options configures the window.
type Options struct {
	Title  string
	Scale  int
	Logger *log.Logger
}

// Run opens the window and serves it until the window is closed, Escape is
// pressed or ctx is cancelled.
func Run(ctx context.Context, opts Options, display *chip8.Display, keypad *chip8.Keypad) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing GLFW: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width := chip8.DisplayWidth * opts.Scale
	height := chip8.DisplayHeight * opts.Scale
	window, err := glfw.CreateWindow(width, height, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	r, err := newRenderer()
	if err != nil {
		return err
	}

	window.SetKeyCallback(keyHandler(keypad, opts.Logger))
	window.SetSizeCallback(resizeHandler)

	var screen chip8.Screen
	r.draw(&screen)
	window.SwapBuffers()

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		if screen.Drain(display) {
			r.draw(&screen)
			window.SwapBuffers()
		}
		glfw.WaitEventsTimeout(frameInterval.Seconds())
	}
	return nil
}

func resizeHandler(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func keyHandler(keypad *chip8.Keypad, logger *log.Logger) glfw.KeyCallback {
	return func(
		window *glfw.Window, key glfw.Key, scancode int,
		action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			window.SetShouldClose(true)
			return
		}

		r, ok := keyRune(key)
		if !ok {
			return
		}
		if k, ok := keymap.Lookup(r); ok {
			if logger != nil {
				logger.Debug("Key pressed", log.String("key", k.String()))
			}
			keypad.Press(k)
		}
	}
}

// keyRune returns the character printed on a digit or letter key. GLFW
// numbers those keys by their ASCII code.
func keyRune(key glfw.Key) (rune, bool) {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9,
		key >= glfw.KeyA && key <= glfw.KeyZ:
		return rune(key), true
	default:
		return 0, false
	}
}
