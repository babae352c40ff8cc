// Package chip8 implements a Chip-8 interpreter.
// Follows description in Cowgod's Chip-8 Technical Reference v1.0 [1] and
// How to write an emulator [2].
//
//	[1] http://devernay.free.fr/hacks/chip8/C8TECH10.HTM
//	[2] http://www.multigesture.net/articles/how-to-write-an-emulator-chip-8-interpreter/
//
// The interpreter runs on its own goroutine. It is paced by a Clock, emits
// pixel changes on a Display and reads key presses from a Keypad; these are
// the only values shared with other goroutines.
package chip8

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Buzzer is switched on while the sound timer is non-zero.
type Buzzer interface {
	Tone(on bool)
}

// Options configures a new machine.
type Options struct {
	ClockHz int // instructions per second
	TimerHz int // delay and sound timer rate

	Clock   <-chan Tick
	Display *Display
	Keypad  *Keypad
	Buzzer  Buzzer
	Rand    *rand.Rand
	Logger  *log.Logger
}

// DefaultOptions returns options for the reference 600 Hz machine with
// 60 Hz timers.
func DefaultOptions() Options {
	return Options{
		ClockHz: 600,
		TimerHz: 60,
	}
}

type Chip8 struct {
	mem    [MemorySize]uint8
	v      [RegisterCount]uint8
	stack  [StackSize]uint16
	gfx    [DisplayPixels]uint8 // row-major
	i, pc  uint16
	sp     uint8
	dt, st uint8 // Delay timer & sound timer

	clock   <-chan Tick
	display *Display
	keypad  *Keypad
	buzzer  Buzzer
	rand    *rand.Rand
	logger  *log.Logger

	timerDivisor int
	timerTicks   int
	tone         bool
}

// New boots a machine: memory, registers, stack, timers and display are
// cleared, the font is loaded and PC points at the program start.
func New(opts Options) *Chip8 {
	c8 := &Chip8{
		clock:        opts.Clock,
		display:      opts.Display,
		keypad:       opts.Keypad,
		buzzer:       opts.Buzzer,
		rand:         opts.Rand,
		logger:       opts.Logger,
		timerDivisor: timerDivisor(opts.ClockHz, opts.TimerHz),
	}
	if c8.display == nil {
		c8.display = NewDisplay(DefaultDisplayDepth)
	}
	if c8.keypad == nil {
		c8.keypad = &Keypad{}
	}
	if c8.rand == nil {
		c8.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c8.logger == nil {
		c8.logger = log.NewWithConfig(log.DefaultConfig())
	}

	copy(c8.mem[FontAddr:], fontset[:])
	c8.pc = ProgramStart
	return c8
}

func timerDivisor(clockHz, timerHz int) int {
	if clockHz <= 0 || timerHz <= 0 || timerHz >= clockHz {
		return 1
	}
	return clockHz / timerHz
}

// LoadROM copies a program to ProgramStart.
func (c8 *Chip8) LoadROM(r io.Reader) error {
	rom, err := io.ReadAll(io.LimitReader(r, MaxROMSize+1))
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: more than %d bytes", ErrROMTooLarge, MaxROMSize)
	}
	copy(c8.mem[ProgramStart:], rom)

	c8.logger.Debug("ROM loaded", log.Int("size", len(rom)))
	return nil
}

// AttachClock sets the tick source polled by Cycle and Run.
func (c8 *Chip8) AttachClock(ticks <-chan Tick) {
	c8.clock = ticks
}

func (c8 *Chip8) Display() *Display { return c8.display }

func (c8 *Chip8) Keypad() *Keypad { return c8.keypad }

func (c8 *Chip8) PC() uint16 { return c8.pc }

func (c8 *Chip8) I() uint16 { return c8.i }

func (c8 *Chip8) SP() uint8 { return c8.sp }

func (c8 *Chip8) V(x uint8) uint8 { return c8.v[x&0xf] }

func (c8 *Chip8) DelayTimer() uint8 { return c8.dt }

func (c8 *Chip8) SoundTimer() uint8 { return c8.st }

// Memory returns the byte at addr, wrapped to the address space.
func (c8 *Chip8) Memory(addr uint16) uint8 {
	return c8.mem[addr&(MemorySize-1)]
}

// Pixel returns the display cell at x, y, wrapping both coordinates.
func (c8 *Chip8) Pixel(x, y int) uint8 {
	x %= DisplayWidth
	y %= DisplayHeight
	if x < 0 {
		x += DisplayWidth
	}
	if y < 0 {
		y += DisplayHeight
	}
	return c8.gfx[y*DisplayWidth+x]
}

// Frame returns a copy of the display buffer in row-major order.
func (c8 *Chip8) Frame() [DisplayPixels]uint8 {
	return c8.gfx
}
