package chip8

import (
	"context"

	"github.com/retroenv/retrogolib/log"
)

// Cycle polls the clock without blocking. If a tick is ready it runs one
// fetch-decode-execute cycle and steps the timers, and reports true.
func (c8 *Chip8) Cycle() (bool, error) {
	select {
	case _, ok := <-c8.clock:
		if !ok {
			return false, ErrClockStopped
		}
		return true, c8.Step()
	default:
		return false, nil
	}
}

// Run executes one cycle per clock tick until ctx is cancelled or a fatal
// error occurs.
func (c8 *Chip8) Run(ctx context.Context) error {
	defer c8.silence()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-c8.clock:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrClockStopped
			}
			if err := c8.Step(); err != nil {
				return err
			}
		}
	}
}

// Step runs one cycle regardless of the clock.
func (c8 *Chip8) Step() error {
	if err := c8.checkRange(c8.pc, 2); err != nil {
		return &ExecError{PC: c8.pc, Err: err}
	}
	op := uint16(c8.mem[c8.pc])<<8 | uint16(c8.mem[c8.pc+1])

	ins, ok := Decode(op)
	if ok {
		c8.logger.Debug("Executing",
			log.Hex("pc", c8.pc),
			log.Hex("opcode", op),
			log.String("instruction", ins.String()))
	}
	if err := c8.Exec(ins); err != nil {
		return err
	}

	c8.stepTimers()
	c8.display.Flush()
	return nil
}

func (c8 *Chip8) stepTimers() {
	c8.timerTicks++
	if c8.timerTicks < c8.timerDivisor {
		return
	}
	c8.timerTicks = 0

	if c8.dt > 0 {
		c8.dt--
	}
	if c8.st > 0 {
		c8.st--
	}
	c8.updateTone()
}

func (c8 *Chip8) updateTone() {
	on := c8.st > 0
	if on == c8.tone {
		return
	}
	c8.tone = on
	if c8.buzzer != nil {
		c8.buzzer.Tone(on)
	}
}

func (c8 *Chip8) silence() {
	if c8.tone && c8.buzzer != nil {
		c8.buzzer.Tone(false)
	}
	c8.tone = false
}
