package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// advance is what happens to PC once an instruction has executed.
type advance uint8

const (
	advanceNext advance = iota // PC += 2
	advanceSkip                // PC += 4
	advanceNone                // PC was set by the instruction, or is retried
)

func skipIf(cond bool) advance {
	if cond {
		return advanceSkip
	}
	return advanceNext
}

// Exec applies one instruction to the machine and moves PC accordingly.
// Comments describing opcodes are copied from Cowgod's reference.
func (c8 *Chip8) Exec(ins Instruction) error {
	pc := c8.pc
	next, err := c8.exec(ins)
	if err != nil {
		return &ExecError{PC: pc, Instruction: ins, Err: err}
	}

	switch next {
	case advanceNext:
		c8.pc += 2
	case advanceSkip:
		c8.pc += 4
	}
	return nil
}

func (c8 *Chip8) exec(ins Instruction) (advance, error) {
	x, y := ins.X, ins.Y

	switch ins.Kind {
	case Clear:
		// 00E0 - CLS -- Clear the display.
		c8.clearDisplay()

	case Return:
		// 00EE - RET -- Return from a subroutine.
		if c8.sp == 0 {
			return advanceNone, ErrStackUnderflow
		}
		c8.sp--
		c8.pc = c8.stack[c8.sp]

	case Sys:
		// 0nnn - SYS addr -- Jump to a machine code routine at nnn.
		// Ignored by modern interpreters.

	case Jump:
		// 1nnn - JP addr -- Jump to location nnn.
		c8.pc = ins.Addr
		return advanceNone, nil

	case Call:
		// 2nnn - CALL addr -- Call subroutine at nnn.
		if int(c8.sp) >= StackSize {
			return advanceNone, ErrStackOverflow
		}
		c8.stack[c8.sp] = c8.pc
		c8.sp++
		c8.pc = ins.Addr
		return advanceNone, nil

	case SkipOnEqualByte:
		// 3xkk - SE Vx, byte -- Skip next instruction if Vx = kk.
		return skipIf(c8.v[x] == ins.Byte), nil

	case SkipOnNotEqualByte:
		// 4xkk - SNE Vx, byte -- Skip next instruction if Vx != kk.
		return skipIf(c8.v[x] != ins.Byte), nil

	case SkipOnEqual:
		// 5xy0 - SE Vx, Vy -- Skip next instruction if Vx = Vy.
		return skipIf(c8.v[x] == c8.v[y]), nil

	case SetByte:
		// 6xkk - LD Vx, byte -- Set Vx = kk.
		c8.v[x] = ins.Byte

	case AddByte:
		// 7xkk - ADD Vx, byte -- Set Vx = Vx + kk.
		c8.v[x] += ins.Byte

	case Set:
		// 8xy0 - LD Vx, Vy -- Set Vx = Vy.
		c8.v[x] = c8.v[y]

	case Or:
		// 8xy1 - OR Vx, Vy -- Set Vx = Vx OR Vy.
		c8.v[x] |= c8.v[y]

	case And:
		// 8xy2 - AND Vx, Vy -- Set Vx = Vx AND Vy.
		c8.v[x] &= c8.v[y]

	case Xor:
		// 8xy3 - XOR Vx, Vy -- Set Vx = Vx XOR Vy.
		c8.v[x] ^= c8.v[y]

	case Add:
		// 8xy4 - ADD Vx, Vy -- Set Vx = Vx + Vy, set VF = carry.
		sum := uint16(c8.v[x]) + uint16(c8.v[y])
		c8.v[x] = uint8(sum)
		c8.setFlag(sum > 0xff)

	case SubXY:
		// 8xy5 - SUB Vx, Vy -- Set Vx = Vx - Vy, set VF = NOT borrow.
		vx, vy := c8.v[x], c8.v[y]
		c8.v[x] = vx - vy
		c8.setFlag(vx >= vy)

	case ShiftRight:
		// 8xy6 - SHR Vx, Vy -- Set Vx = Vy SHR 1, VF = shifted out bit.
		vy := c8.v[y]
		c8.v[x] = vy >> 1
		c8.v[flagRegister] = vy & 0x1

	case SubYX:
		// 8xy7 - SUBN Vx, Vy -- Set Vx = Vy - Vx, set VF = NOT borrow.
		vx, vy := c8.v[x], c8.v[y]
		c8.v[x] = vy - vx
		c8.setFlag(vy >= vx)

	case ShiftLeft:
		// 8xyE - SHL Vx, Vy -- Set Vx = Vy SHL 1, VF = shifted out bit.
		vy := c8.v[y]
		c8.v[x] = vy << 1
		c8.v[flagRegister] = (vy & 0x80) >> 7

	case SkipOnNotEqual:
		// 9xy0 - SNE Vx, Vy -- Skip next instruction if Vx != Vy.
		return skipIf(c8.v[x] != c8.v[y]), nil

	case SetI:
		// Annn - LD I, addr -- Set I = nnn.
		c8.i = ins.Addr

	case JumpPlus:
		// Bnnn - JP V0, addr -- Jump to location nnn + V0.
		target := ins.Addr + uint16(c8.v[0])
		if target >= MemorySize {
			return advanceNone, ErrMemoryBounds
		}
		c8.pc = target
		return advanceNone, nil

	case RandomMask:
		// Cxkk - RND Vx, byte -- Set Vx = random byte AND kk.
		c8.v[x] = uint8(c8.rand.Intn(0x100)) & ins.Byte

	case Draw:
		// Dxyn - DRW Vx, Vy, nibble -- Display n-byte sprite starting at memory
		// location I at (Vx, Vy), set VF = collision.
		if err := c8.checkRange(c8.i, int(ins.Nibble)); err != nil {
			return advanceNone, err
		}
		c8.draw(c8.v[x], c8.v[y], ins.Nibble)

	case SkipOnKeyPressed:
		// Ex9E - SKP Vx -- Skip next instruction if key with the value of Vx is
		// pressed.
		if c8.v[x] > 0xf {
			return advanceNone, ErrKeyRange
		}
		return skipIf(c8.keypad.consume(Key(c8.v[x]))), nil

	case SkipOnKeyNotPressed:
		// ExA1 - SKNP Vx -- Skip next instruction if key with the value of Vx is
		// not pressed. An observed press is consumed as well.
		if c8.v[x] > 0xf {
			return advanceNone, ErrKeyRange
		}
		return skipIf(!c8.keypad.consume(Key(c8.v[x]))), nil

	case StoreDelayTimer:
		// Fx07 - LD Vx, DT -- Set Vx = delay timer value.
		c8.v[x] = c8.dt

	case WaitKey:
		// Fx0A - LD Vx, K -- Wait for a key press, store the value of the key in
		// Vx. Without a press the instruction is retried on the next tick.
		k, ok := c8.keypad.consumeFirst()
		if !ok {
			return advanceNone, nil
		}
		c8.v[x] = uint8(k)

	case SetDelayTimer:
		// Fx15 - LD DT, Vx -- Set delay timer = Vx.
		c8.dt = c8.v[x]

	case SetSoundTimer:
		// Fx18 - LD ST, Vx -- Set sound timer = Vx.
		c8.st = c8.v[x]
		c8.updateTone()

	case AddI:
		// Fx1E - ADD I, Vx -- Set I = I + Vx.
		if err := c8.advanceIndex(int(c8.v[x])); err != nil {
			return advanceNone, err
		}

	case SetSprite:
		// Fx29 - LD F, Vx -- Set I = location of sprite for digit Vx.
		if c8.v[x] > 0xf {
			return advanceNone, ErrFontDigit
		}
		c8.i = FontAddr + uint16(c8.v[x])*FontHeight

	case Bcd:
		// Fx33 - LD B, Vx -- Store BCD representation of Vx in memory locations
		// I, I+1, and I+2.
		if err := c8.checkRange(c8.i, 3); err != nil {
			return advanceNone, err
		}
		c8.mem[c8.i] = c8.v[x] / 100
		c8.mem[c8.i+1] = (c8.v[x] % 100) / 10
		c8.mem[c8.i+2] = c8.v[x] % 10

	case Store:
		// Fx55 - LD [I], Vx -- Store registers V0 through Vx in memory starting
		// at location I. I is left pointing past the last stored byte.
		if err := c8.checkRange(c8.i, int(x)+1); err != nil {
			return advanceNone, err
		}
		copy(c8.mem[c8.i:], c8.v[:x+1])
		if err := c8.advanceIndex(int(x) + 1); err != nil {
			return advanceNone, err
		}

	case Read:
		// Fx65 - LD Vx, [I] -- Read registers V0 through Vx from memory starting
		// at location I. I is left pointing past the last read byte.
		if err := c8.checkRange(c8.i, int(x)+1); err != nil {
			return advanceNone, err
		}
		copy(c8.v[:x+1], c8.mem[c8.i:])
		if err := c8.advanceIndex(int(x) + 1); err != nil {
			return advanceNone, err
		}

	default:
		c8.logger.Warn("Skipping unknown opcode",
			log.Hex("pc", c8.pc),
			log.Hex("opcode", ins.Opcode))
	}

	return advanceNext, nil
}

func (c8 *Chip8) setFlag(set bool) {
	if set {
		c8.v[flagRegister] = 1
	} else {
		c8.v[flagRegister] = 0
	}
}

// advanceIndex adds n to I. I never wraps past the top of its 16 bit range.
func (c8 *Chip8) advanceIndex(n int) error {
	next := int(c8.i) + n
	if next > 0xffff {
		return ErrMemoryBounds
	}
	c8.i = uint16(next)
	return nil
}

// checkRange verifies that n bytes starting at addr are inside memory.
func (c8 *Chip8) checkRange(addr uint16, n int) error {
	if int(addr)+n > MemorySize {
		return ErrMemoryBounds
	}
	return nil
}

func (c8 *Chip8) clearDisplay() {
	batch := make([]Pixel, 0, DisplayPixels)
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			c8.gfx[y*DisplayWidth+x] = 0
			batch = append(batch, Pixel{X: uint8(x), Y: uint8(y)})
		}
	}
	c8.display.send(batch)
}

// draw XORs an 8 pixel wide sprite of n rows at I onto the display. Sprites
// wrap around the display edges.
func (c8 *Chip8) draw(vx, vy, n uint8) {
	var batch []Pixel
	collision := false

	for row := uint8(0); row < n; row++ {
		spriteRow := c8.mem[c8.i+uint16(row)]
		py := (int(vy) + int(row)) % DisplayHeight
		for col := uint8(0); col < 8; col++ {
			if spriteRow&(0x80>>col) == 0 {
				continue
			}
			px := (int(vx) + int(col)) % DisplayWidth
			idx := py*DisplayWidth + px
			c8.gfx[idx] ^= 1
			if c8.gfx[idx] == 0 {
				collision = true
			}
			batch = append(batch, Pixel{X: uint8(px), Y: uint8(py), Value: c8.gfx[idx]})
		}
	}

	c8.setFlag(collision)
	c8.display.send(batch)
}
