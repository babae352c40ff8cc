package chip8

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	c8 := New(Options{Logger: log.NewTestLogger(t)})

	assert.Equal(t, uint16(ProgramStart), c8.PC())
	assert.Equal(t, uint16(0), c8.I())
	assert.Equal(t, uint8(0), c8.SP())
	assert.Equal(t, uint8(0), c8.DelayTimer())
	assert.Equal(t, uint8(0), c8.SoundTimer())
	for x := uint8(0); x < RegisterCount; x++ {
		assert.Equal(t, uint8(0), c8.V(x))
	}
	for addr := 0; addr < len(fontset); addr++ {
		assert.Equal(t, fontset[addr], c8.Memory(uint16(FontAddr+addr)))
	}
	assert.Equal(t, [DisplayPixels]uint8{}, c8.Frame())
	assert.NotNil(t, c8.Display())
	assert.NotNil(t, c8.Keypad())
}

func TestLoadROM(t *testing.T) {
	c8 := New(Options{Logger: log.NewTestLogger(t)})

	assert.NoError(t, c8.LoadROM(bytes.NewReader([]byte{0x12, 0x34, 0x56})))
	assert.Equal(t, uint8(0x12), c8.Memory(ProgramStart))
	assert.Equal(t, uint8(0x34), c8.Memory(ProgramStart+1))
	assert.Equal(t, uint8(0x56), c8.Memory(ProgramStart+2))
	assert.Equal(t, uint8(0), c8.Memory(ProgramStart+3))
}

func TestLoadROMSizes(t *testing.T) {
	c8 := New(Options{Logger: log.NewTestLogger(t)})

	rom := bytes.Repeat([]byte{0xaa}, MaxROMSize)
	assert.NoError(t, c8.LoadROM(bytes.NewReader(rom)))
	assert.Equal(t, uint8(0xaa), c8.Memory(MemorySize-1))

	err := c8.LoadROM(bytes.NewReader(append(rom, 0xbb)))
	assert.True(t, errors.Is(err, ErrROMTooLarge))
}

func TestPixelWraps(t *testing.T) {
	c8 := New(Options{Logger: log.NewTestLogger(t)})
	c8.gfx[DisplayPixels-1] = 1

	assert.Equal(t, uint8(1), c8.Pixel(DisplayWidth-1, DisplayHeight-1))
	assert.Equal(t, uint8(1), c8.Pixel(-1, -1))
	assert.Equal(t, uint8(1), c8.Pixel(2*DisplayWidth-1, 2*DisplayHeight-1))
}

func TestExecErrorMessage(t *testing.T) {
	ins, _ := Decode(0x00ee)
	err := &ExecError{PC: 0x204, Instruction: ins, Err: ErrStackUnderflow}

	assert.Equal(t, "executing 0x00EE (RET) at 0x204: stack underflow", err.Error())
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}
