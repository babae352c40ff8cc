package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestScreenApply(t *testing.T) {
	var s Screen
	s.Apply([]Pixel{{X: 3, Y: 4, Value: 1}, {X: 63, Y: 31, Value: 1}, {X: 64, Y: 0, Value: 1}})
	assert.Equal(t, uint8(1), s.At(3, 4))
	assert.Equal(t, uint8(1), s.At(63, 31))
	assert.Equal(t, uint8(0), s.At(64, 0))
	assert.Equal(t, uint8(0), s.At(-1, 0))

	s.Apply([]Pixel{{X: 3, Y: 4, Value: 0}})
	assert.Equal(t, uint8(0), s.At(3, 4))
}

// TestScreenMirrorsEngine runs a short program and checks that a consumer
// rebuilding the display from batches ends up with the engine's frame.
func TestScreenMirrorsEngine(t *testing.T) {
	c8 := New(Options{Display: NewDisplay(2), Logger: log.NewTestLogger(t)})
	program := []uint8{
		0x60, 0x3c, // LD V0, 0x3C
		0x61, 0x1e, // LD V1, 0x1E
		0xa0, 0x00, // LD I, 0x000
		0xd0, 0x15, // DRW V0, V1, 5
		0x70, 0x05, // ADD V0, 5
		0xd0, 0x15, // DRW V0, V1, 5
		0x00, 0xe0, // CLS
		0xd0, 0x15, // DRW V0, V1, 5
		0x12, 0x10, // JP 0x210
	}
	copy(c8.mem[ProgramStart:], program)

	var s Screen
	for i := 0; i < len(program)/2+2; i++ {
		assert.NoError(t, c8.Step())
		s.Drain(c8.Display())
	}
	assert.NoError(t, c8.Step())
	s.Drain(c8.Display())

	assert.Equal(t, 0, c8.Display().Pending())
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if s.At(x, y) != c8.Pixel(x, y) {
				t.Fatalf("pixel %d,%d: screen %d, engine %d", x, y, s.At(x, y), c8.Pixel(x, y))
			}
		}
	}
}
