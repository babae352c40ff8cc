package beep

import (
	"encoding/binary"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func samples(t *testing.T, w *squareWave, count int) []int16 {
	t.Helper()

	buf := make([]byte, count*bytesPerSample+1)
	n, err := w.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, count*bytesPerSample, n)

	out := make([]int16, count)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(buf[i*bytesPerSample:]))
	}
	return out
}

func TestSquareWaveSilentWhenOff(t *testing.T) {
	w := newSquareWave(8, 2, 100)

	for _, s := range samples(t, w, 8) {
		assert.Equal(t, int16(0), s)
	}
}

func TestSquareWaveTone(t *testing.T) {
	w := newSquareWave(8, 2, 100)
	w.Tone(true)

	assert.Equal(t, []int16{100, 100, -100, -100, 100, 100, -100, -100}, samples(t, w, 8))

	w.Tone(false)
	assert.Equal(t, []int16{0, 0}, samples(t, w, 2))
}

func TestSquareWavePeriodFloor(t *testing.T) {
	w := newSquareWave(100, 1000, 1)
	assert.Equal(t, 2, w.period)

	w = newSquareWave(100, 0, 1)
	assert.Equal(t, 2, w.period)
}
