package beep

import (
	"encoding/binary"
	"sync/atomic"
)

const bytesPerSample = 2 // mono, signed 16 bit little endian

// squareWave produces a square wave while on and silence otherwise. Read is
// called from the audio goroutine, Tone from the engine.
type squareWave struct {
	on        atomic.Bool
	period    int // samples per cycle
	amplitude int16
	phase     int
}

func newSquareWave(sampleRate, frequency int, amplitude int16) *squareWave {
	period := 2
	if frequency > 0 && sampleRate/frequency > period {
		period = sampleRate / frequency
	}
	return &squareWave{
		period:    period,
		amplitude: amplitude,
	}
}

// Tone switches the wave on or off.
func (w *squareWave) Tone(on bool) {
	w.on.Store(on)
}

// Read fills p with whole samples and never fails.
func (w *squareWave) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample * bytesPerSample
	on := w.on.Load()

	for i := 0; i < n; i += bytesPerSample {
		var sample int16
		if on {
			sample = w.amplitude
			if w.phase >= w.period/2 {
				sample = -w.amplitude
			}
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(sample))
		w.phase = (w.phase + 1) % w.period
	}
	return n, nil
}
