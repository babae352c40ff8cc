// Package beep plays a tone while the sound timer runs.
package beep

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Defaults for New.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440
	defaultAmplitude  = 0x1000
)

// Beeper is a chip8.Buzzer backed by the system audio device.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	wave   *squareWave

	mutex  sync.Mutex
	closed bool
}

// New opens the audio device and starts a silent stream that Tone toggles.
func New(sampleRate, frequency int) (*Beeper, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	b := &Beeper{
		ctx:  ctx,
		wave: newSquareWave(sampleRate, frequency, defaultAmplitude),
	}
	b.player = ctx.NewPlayer(b.wave)
	b.player.Play()
	return b, nil
}

// Tone switches the tone on or off.
func (b *Beeper) Tone(on bool) {
	b.wave.Tone(on)
}

// Close stops playback.
func (b *Beeper) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.wave.Tone(false)
	return b.player.Close()
}
