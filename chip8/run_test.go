package chip8

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type recordingBuzzer struct {
	states []bool
}

func (b *recordingBuzzer) Tone(on bool) {
	b.states = append(b.states, on)
}

func newClockedChip8(t *testing.T, clockHz, timerHz int) (*Chip8, chan Tick) {
	t.Helper()

	ticks := make(chan Tick, 1)
	c8 := New(Options{
		ClockHz: clockHz,
		TimerHz: timerHz,
		Clock:   ticks,
		Rand:    rand.New(rand.NewSource(1)),
		Logger:  log.NewTestLogger(t),
	})
	// 0x200: JP 0x200
	c8.mem[ProgramStart] = 0x12
	c8.mem[ProgramStart+1] = 0x00
	return c8, ticks
}

func TestCycleOnTick(t *testing.T) {
	c8, ticks := newClockedChip8(t, 1, 1)
	c8.mem[ProgramStart] = 0x60 // LD V0, 0x2A
	c8.mem[ProgramStart+1] = 0x2a
	c8.dt = 10
	c8.st = 10

	ticks <- Tick{}
	ran, err := c8.Cycle()
	assert.NoError(t, err)
	assert.True(t, ran)

	assert.Equal(t, uint8(0x2a), c8.v[0])
	assert.Equal(t, uint16(ProgramStart+2), c8.pc)
	assert.Equal(t, uint8(9), c8.dt)
	assert.Equal(t, uint8(9), c8.st)
}

func TestCycleWithoutTick(t *testing.T) {
	c8, _ := newClockedChip8(t, 1, 1)
	c8.dt = 10
	c8.st = 10

	ran, err := c8.Cycle()
	assert.NoError(t, err)
	assert.False(t, ran)

	assert.Equal(t, uint16(ProgramStart), c8.pc)
	assert.Equal(t, uint8(10), c8.dt)
	assert.Equal(t, uint8(10), c8.st)
}

func TestCycleClockStopped(t *testing.T) {
	c8, ticks := newClockedChip8(t, 1, 1)
	close(ticks)

	ran, err := c8.Cycle()
	assert.False(t, ran)
	assert.True(t, errors.Is(err, ErrClockStopped))
}

func TestCycleReturn(t *testing.T) {
	c8, ticks := newClockedChip8(t, 1, 1)
	c8.mem[0x300] = 0x00
	c8.mem[0x301] = 0xee
	c8.pc = 0x300
	c8.stack[0] = 0x250
	c8.sp = 1

	ticks <- Tick{}
	_, err := c8.Cycle()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x252), c8.pc)
	assert.Equal(t, uint8(0), c8.sp)
}

func TestStepFetchOutOfBounds(t *testing.T) {
	c8, _ := newClockedChip8(t, 1, 1)
	c8.pc = MemorySize - 1

	err := c8.Step()
	assert.True(t, errors.Is(err, ErrMemoryBounds))

	var execErr *ExecError
	assert.True(t, errors.As(err, &execErr))
	assert.Equal(t, uint16(MemorySize-1), execErr.PC)
	assert.Equal(t, "fetching instruction at 0xFFF: memory access out of bounds", err.Error())
}

func TestTimerDivisor(t *testing.T) {
	tests := []struct {
		clockHz, timerHz int
		want             int
	}{
		{600, 60, 10},
		{500, 60, 8},
		{60, 60, 1},
		{30, 60, 1},
		{0, 60, 1},
		{600, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, timerDivisor(tt.clockHz, tt.timerHz))
	}
}

func TestTimersFollowDivisor(t *testing.T) {
	c8, _ := newClockedChip8(t, 600, 60)
	c8.dt = 3

	for i := 0; i < 9; i++ {
		assert.NoError(t, c8.Step())
	}
	assert.Equal(t, uint8(3), c8.dt)

	assert.NoError(t, c8.Step())
	assert.Equal(t, uint8(2), c8.dt)

	for i := 0; i < 40; i++ {
		assert.NoError(t, c8.Step())
	}
	assert.Equal(t, uint8(0), c8.dt)
}

func TestBuzzerTransitions(t *testing.T) {
	buzzer := &recordingBuzzer{}
	c8, _ := newClockedChip8(t, 1, 1)
	c8.buzzer = buzzer
	c8.v[1] = 2

	// LD ST, V1 then JP to self.
	c8.mem[ProgramStart] = 0xf1
	c8.mem[ProgramStart+1] = 0x18
	c8.mem[ProgramStart+2] = 0x12
	c8.mem[ProgramStart+3] = 0x02

	assert.NoError(t, c8.Step()) // ST=2, tone on, decremented to 1
	assert.Equal(t, []bool{true}, buzzer.states)

	assert.NoError(t, c8.Step()) // ST=0
	assert.Equal(t, []bool{true, false}, buzzer.states)

	assert.NoError(t, c8.Step())
	assert.Equal(t, 2, len(buzzer.states))
}

func TestRunSilencesBuzzerOnExit(t *testing.T) {
	buzzer := &recordingBuzzer{}
	c8, _ := newClockedChip8(t, 1, 1)
	c8.buzzer = buzzer
	c8.st = 5
	c8.updateTone()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, c8.Run(ctx))
	assert.Equal(t, []bool{true, false}, buzzer.states)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := NewClock(1000, 0)
	c8 := New(Options{Logger: log.NewTestLogger(t)})
	c8.AttachClock(clock.Ticks())
	c8.mem[ProgramStart] = 0x12 // JP 0x200
	c8.mem[ProgramStart+1] = 0x00

	clockDone := make(chan error, 1)
	go func() { clockDone <- clock.Run(ctx) }()
	runDone := make(chan error, 1)
	go func() { runDone <- c8.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-runDone:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine did not stop")
	}
	assert.NoError(t, <-clockDone)
}

func TestRunReturnsExecError(t *testing.T) {
	c8, ticks := newClockedChip8(t, 1, 1)
	c8.mem[ProgramStart] = 0x00 // RET with empty stack
	c8.mem[ProgramStart+1] = 0xee
	ticks <- Tick{}

	err := c8.Run(context.Background())
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}

func TestRunClockStopped(t *testing.T) {
	c8, ticks := newClockedChip8(t, 1, 1)
	close(ticks)

	err := c8.Run(context.Background())
	assert.True(t, errors.Is(err, ErrClockStopped))
}

func TestRunFlushesDisplayBacklog(t *testing.T) {
	display := NewDisplay(1)
	c8 := New(Options{Display: display, Logger: log.NewTestLogger(t)})
	// CLS, CLS, JP 0x204
	copy(c8.mem[ProgramStart:], []uint8{0x00, 0xe0, 0x00, 0xe0, 0x12, 0x04})

	assert.NoError(t, c8.Step())
	assert.NoError(t, c8.Step())
	assert.Equal(t, DisplayPixels, display.Pending())

	<-display.Updates()
	assert.NoError(t, c8.Step())
	assert.Equal(t, 0, display.Pending())
	assert.Equal(t, DisplayPixels, len(<-display.Updates()))
}

func TestAttachClock(t *testing.T) {
	c8 := New(Options{Logger: log.NewTestLogger(t)})

	ran, err := c8.Cycle()
	assert.NoError(t, err)
	assert.False(t, ran)

	ticks := make(chan Tick, 1)
	c8.AttachClock(ticks)
	ticks <- Tick{}

	ran, err = c8.Cycle()
	assert.NoError(t, err)
	assert.True(t, ran)
}
