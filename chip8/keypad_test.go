package chip8

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadPressTwice(t *testing.T) {
	var kp Keypad
	kp.Press(Key5)
	kp.Press(Key5)

	assert.Equal(t, 2, kp.Count(Key5))
	assert.True(t, kp.Pressed(Key5))
	assert.False(t, kp.Pressed(Key6))
}

func TestKeypadConsume(t *testing.T) {
	var kp Keypad
	kp.Press(KeyE)

	assert.True(t, kp.consume(KeyE))
	assert.False(t, kp.consume(KeyE))
	assert.Equal(t, 0, kp.Count(KeyE))
}

func TestKeypadConsumeFirst(t *testing.T) {
	var kp Keypad

	_, ok := kp.consumeFirst()
	assert.False(t, ok)

	kp.Press(KeyB)
	kp.Press(Key2)

	k, ok := kp.consumeFirst()
	assert.True(t, ok)
	assert.Equal(t, Key2, k)

	k, ok = kp.consumeFirst()
	assert.True(t, ok)
	assert.Equal(t, KeyB, k)
}

func TestKeypadConcurrent(t *testing.T) {
	var kp Keypad
	const presses = 1000

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < presses; i++ {
			kp.Press(Key7)
		}
	}()

	consumed := 0
	go func() {
		defer wg.Done()
		for i := 0; i < presses*2; i++ {
			if kp.consume(Key7) {
				consumed++
			}
		}
	}()
	wg.Wait()

	assert.Equal(t, presses, consumed+kp.Count(Key7))
	assert.True(t, kp.Count(Key7) >= 0)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Key0", Key0.String())
	assert.Equal(t, "KeyA", KeyA.String())
}
