package chip8

import (
	"fmt"
	"sync/atomic"
)

// Key is one of the 16 keys of the hex keypad.
type Key uint8

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

func (k Key) String() string {
	return fmt.Sprintf("Key%X", uint8(k))
}

// Keypad counts pending key presses. Hosts call Press from their input
// goroutine, the engine consumes presses from its own.
type Keypad struct {
	keys [KeyCount]atomic.Int32
}

// Press records one press of k. Presses accumulate until consumed.
func (kp *Keypad) Press(k Key) {
	kp.keys[k&0xf].Add(1)
}

// Pressed reports whether k has at least one unconsumed press.
func (kp *Keypad) Pressed(k Key) bool {
	return kp.keys[k&0xf].Load() > 0
}

// Count returns the number of unconsumed presses of k.
func (kp *Keypad) Count(k Key) int {
	return int(kp.keys[k&0xf].Load())
}

// consume takes one press of k if there is one.
func (kp *Keypad) consume(k Key) bool {
	c := &kp.keys[k&0xf]
	for {
		n := c.Load()
		if n <= 0 {
			return false
		}
		if c.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// consumeFirst takes one press of the lowest numbered pressed key.
func (kp *Keypad) consumeFirst() (Key, bool) {
	for k := Key0; k <= KeyF; k++ {
		if kp.consume(k) {
			return k, true
		}
	}
	return 0, false
}
