// Package keymap translates host keyboard characters to keypad keys.
//
//	Keypad    =>  Keyboard
//	|1|2|3|C|     |1|2|3|4|
//	|4|5|6|D|     |Q|W|E|R|
//	|7|8|9|E|     |A|S|D|F|
//	|A|0|B|F|     |Z|X|C|V|
package keymap

import (
	"unicode"

	"github.com/jhbabon/johnny-eight/chip8"
)

var layout = map[rune]chip8.Key{
	'1': chip8.Key1, '2': chip8.Key2, '3': chip8.Key3, '4': chip8.KeyC,
	'q': chip8.Key4, 'w': chip8.Key5, 'e': chip8.Key6, 'r': chip8.KeyD,
	'a': chip8.Key7, 's': chip8.Key8, 'd': chip8.Key9, 'f': chip8.KeyE,
	'z': chip8.KeyA, 'x': chip8.Key0, 'c': chip8.KeyB, 'v': chip8.KeyF,
}

// Lookup returns the keypad key bound to the character r. Letters match in
// either case.
func Lookup(r rune) (chip8.Key, bool) {
	k, ok := layout[unicode.ToLower(r)]
	return k, ok
}
