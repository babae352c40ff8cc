package chip8

import (
	"fmt"
	"io"
)

// Disassemble writes one line per instruction word of rom, addressed from
// origin. A trailing odd byte is listed as data.
func Disassemble(w io.Writer, rom []byte, origin uint16) error {
	for offset := 0; offset < len(rom); offset += 2 {
		addr := origin + uint16(offset)
		if offset+1 >= len(rom) {
			if _, err := fmt.Fprintf(w, "%03X  %02X    DB 0x%02X\n", addr, rom[offset], rom[offset]); err != nil {
				return err
			}
			break
		}

		op := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		ins, _ := Decode(op)
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", addr, op, ins); err != nil {
			return err
		}
	}
	return nil
}
