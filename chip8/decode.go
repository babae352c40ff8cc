package chip8

// Decode maps an instruction word to its instruction. The second result is
// false for words that are not assigned to any CHIP-8 instruction.
func Decode(op uint16) (Instruction, bool) {
	ins := Instruction{
		Opcode: op,
		Addr:   op & 0xfff,
		X:      uint8((op & 0xf00) >> 8),
		Y:      uint8((op & 0xf0) >> 4),
		Byte:   uint8(op & 0xff),
		Nibble: uint8(op & 0xf),
		Group:  uint8(op >> 12),
	}

	// 00E0 and 00EE share group 0x0 with SYS, so they are matched first.
	switch op {
	case 0x00e0:
		ins.Kind = Clear
		return ins, true
	case 0x00ee:
		ins.Kind = Return
		return ins, true
	}

	switch ins.Group {
	case 0x0:
		ins.Kind = Sys
	case 0x1:
		ins.Kind = Jump
	case 0x2:
		ins.Kind = Call
	case 0x3:
		ins.Kind = SkipOnEqualByte
	case 0x4:
		ins.Kind = SkipOnNotEqualByte
	case 0x5:
		if ins.Nibble == 0x0 {
			ins.Kind = SkipOnEqual
		}
	case 0x6:
		ins.Kind = SetByte
	case 0x7:
		ins.Kind = AddByte
	case 0x8:
		ins.Kind = decodeALU(ins.Nibble)
	case 0x9:
		if ins.Nibble == 0x0 {
			ins.Kind = SkipOnNotEqual
		}
	case 0xa:
		ins.Kind = SetI
	case 0xb:
		ins.Kind = JumpPlus
	case 0xc:
		ins.Kind = RandomMask
	case 0xd:
		ins.Kind = Draw
	case 0xe:
		switch ins.Byte {
		case 0x9e:
			ins.Kind = SkipOnKeyPressed
		case 0xa1:
			ins.Kind = SkipOnKeyNotPressed
		}
	case 0xf:
		ins.Kind = decodeMisc(ins.Byte)
	}

	return ins, ins.Kind != 0
}

// 8xyN
func decodeALU(n uint8) Kind {
	switch n {
	case 0x0:
		return Set
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return Add
	case 0x5:
		return SubXY
	case 0x6:
		return ShiftRight
	case 0x7:
		return SubYX
	case 0xe:
		return ShiftLeft
	}
	return 0
}

// FxNN
func decodeMisc(kk uint8) Kind {
	switch kk {
	case 0x07:
		return StoreDelayTimer
	case 0x0a:
		return WaitKey
	case 0x15:
		return SetDelayTimer
	case 0x18:
		return SetSoundTimer
	case 0x1e:
		return AddI
	case 0x29:
		return SetSprite
	case 0x33:
		return Bcd
	case 0x55:
		return Store
	case 0x65:
		return Read
	}
	return 0
}
