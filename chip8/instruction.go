package chip8

import "fmt"

// Kind identifies one of the 35 canonical CHIP-8 instructions.
type Kind uint8

const (
	Clear               Kind = iota + 1 // 00E0
	Return                              // 00EE
	Sys                                 // 0nnn
	Jump                                // 1nnn
	Call                                // 2nnn
	SkipOnEqualByte                     // 3xkk
	SkipOnNotEqualByte                  // 4xkk
	SkipOnEqual                         // 5xy0
	SetByte                             // 6xkk
	AddByte                             // 7xkk
	Set                                 // 8xy0
	Or                                  // 8xy1
	And                                 // 8xy2
	Xor                                 // 8xy3
	Add                                 // 8xy4
	SubXY                               // 8xy5
	ShiftRight                          // 8xy6
	SubYX                               // 8xy7
	ShiftLeft                           // 8xyE
	SkipOnNotEqual                      // 9xy0
	SetI                                // Annn
	JumpPlus                            // Bnnn
	RandomMask                          // Cxkk
	Draw                                // Dxyn
	SkipOnKeyPressed                    // Ex9E
	SkipOnKeyNotPressed                 // ExA1
	StoreDelayTimer                     // Fx07
	WaitKey                             // Fx0A
	SetDelayTimer                       // Fx15
	SetSoundTimer                       // Fx18
	AddI                                // Fx1E
	SetSprite                           // Fx29
	Bcd                                 // Fx33
	Store                               // Fx55
	Read                                // Fx65
)

var kindNames = [...]string{
	Clear:               "Clear",
	Return:              "Return",
	Sys:                 "Sys",
	Jump:                "Jump",
	Call:                "Call",
	SkipOnEqualByte:     "SkipOnEqualByte",
	SkipOnNotEqualByte:  "SkipOnNotEqualByte",
	SkipOnEqual:         "SkipOnEqual",
	SetByte:             "SetByte",
	AddByte:             "AddByte",
	Set:                 "Set",
	Or:                  "Or",
	And:                 "And",
	Xor:                 "Xor",
	Add:                 "Add",
	SubXY:               "SubXY",
	ShiftRight:          "ShiftRight",
	SubYX:               "SubYX",
	ShiftLeft:           "ShiftLeft",
	SkipOnNotEqual:      "SkipOnNotEqual",
	SetI:                "SetI",
	JumpPlus:            "JumpPlus",
	RandomMask:          "RandomMask",
	Draw:                "Draw",
	SkipOnKeyPressed:    "SkipOnKeyPressed",
	SkipOnKeyNotPressed: "SkipOnKeyNotPressed",
	StoreDelayTimer:     "StoreDelayTimer",
	WaitKey:             "WaitKey",
	SetDelayTimer:       "SetDelayTimer",
	SetSoundTimer:       "SetSoundTimer",
	AddI:                "AddI",
	SetSprite:           "SetSprite",
	Bcd:                 "Bcd",
	Store:               "Store",
	Read:                "Read",
}

// KindCount is the number of instruction kinds.
const KindCount = len(kindNames) - 1

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Instruction is a decoded opcode together with its operand fields.
type Instruction struct {
	Kind   Kind
	Opcode uint16

	Addr   uint16 // nnn, low 12 bits
	X      uint8  // bits 8-11
	Y      uint8  // bits 4-7
	Byte   uint8  // kk, low 8 bits
	Nibble uint8  // n, low 4 bits
	Group  uint8  // bits 12-15
}

// String returns the instruction mnemonic in the notation of Cowgod's
// Chip-8 Technical Reference.
func (ins Instruction) String() string {
	switch ins.Kind {
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Sys:
		return fmt.Sprintf("SYS 0x%03X", ins.Addr)
	case Jump:
		return fmt.Sprintf("JP 0x%03X", ins.Addr)
	case Call:
		return fmt.Sprintf("CALL 0x%03X", ins.Addr)
	case SkipOnEqualByte:
		return fmt.Sprintf("SE V%X, 0x%02X", ins.X, ins.Byte)
	case SkipOnNotEqualByte:
		return fmt.Sprintf("SNE V%X, 0x%02X", ins.X, ins.Byte)
	case SkipOnEqual:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case SetByte:
		return fmt.Sprintf("LD V%X, 0x%02X", ins.X, ins.Byte)
	case AddByte:
		return fmt.Sprintf("ADD V%X, 0x%02X", ins.X, ins.Byte)
	case Set:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case Add:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case SubXY:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X, V%X", ins.X, ins.Y)
	case SubYX:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X, V%X", ins.X, ins.Y)
	case SkipOnNotEqual:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case SetI:
		return fmt.Sprintf("LD I, 0x%03X", ins.Addr)
	case JumpPlus:
		return fmt.Sprintf("JP V0, 0x%03X", ins.Addr)
	case RandomMask:
		return fmt.Sprintf("RND V%X, 0x%02X", ins.X, ins.Byte)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.Nibble)
	case SkipOnKeyPressed:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SkipOnKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case StoreDelayTimer:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case SetDelayTimer:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case SetSoundTimer:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddI:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case SetSprite:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case Bcd:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case Store:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case Read:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("DW 0x%04X", ins.Opcode)
}
