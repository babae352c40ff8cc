package chip8

const (
	MemorySize    = 0x1000
	ProgramStart  = 0x200
	MaxROMSize    = MemorySize - ProgramStart
	RegisterCount = 0x10
	StackSize     = 0x10
	KeyCount      = 0x10

	DisplayWidth  = 64
	DisplayHeight = 32
	DisplayPixels = DisplayWidth * DisplayHeight

	// FontAddr is where the hex digit glyphs live in the reserved low memory.
	FontAddr   = 0x000
	FontHeight = 5

	flagRegister = 0xf
)

// fontset holds the 4x5 glyphs for the hex digits 0-F, FontHeight bytes each.
var fontset = [...]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}
