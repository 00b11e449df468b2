package machine

// Font layout constants.
const (
	// FontStart is the memory address of the first font glyph.
	FontStart = 0x000
	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5
	// GlyphCount is the number of built-in hexadecimal digit glyphs.
	GlyphCount = 16
)

// font contains the 4x5 pixel glyphs for the hexadecimal digits 0-F.
var font = [GlyphCount * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the memory address of the font glyph for the given digit.
// Only the low nibble of the digit is used.
func GlyphAddress(digit byte) uint16 {
	return FontStart + uint16(digit&0x0F)*GlyphSize
}
