package font6x8

// glyphs holds one 6x8 cell per rune, top row first.
// Bits are stored as 0b00xxxxxx (bit5 = leftmost pixel); the last row is the
// descender line and stays blank.
var glyphs = map[rune][8]byte{
	' ': {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'%': {0x30, 0x32, 0x04, 0x08, 0x10, 0x26, 0x06, 0x00},
	'+': {0x00, 0x08, 0x08, 0x3e, 0x08, 0x08, 0x00, 0x00},
	'-': {0x00, 0x00, 0x00, 0x3e, 0x00, 0x00, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	'/': {0x00, 0x02, 0x04, 0x08, 0x10, 0x20, 0x00, 0x00},
	'0': {0x1c, 0x22, 0x26, 0x2a, 0x32, 0x22, 0x1c, 0x00},
	'1': {0x08, 0x18, 0x08, 0x08, 0x08, 0x08, 0x1c, 0x00},
	'2': {0x1c, 0x22, 0x02, 0x04, 0x08, 0x10, 0x3e, 0x00},
	'3': {0x3e, 0x04, 0x08, 0x04, 0x02, 0x22, 0x1c, 0x00},
	'4': {0x04, 0x0c, 0x14, 0x24, 0x3e, 0x04, 0x04, 0x00},
	'5': {0x3e, 0x20, 0x3c, 0x02, 0x02, 0x22, 0x1c, 0x00},
	'6': {0x0c, 0x10, 0x20, 0x3c, 0x22, 0x22, 0x1c, 0x00},
	'7': {0x3e, 0x02, 0x04, 0x08, 0x10, 0x10, 0x10, 0x00},
	'8': {0x1c, 0x22, 0x22, 0x1c, 0x22, 0x22, 0x1c, 0x00},
	'9': {0x1c, 0x22, 0x22, 0x1e, 0x02, 0x04, 0x18, 0x00},
	'=': {0x00, 0x00, 0x3e, 0x00, 0x3e, 0x00, 0x00, 0x00},
	'?': {0x1c, 0x22, 0x02, 0x04, 0x08, 0x00, 0x08, 0x00},
	'A': {0x1c, 0x22, 0x22, 0x3e, 0x22, 0x22, 0x22, 0x00},
	'C': {0x1c, 0x22, 0x20, 0x20, 0x20, 0x22, 0x1c, 0x00},
	'E': {0x3e, 0x20, 0x20, 0x3c, 0x20, 0x20, 0x3e, 0x00},
	'a': {0x00, 0x00, 0x1c, 0x02, 0x1e, 0x22, 0x1e, 0x00},
	'e': {0x00, 0x00, 0x1c, 0x22, 0x3e, 0x20, 0x1c, 0x00},
	'f': {0x0c, 0x12, 0x10, 0x38, 0x10, 0x10, 0x10, 0x00},
	'i': {0x08, 0x00, 0x18, 0x08, 0x08, 0x08, 0x1c, 0x00},
	'n': {0x00, 0x00, 0x2c, 0x32, 0x22, 0x22, 0x22, 0x00},
	'o': {0x00, 0x00, 0x1c, 0x22, 0x22, 0x22, 0x1c, 0x00},
	'r': {0x00, 0x00, 0x2c, 0x32, 0x20, 0x20, 0x20, 0x00},
	'x': {0x00, 0x00, 0x22, 0x14, 0x08, 0x14, 0x22, 0x00},
	'÷': {0x00, 0x08, 0x00, 0x3e, 0x00, 0x08, 0x00, 0x00},
}
