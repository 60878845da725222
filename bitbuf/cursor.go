// Package bitbuf provides bit-granularity access to raw byte buffers,
// following the LSB pattern, where the least-significant bits of each byte
// are addressed first.
package bitbuf

const bitsPerByte = 8

// Cursor marks a bit position inside a byte buffer as a (byte index, bit
// index) pair, where bit 0 is the least-significant bit of its byte.
// The zero value addresses the first bit of a buffer.
type Cursor struct {
	Byte int
	Bit  uint8
}

// Advance moves the cursor n bits forward, normalizing the bit index back
// into [0,8). It does not wrap over any buffer; circular wrapping is the
// caller's concern.
func (c *Cursor) Advance(n int) {
	total := int(c.Bit) + n
	c.Byte += total / bitsPerByte
	c.Bit = uint8(total % bitsPerByte)
}

// BitIndex returns the flat bit index addressed by the cursor.
func (c Cursor) BitIndex() int {
	return c.Byte*bitsPerByte + int(c.Bit)
}

// Remaining returns the number of bits between the cursor and the end of a
// buffer of size bytes.
func (c Cursor) Remaining(size int) int {
	return (size-c.Byte)*bitsPerByte - int(c.Bit)
}
