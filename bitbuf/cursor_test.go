package bitbuf_test

import (
	"testing"

	"github.com/streampack/bitqueue/bitbuf"
	"github.com/stretchr/testify/require"
)

func TestCursorAdvance(t *testing.T) {
	req := require.New(t)

	var c bitbuf.Cursor
	c.Advance(3)
	req.Equal(bitbuf.Cursor{Byte: 0, Bit: 3}, c)

	c.Advance(5)
	req.Equal(bitbuf.Cursor{Byte: 1, Bit: 0}, c)

	c.Advance(17)
	req.Equal(bitbuf.Cursor{Byte: 3, Bit: 1}, c)

	c.Advance(0)
	req.Equal(bitbuf.Cursor{Byte: 3, Bit: 1}, c)
}

func TestCursorAdvanceNormalizes(t *testing.T) {
	req := require.New(t)

	// Every (start, step) combination lands on the flat bit index with a
	// normalized bit field.
	for start := 0; start < 64; start++ {
		for step := 1; step < 64; step++ {
			c := bitbuf.Cursor{Byte: start / 8, Bit: uint8(start % 8)}
			c.Advance(step)
			req.Equal(start+step, c.BitIndex())
			req.True(c.Bit < 8)
		}
	}
}

func TestCursorRemaining(t *testing.T) {
	req := require.New(t)

	req.Equal(16, bitbuf.Cursor{}.Remaining(2))
	req.Equal(13, bitbuf.Cursor{Byte: 0, Bit: 3}.Remaining(2))
	req.Equal(1, bitbuf.Cursor{Byte: 1, Bit: 7}.Remaining(2))
	req.Equal(0, bitbuf.Cursor{Byte: 2, Bit: 0}.Remaining(2))
}
