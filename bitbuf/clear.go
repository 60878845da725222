package bitbuf

import "fmt"

// Clear zeroes bitCount bits of buf past cur, leaving every other bit
// untouched. Copy OR-s bits into place and never clears, so callers reusing
// a buffer region must Clear it first.
func Clear(buf []byte, cur Cursor, bitCount int) error {
	switch {
	case buf == nil:
		return fmt.Errorf("%w: buf is missing", ErrInvalidArgument)
	case bitCount <= 0:
		return fmt.Errorf("%w: bit count must be positive", ErrInvalidArgument)
	case cur.Bit >= bitsPerByte:
		return fmt.Errorf("%w: cursor bit index out of range", ErrInvalidArgument)
	case cur.Byte < 0 || cur.Byte > len(buf):
		return fmt.Errorf("%w: cursor byte index out of range", ErrInvalidArgument)
	}

	if cur.Remaining(len(buf)) < bitCount {
		return fmt.Errorf("%w: %d bits requested at bit %d of a %d-byte buffer",
			ErrDstTooSmall, bitCount, cur.BitIndex(), len(buf))
	}

	for left := bitCount; left > 0; {
		chunk := left
		if int(cur.Bit)+chunk > bitsPerByte {
			chunk = bitsPerByte - int(cur.Bit)
		}

		buf[cur.Byte] &^= lowMask(chunk) << cur.Bit

		cur.Advance(chunk)
		left -= chunk
	}

	return nil
}
