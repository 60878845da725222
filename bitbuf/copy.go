package bitbuf

import "fmt"

// lowMask returns a mask covering the n least-significant bits of a byte.
func lowMask(n int) byte {
	return byte(1<<uint(n) - 1)
}

// Copy transfers bitCount bits from src, starting at srcCur, into dst,
// starting at dstCur, following the LSB pattern. Copied bits are OR-ed into
// the destination bytes: bits outside the copied range are never cleared, so
// the target range is expected to be zero beforehand.
//
// The destination capacity is a hard constraint: if fewer than bitCount bits
// remain between dstCur and the end of dst, Copy fails with ErrDstTooSmall
// and has no effect. The source is best-effort: if it holds fewer than
// bitCount bits past srcCur, the transfer is silently reduced to what the
// source can supply. Callers must inspect the returned count rather than
// assume full completion.
func Copy(dst []byte, dstCur Cursor, src []byte, srcCur Cursor, bitCount int) (int, error) {
	switch {
	case dst == nil:
		return 0, fmt.Errorf("%w: dst is missing", ErrInvalidArgument)
	case src == nil:
		return 0, fmt.Errorf("%w: src is missing", ErrInvalidArgument)
	case bitCount <= 0:
		return 0, fmt.Errorf("%w: bit count must be positive", ErrInvalidArgument)
	case dstCur.Bit >= bitsPerByte || srcCur.Bit >= bitsPerByte:
		return 0, fmt.Errorf("%w: cursor bit index out of range", ErrInvalidArgument)
	case dstCur.Byte < 0 || dstCur.Byte > len(dst) || srcCur.Byte < 0 || srcCur.Byte > len(src):
		return 0, fmt.Errorf("%w: cursor byte index out of range", ErrInvalidArgument)
	case bitCount > len(src)*bitsPerByte:
		return 0, fmt.Errorf("%w: %d bits requested from a %d-byte source", ErrInvalidArgument, bitCount, len(src))
	}

	if dstCur.Remaining(len(dst)) < bitCount {
		return 0, fmt.Errorf("%w: %d bits requested at bit %d of a %d-byte buffer",
			ErrDstTooSmall, bitCount, dstCur.BitIndex(), len(dst))
	}

	// Short copy: reduce the transfer to what the source actually holds.
	if avail := srcCur.Remaining(len(src)); bitCount > avail {
		bitCount = avail
	}

	for left := bitCount; left > 0; {
		// The largest chunk that stays within the current byte on both
		// sides: all remaining bits when they fit, otherwise up to the
		// nearer byte boundary.
		chunk := left
		if int(dstCur.Bit)+left > bitsPerByte || int(srcCur.Bit)+left > bitsPerByte {
			if dstCur.Bit >= srcCur.Bit {
				chunk = bitsPerByte - int(dstCur.Bit)
			} else {
				chunk = bitsPerByte - int(srcCur.Bit)
			}
		}

		// Realign the chunk from the source bit offset to the destination
		// bit offset and OR it into place.
		bits := (src[srcCur.Byte] >> srcCur.Bit) & lowMask(chunk)
		dst[dstCur.Byte] |= bits << dstCur.Bit

		dstCur.Advance(chunk)
		srcCur.Advance(chunk)
		left -= chunk
	}

	return bitCount, nil
}
