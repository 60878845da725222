package bitqueue

import (
	"encoding/binary"
	"fmt"
)

// WriteUint enqueues the numBits least-significant bits of val, LSB first.
// It is a convenience wrapper around WriteBits for bit-packed integer
// fields.
func (q *Queue) WriteUint(val uint64, numBits int) error {
	if numBits <= 0 || numBits > 64 {
		return fmt.Errorf("%w: uint bit count must be in [1,64]", ErrInvalidArgument)
	}

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, val)
	_, err := q.WriteBits(buf, numBits)
	return err
}

// ReadUint dequeues numBits bits, LSB first, and returns them as an
// unsigned integer.
func (q *Queue) ReadUint(numBits int) (uint64, error) {
	if numBits <= 0 || numBits > 64 {
		return 0, fmt.Errorf("%w: uint bit count must be in [1,64]", ErrInvalidArgument)
	}

	buf := make([]byte, 8)
	if _, err := q.ReadBits(buf, numBits); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}
