// Package bitqueue implements a circular FIFO queue over a byte buffer,
// addressed at bit granularity: callers enqueue and dequeue arbitrary
// numbers of bits, independent of byte alignment, following the LSB
// pattern, where byte i, bit b (0 = least significant) is global bit i*8+b.
package bitqueue

import (
	"fmt"

	"github.com/streampack/bitqueue/bitbuf"
	"github.com/streampack/bitqueue/shared"
)

const bitsPerByte = 8

// Queue is a bit-granular circular queue. It tracks a read cursor, a write
// cursor and an occupancy count over a fixed-size backing buffer; the buffer
// never grows. A Queue is not safe for concurrent use: simultaneous readers
// or writers must be serialized by the caller.
type Queue struct {
	buf       []byte
	rd        bitbuf.Cursor
	wr        bitbuf.Cursor
	occupancy int
	closed    bool
	logger    shared.Logger
}

// New allocates a zeroed backing buffer of byteCount bytes and returns an
// empty queue over it.
func New(byteCount int) (*Queue, error) {
	if byteCount <= 0 {
		return nil, fmt.Errorf("%w: byte count must be positive", ErrInvalidArgument)
	}

	return &Queue{
		buf:    make([]byte, byteCount),
		logger: shared.NoopLogger{},
	}, nil
}

// Wrap returns a queue over a caller-supplied buffer, without copying. The
// queue starts fully occupied, modeling a buffer that already holds valid
// data to be drained. The buffer is borrowed: the caller must not touch it
// for the lifetime of the queue.
func Wrap(buf []byte) (*Queue, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: buffer is missing or empty", ErrInvalidArgument)
	}

	return &Queue{
		buf:       buf,
		occupancy: len(buf) * bitsPerByte,
		logger:    shared.NoopLogger{},
	}, nil
}

func (q *Queue) SetLogger(logger shared.Logger) {
	q.logger = logger
}

// Cap returns the total queue capacity, in bits.
func (q *Queue) Cap() int { return len(q.buf) * bitsPerByte }

// Occupancy returns the number of valid, unread bits currently held.
func (q *Queue) Occupancy() int { return q.occupancy }

// Free returns the number of bits that can be written before the queue is
// full.
func (q *Queue) Free() int { return q.Cap() - q.occupancy }

// WriteBits enqueues the first bitCount bits of src, starting at the
// least-significant bit of its first byte. It fails with ErrMessageTooLarge
// if bitCount exceeds the queue's absolute capacity and with ErrWouldBlock
// if the current free space is too small; the latter is retryable.
//
// On success the returned count equals bitCount. If the copy primitive fails
// mid-sequence, the bits transferred by earlier chunks remain enqueued and
// the returned count reflects them; there is no rollback.
func (q *Queue) WriteBits(src []byte, bitCount int) (int, error) {
	if err := q.checkRequest(src, bitCount); err != nil {
		return 0, err
	}
	if bitCount > q.Free() {
		return 0, fmt.Errorf("%w: %d bits requested, %d free", ErrWouldBlock, bitCount, q.Free())
	}

	var srcCur bitbuf.Cursor
	written := 0
	for written < bitCount {
		// The copy primitive treats its destination as linear, so each
		// chunk is clamped to the space before the physical end of the
		// backing buffer; the cursor wraps between chunks.
		chunk := shared.Min(bitCount-written, q.wr.Remaining(len(q.buf)))

		// The target range may hold stale bits consumed by earlier reads;
		// the primitive OR-s and never clears, so clear it here.
		if err := bitbuf.Clear(q.buf, q.wr, chunk); err != nil {
			return written, err
		}

		n, err := bitbuf.Copy(q.buf, q.wr, src, srcCur, chunk)
		if err != nil {
			return written, err
		}

		srcCur.Advance(n)
		q.advance(&q.wr, n)
		q.occupancy += n
		written += n
	}

	q.logger.Debug("wrote %d bits, occupancy %d/%d", written, q.occupancy, q.Cap())
	return written, nil
}

// ReadBits dequeues bitCount bits into dst, starting at the
// least-significant bit of its first byte. It fails with ErrMessageTooLarge
// if bitCount exceeds the queue's absolute capacity and with ErrNoData if
// fewer bits are currently occupied; the latter is retryable.
//
// Dequeued bits are OR-ed into dst, so the target bit range is expected to
// be zero beforehand; dst bits outside the range are left untouched. The
// partial-effect behavior on a mid-sequence failure matches WriteBits.
func (q *Queue) ReadBits(dst []byte, bitCount int) (int, error) {
	if err := q.checkRequest(dst, bitCount); err != nil {
		return 0, err
	}
	if bitCount > q.occupancy {
		return 0, fmt.Errorf("%w: %d bits requested, %d occupied", ErrNoData, bitCount, q.occupancy)
	}

	var dstCur bitbuf.Cursor
	read := 0
	for read < bitCount {
		// The primitive short-copies at the physical end of the backing
		// buffer; wrap the read cursor and keep draining.
		n, err := bitbuf.Copy(dst, dstCur, q.buf, q.rd, bitCount-read)
		if err != nil {
			return read, err
		}

		dstCur.Advance(n)
		q.advance(&q.rd, n)
		q.occupancy -= n
		read += n
	}

	q.logger.Debug("read %d bits, occupancy %d/%d", read, q.occupancy, q.Cap())
	return read, nil
}

// Close invalidates the queue and drops its reference to the backing
// buffer. Closing an already-closed queue fails with ErrClosed.
func (q *Queue) Close() error {
	if q.closed || q.buf == nil {
		return ErrClosed
	}

	q.closed = true
	q.buf = nil
	q.rd, q.wr = bitbuf.Cursor{}, bitbuf.Cursor{}
	q.occupancy = 0
	return nil
}

// checkRequest applies the guards shared by reads and writes, in order:
// argument validity, queue liveness, then the absolute capacity bound.
func (q *Queue) checkRequest(buf []byte, bitCount int) error {
	switch {
	case buf == nil:
		return fmt.Errorf("%w: buffer is missing", ErrInvalidArgument)
	case bitCount <= 0:
		return fmt.Errorf("%w: bit count must be positive", ErrInvalidArgument)
	case len(buf)*bitsPerByte < bitCount:
		return fmt.Errorf("%w: buffer holds %d bits, %d claimed", ErrInvalidArgument, len(buf)*bitsPerByte, bitCount)
	case q.closed || q.buf == nil:
		return ErrClosed
	case bitCount > q.Cap():
		return fmt.Errorf("%w: %d bits requested, capacity is %d", ErrMessageTooLarge, bitCount, q.Cap())
	}
	return nil
}

// advance moves a queue cursor n bits forward, wrapping both the byte and
// the bit index to zero at the physical end of the backing buffer. Chunks
// never cross the end, so the byte index lands exactly on len(q.buf) when a
// wrap is due.
func (q *Queue) advance(c *bitbuf.Cursor, n int) {
	c.Advance(n)
	if c.Byte == len(q.buf) {
		*c = bitbuf.Cursor{}
	}
}
