package bitqueue

import "errors"

var (
	// ErrInvalidArgument reports a missing buffer, a non-positive bit count
	// or a caller buffer too short to hold the claimed bit count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMessageTooLarge reports a request exceeding the queue's absolute
	// capacity. Such a request can never succeed, regardless of occupancy,
	// and should not be retried unmodified.
	ErrMessageTooLarge = errors.New("bit count exceeds queue capacity")

	// ErrWouldBlock reports insufficient free space for a write. The request
	// is retryable once reads lower the occupancy.
	ErrWouldBlock = errors.New("insufficient free space")

	// ErrNoData reports insufficient occupied bits for a read. The request
	// is retryable once writes raise the occupancy.
	ErrNoData = errors.New("insufficient data")

	// ErrClosed reports an operation on a queue that was already closed.
	// A double close indicates a caller lifecycle bug and is rejected, not
	// ignored.
	ErrClosed = errors.New("queue is closed")
)
