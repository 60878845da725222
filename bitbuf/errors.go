package bitbuf

import "errors"

var (
	// ErrInvalidArgument reports a nil buffer, a non-positive bit count or a
	// cursor pointing outside its buffer. The copy had no effect.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDstTooSmall reports that the destination cannot hold the requested
	// bit range at the given cursor. The destination capacity is a hard
	// constraint and is never silently truncated.
	ErrDstTooSmall = errors.New("destination buffer is too small")
)
