package unixstring

import "errors"

var (
	// ErrInteriorNul is returned when a zero byte appears at a position
	// other than the final one. Such input cannot be represented as a
	// single-terminator byte string; the operation aborts without
	// modifying the receiver.
	ErrInteriorNul = errors.New("interior nul byte")

	// ErrMissingNulTerminator is returned by Validate when the buffer
	// contains no zero byte at all. It can only arise for buffers adopted
	// through FromTerminated or modified through their raw pointer.
	ErrMissingNulTerminator = errors.New("missing nul terminator")

	// ErrUnsupportedEncoding is returned when the current platform cannot
	// represent a path or native-OS string as raw bytes. It is surfaced
	// before any zero-byte validation runs.
	ErrUnsupportedEncoding = errors.New("platform cannot represent value as raw bytes")
)
