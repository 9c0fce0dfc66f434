package unixstring

import "bytes"

// UnixString is a growable, null-terminated byte string.
//
// The buffer always ends in exactly one zero byte and contains no other
// zero bytes. Constructors enforce this before taking ownership of their
// input, and every mutating operation validates its argument before
// touching the buffer, so the invariant holds at all times.
type UnixString struct {
	inner []byte
}

// New constructs an empty UnixString.
//
// The buffer holds only the terminator. If the UnixString is going to be
// written to, consider WithCapacity to avoid early reallocation.
func New() *UnixString {
	return &UnixString{inner: []byte{0}}
}

// WithCapacity constructs an empty UnixString whose buffer can hold
// capacity content bytes without reallocating. Room for the terminator is
// always reserved, even when capacity is 0.
func WithCapacity(capacity int) *UnixString {
	return &UnixString{inner: make([]byte, 1, capacity+1)}
}

// FromString constructs a UnixString from the bytes of s, appending a
// terminator. A single trailing zero byte in s is accepted as the
// terminator; a zero byte anywhere else fails with ErrInteriorNul.
func FromString(s string) (*UnixString, error) {
	return FromBytes([]byte(s))
}

// FromBytes constructs a UnixString from b, taking ownership of the
// slice: b must not be read or written by the caller afterwards, as the
// buffer may alias it or grow it in place.
//
// A single trailing zero byte is accepted as the terminator and is not
// duplicated; if b contains no zero byte, exactly one terminator is
// appended. A zero byte at any non-final position fails with
// ErrInteriorNul and leaves b unmodified.
func FromBytes(b []byte) (*UnixString, error) {
	switch pos := bytes.IndexByte(b, 0); {
	case pos < 0:
		return &UnixString{inner: append(b, 0)}, nil
	case pos == len(b)-1:
		return &UnixString{inner: b}, nil
	default:
		return nil, ErrInteriorNul
	}
}

// FromPath constructs a UnixString from a filesystem path.
//
// The path is first converted to its raw-byte representation under the
// platform's encoding rules; on platforms where that conversion is not
// possible the call fails with ErrUnsupportedEncoding before any
// zero-byte validation runs. The termination rule is then the same as
// FromBytes.
func FromPath(path string) (*UnixString, error) {
	b, err := nativeBytes(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(b)
}

// FromOSString constructs a UnixString from a native-OS string, under
// the same platform conversion and termination rules as FromPath.
func FromOSString(s string) (*UnixString, error) {
	b, err := nativeBytes(s)
	if err != nil {
		return nil, err
	}
	return FromBytes(b)
}

// FromTerminated adopts b without copying or validating it.
//
// The caller must guarantee that b is already a well-formed
// null-terminated byte string: non-empty, ending in a zero byte, with no
// other zero byte. This constructor exists for buffers produced by
// C-style APIs whose own contract guarantees termination; it is not a
// general entry point for untrusted byte sequences — use FromBytes for
// those, or call Validate afterwards if adoption is unavoidable.
func FromTerminated(b []byte) *UnixString {
	return &UnixString{inner: b}
}

// Push appends the bytes of s to the buffer, keeping it terminated.
// It fails with ErrInteriorNul under the same rule as PushBytes.
func (us *UnixString) Push(s string) error {
	return us.PushBytes([]byte(s))
}

// PushBytes appends b to the buffer, splicing it in before the
// terminator and re-terminating.
//
// A single trailing zero byte in b is accepted and not duplicated. A
// zero byte at any non-final position fails with ErrInteriorNul and
// leaves the buffer unchanged. Appending may reallocate: pointers and
// views obtained before the call must be re-fetched.
func (us *UnixString) PushBytes(b []byte) error {
	if pos := bytes.IndexByte(b, 0); pos >= 0 {
		if pos != len(b)-1 {
			return ErrInteriorNul
		}
		b = b[:pos]
	}
	us.inner = append(us.inner[:len(us.inner)-1], b...)
	us.inner = append(us.inner, 0)
	return nil
}

// Validate re-checks the buffer's internal representation: a zero byte
// only at the end.
//
// Every safe operation in this package maintains that representation, so
// Validate is useful after adopting a foreign buffer with FromTerminated
// or FromPtr, or after the memory behind Ptr has been written to. It
// returns ErrInteriorNul if a zero byte appears before the final
// position and ErrMissingNulTerminator if no zero byte is present.
func (us *UnixString) Validate() error {
	switch pos := bytes.IndexByte(us.inner, 0); {
	case pos < 0:
		return ErrMissingNulTerminator
	case pos != len(us.inner)-1:
		return ErrInteriorNul
	default:
		return nil
	}
}

// Equal reports whether us and other hold identical bytes.
func (us *UnixString) Equal(other *UnixString) bool {
	if us == nil || other == nil {
		return us == other
	}
	return bytes.Equal(us.inner, other.inner)
}

// Clone returns a deep copy backed by freshly allocated storage.
func (us *UnixString) Clone() *UnixString {
	inner := make([]byte, len(us.inner))
	copy(inner, us.inner)
	return &UnixString{inner: inner}
}

// IntoBytes consumes the UnixString and returns its bytes without the
// terminator, reusing the buffer's storage. The receiver must not be
// used after the call.
func (us *UnixString) IntoBytes() []byte {
	b := us.inner[:len(us.inner)-1]
	us.inner = nil
	return b
}

// IntoBytesWithNul consumes the UnixString and returns its bytes
// including the terminator, reusing the buffer's storage. The receiver
// must not be used after the call.
func (us *UnixString) IntoBytesWithNul() []byte {
	b := us.inner
	us.inner = nil
	return b
}

// CloneString returns the buffer's content, terminator excluded, as an
// independently owned string. Unlike String, the result does not alias
// the buffer and stays valid across later mutation.
func (us *UnixString) CloneString() string {
	return string(us.Bytes())
}
