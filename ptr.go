package unixstring

import "unsafe"

// FromPtr copies a C string out of the memory addressed by p into a new
// UnixString.
//
// p must be non-nil and must address readable memory containing a zero
// byte; the bytes up to and including that first zero byte are copied.
// The memory must not be written to while the copy is in progress. These
// preconditions cannot be checked and violating them corrupts memory,
// which is why this constructor copies instead of adopting the region.
func FromPtr(p *byte) *UnixString {
	n := terminatorIndex(p)
	inner := make([]byte, n+1)
	copy(inner, unsafe.Slice(p, n+1))
	return &UnixString{inner: inner}
}

// PushFromPtr appends the content of the C string addressed by p,
// terminator excluded, to the buffer. The preconditions on p are the
// same as for FromPtr.
func (us *UnixString) PushFromPtr(p *byte) error {
	return us.PushBytes(unsafe.Slice(p, terminatorIndex(p)))
}

// terminatorIndex returns the offset of the first zero byte at or after p.
func terminatorIndex(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}
