package unixstring

import "unsafe"

// Bytes returns the buffer's content without the terminator.
//
// The slice aliases the backing array and must be treated as read-only;
// it is valid only until the next mutation of the UnixString.
func (us *UnixString) Bytes() []byte {
	return us.inner[:len(us.inner)-1]
}

// BytesWithNul returns the full buffer including the trailing
// terminator, suitable for handing to native callers that expect a
// null-terminated byte region. Same aliasing contract as Bytes.
func (us *UnixString) BytesWithNul() []byte {
	return us.inner
}

// String returns the buffer's content, terminator excluded, as text.
//
// The conversion is zero-copy: the returned string shares the buffer's
// memory and is valid only until the next mutation of the UnixString.
// No encoding validation is performed; the bytes are returned as-is.
func (us *UnixString) String() string {
	return asString(us.Bytes())
}

// Path returns the buffer's content, terminator excluded, as a
// filesystem path under the platform's path encoding rules. Zero-copy,
// with the same validity contract as String.
func (us *UnixString) Path() string {
	return asString(us.Bytes())
}

// Ptr returns the address of the buffer's first byte. The pointed-to
// region is null-terminated, which is the form native string consumers
// such as the golang.org/x/sys/unix syscall wrappers expect.
//
// The pointer is read-only and stays valid exactly as long as the
// UnixString is alive and unmodified; any mutation may reallocate the
// buffer and the pointer must then be re-fetched.
func (us *UnixString) Ptr() *byte {
	return &us.inner[0]
}

// Pointer returns Ptr as an unsafe.Pointer, for raw syscall and cgo
// argument positions.
func (us *UnixString) Pointer() unsafe.Pointer {
	return unsafe.Pointer(&us.inner[0])
}

// Len returns the content length, terminator excluded.
func (us *UnixString) Len() int {
	return len(us.inner) - 1
}

// LenWithNul returns the buffer length including the terminator.
// This is the length of the region addressed by Ptr.
func (us *UnixString) LenWithNul() int {
	return len(us.inner)
}

// IsEmpty reports whether the buffer holds no content bytes.
func (us *UnixString) IsEmpty() bool {
	return len(us.inner) == 1
}

// asString reinterprets b as a string without copying. The bytes backing
// b must not be mutated while the returned string is in use.
func asString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
