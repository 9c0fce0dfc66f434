// Package unixstring provides an FFI-friendly, growable, null-terminated
// byte string for passing to native (C-style) APIs.
//
// A UnixString owns a byte buffer that always ends in exactly one zero
// byte and contains no other zero bytes. The buffer can be viewed, without
// copying, as text, as a filesystem path, as a raw byte slice (with or
// without the terminator), or as a pointer suitable for native calls such
// as the syscall wrappers in golang.org/x/sys/unix.
//
// # Design Philosophy
//
// The package follows these principles:
//
//   - Single invariant: one terminator, at the end, and nowhere else.
//     Every fallible operation checks its input before mutating, so a
//     UnixString is never observable in an invalid state.
//   - Zero-copy views: all accessors alias the backing array. None of
//     them allocates or re-validates encoding.
//   - Explicit ownership: constructors consume their input, views borrow
//     from the buffer, and mutation invalidates previously obtained
//     views and pointers.
//   - No encoding validation: the buffer may hold arbitrary non-zero
//     bytes, including byte sequences that are not valid UTF-8. Callers
//     that require valid text must guarantee it themselves.
//
// # Creating a UnixString
//
//   - FromString: from a text string; rejects interior zero bytes.
//   - FromBytes: from a byte slice, taking ownership of it; rejects
//     interior zero bytes, accepts an existing trailing terminator.
//   - FromPath, FromOSString: from a path or native-OS string, via the
//     platform's raw-byte representation.
//   - FromTerminated: zero-copy adoption of a buffer that is already
//     null-terminated, typically one produced by a C-style API.
//   - FromPtr: copies a C string out of memory addressed by a pointer.
//
// # Obtaining views
//
//   - Bytes, BytesWithNul: the raw bytes, without and with terminator.
//   - String: the bytes as text, terminator excluded.
//   - Path: the bytes as a filesystem path, terminator excluded.
//   - Ptr, Pointer: the address of the first byte, for native callers
//     that expect a null-terminated byte pointer.
//
// All views are valid only while the owning UnixString is alive and
// unmodified. Push, PushBytes and PushFromPtr may reallocate the buffer;
// re-fetch views and pointers after any mutation.
//
// # Concurrency
//
// UnixString has value semantics and no internal synchronization. It may
// be handed off between goroutines, but concurrent mutation (or mutation
// concurrent with reads) requires external synchronization by the owner.
//
// # Usage Example
//
//	path, err := unixstring.FromString("/var/log/journal")
//	if err != nil {
//	    return err
//	}
//
//	var stat unix.Stat_t
//	if err := unix.Lstat(path.Path(), &stat); err != nil {
//	    return err
//	}
package unixstring
