//go:build !unix

package unixstring

// nativeBytes fails on platforms without a defined raw-byte encoding for
// paths and native strings. Path and native-OS construction is only
// supported on unix platforms.
func nativeBytes(_ string) ([]byte, error) {
	return nil, ErrUnsupportedEncoding
}
