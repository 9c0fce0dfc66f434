//go:build unix

package unixstring

// nativeBytes converts a path or native-OS string to its raw byte
// representation. On unix platforms both are arbitrary byte sequences
// already, so the conversion is the identity and never fails.
func nativeBytes(s string) ([]byte, error) {
	return []byte(s), nil
}
