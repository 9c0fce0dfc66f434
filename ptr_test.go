package unixstring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/unixstring"
)

func TestFromPtr(t *testing.T) {
	// A fixed-size buffer filled by a native call: content, terminator,
	// then trailing garbage past the terminator.
	buf := []byte{'/', 't', 'm', 'p', 0, 'x', 'x'}

	us := unixstring.FromPtr(&buf[0])

	require.NoError(t, us.Validate())
	require.Equal(t, "/tmp", us.String())
	require.Equal(t, []byte{'/', 't', 'm', 'p', 0}, us.BytesWithNul())
}

func TestFromPtr_CopiesOutOfSource(t *testing.T) {
	buf := []byte{'a', 'b', 0}

	us := unixstring.FromPtr(&buf[0])
	buf[0] = 'z'

	require.Equal(t, "ab", us.String())
}

func TestFromPtr_EmptyString(t *testing.T) {
	buf := []byte{0}

	us := unixstring.FromPtr(&buf[0])

	require.True(t, us.IsEmpty())
	require.Equal(t, []byte{0}, us.BytesWithNul())
}

func TestPushFromPtr(t *testing.T) {
	us, err := unixstring.FromString("/home")
	require.NoError(t, err)

	suffix := []byte{'/', 'u', 's', 'e', 'r', 0}
	require.NoError(t, us.PushFromPtr(&suffix[0]))

	require.Equal(t, "/home/user", us.String())
	require.NoError(t, us.Validate())
}
