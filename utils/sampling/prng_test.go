package sampling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

	t.Run("SameKeySameStream", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		bufA, bufB := make([]byte, 512), make([]byte, 512)
		_, err = a.Read(bufA)
		require.NoError(t, err)
		_, err = b.Read(bufB)
		require.NoError(t, err)

		require.True(t, bytes.Equal(bufA, bufB))
	})

	t.Run("DifferentKeysDiverge", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG([]byte("other key"))
		require.NoError(t, err)

		bufA, bufB := make([]byte, 512), make([]byte, 512)
		_, err = a.Read(bufA)
		require.NoError(t, err)
		_, err = b.Read(bufB)
		require.NoError(t, err)

		require.False(t, bytes.Equal(bufA, bufB))
	})

	t.Run("ResetReplaysStream", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		first, second := make([]byte, 512), make([]byte, 512)
		_, err = prng.Read(first)
		require.NoError(t, err)

		prng.Reset()
		_, err = prng.Read(second)
		require.NoError(t, err)

		require.True(t, bytes.Equal(first, second))
	})

	t.Run("KeyRoundTrip", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		require.Equal(t, key, prng.Key())
	})

	t.Run("Float64InRange", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		for i := 0; i < 1024; i++ {
			f := prng.Float64(-2, 3)
			require.GreaterOrEqual(t, f, -2.0)
			require.Less(t, f, 3.0)
		}
	})
}
