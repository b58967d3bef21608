package cracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	enc := NewEncoding(2)

	for _, password := range []string{"aa", "Hi", "z9", "00", "ZZ", "aB"} {
		index, err := enc.Encode(password)
		require.NoError(t, err)

		decoded, err := enc.Decode(index)
		require.NoError(t, err)
		assert.Equal(t, password, decoded)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	enc := NewEncoding(2)
	n := enc.SearchSpace()

	for _, index := range []uint64{0, 1, 61, 62, 2054, n - 1} {
		password, err := enc.Decode(index)
		require.NoError(t, err)

		encoded, err := enc.Encode(password)
		require.NoError(t, err)
		assert.Equal(t, index, encoded)
	}
}

func TestEncodeKnownValues(t *testing.T) {
	enc := NewEncoding(2)

	// 'H' is position 33, 'i' is position 8: 33*62 + 8.
	index, err := enc.Encode("Hi")
	require.NoError(t, err)
	assert.Equal(t, uint64(2054), index)

	index, err = enc.Encode("aa")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), index)
}

func TestEncodeErrors(t *testing.T) {
	enc := NewEncoding(2)

	_, err := enc.Encode("a")
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = enc.Encode("abc")
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = enc.Encode("a!")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestDecodeOutOfRange(t *testing.T) {
	enc := NewEncoding(2)

	_, err := enc.Decode(enc.SearchSpace())
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Padding indices below 2^Q but above N are still invalid.
	_, err = enc.Decode(4095)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestQubitsNeeded(t *testing.T) {
	for length := 1; length <= 3; length++ {
		enc := NewEncoding(length)
		n := enc.SearchSpace()
		q := enc.QubitsNeeded()

		assert.GreaterOrEqual(t, uint64(1)<<q, n, "2^Q must cover the space")
		if q > 1 {
			assert.Less(t, uint64(1)<<(q-1), n, "Q must be minimal")
		}
	}

	// 62^2 = 3844 needs 12 qubits.
	assert.Equal(t, 12, NewEncoding(2).QubitsNeeded())
}
