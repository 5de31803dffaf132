package bcryptpbkdf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors shared with the OpenBSD regression suite.
func TestKeyVectors(t *testing.T) {
	cases := []struct {
		name       string
		passphrase string
		salt       string
		rounds     int
		keyLen     int
		want       string
	}{
		{
			name:       "reference 32 bytes",
			passphrase: "password",
			salt:       "salt",
			rounds:     4,
			keyLen:     32,
			want: "5bbf0cc293587f1c3635555c27796598" +
				"d47e579071bf427e9d8fbe842aba34d9",
		},
		{
			name:       "short output",
			passphrase: "password",
			salt:       "salt",
			rounds:     4,
			keyLen:     8,
			want:       "5bbf0cc293587f1c",
		},
		{
			name:       "two blocks interleaved",
			passphrase: "password",
			salt:       "salt",
			rounds:     8,
			keyLen:     64,
			want: "e1367ec5151a33faac4cc1c144cd23fa" +
				"15d5548493ecc99b9b5d9c0d3b27bec7" +
				"6227ea66088b849b20ab7aa478010246" +
				"e74bba51723fefa9f9474d6508845e8d",
		},
		{
			name:       "alternate passphrase",
			passphrase: "alternate password",
			salt:       "salt",
			rounds:     4,
			keyLen:     32,
			want: "2b4afc629e62d946d1ee49b1f8318771" +
				"1eaa88b9f3cb62791c09297ca1c64a9a",
		},
		{
			name:       "alternate salt",
			passphrase: "password",
			salt:       "other salt",
			rounds:     4,
			keyLen:     32,
			want: "444e5a47c031b3557b89ae5ff22d287e" +
				"4a11cca3dc6a185f9cb43fd4aa17cf13",
		},
		{
			name:       "single round odd length",
			passphrase: "passphrase",
			salt:       "saltsaltsaltsalt",
			rounds:     1,
			keyLen:     48,
			want: "6498cde12a8e7664d44d8e99b85699eb" +
				"25d21a19e6cac78673f221476f1dff88" +
				"f065800676e18bd30ef1618e7a428ddf",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := Key([]byte(tc.passphrase), []byte(tc.salt), tc.rounds, tc.keyLen)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hex.EncodeToString(key))
		})
	}
}

func TestKeyLengthMatchesRequest(t *testing.T) {
	for _, keyLen := range []int{1, 7, 32, 33, 100, MaxKeyLength} {
		key, err := Key([]byte("pw"), []byte("salt"), 1, keyLen)
		require.NoError(t, err)
		assert.Len(t, key, keyLen)
	}
}

func TestKeyDeterminism(t *testing.T) {
	a, err := Key([]byte("pw"), []byte("salt"), 2, 40)
	require.NoError(t, err)
	b, err := Key([]byte("pw"), []byte("salt"), 2, 40)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidation(t *testing.T) {
	_, err := Key([]byte("pw"), []byte("salt"), 0, 32)
	assert.ErrorIs(t, err, ErrRounds)
	_, err = Key([]byte("pw"), []byte("salt"), -1, 32)
	assert.ErrorIs(t, err, ErrRounds)

	_, err = Key([]byte("pw"), []byte("salt"), 1, 0)
	assert.ErrorIs(t, err, ErrKeyLength)
	_, err = Key([]byte("pw"), []byte("salt"), 1, MaxKeyLength+1)
	assert.ErrorIs(t, err, ErrKeyLength)
}
