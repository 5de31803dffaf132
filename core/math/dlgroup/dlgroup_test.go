package dlgroup

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscoversSafePrimeGroup(t *testing.T) {
	grp, err := New(nil, 24)
	require.NoError(t, err)

	p := grp.P()
	assert.Equal(t, 24, p.BitLen())
	assert.True(t, p.ProbablyPrime(20))

	q := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	assert.True(t, q.ProbablyPrime(20), "(p-1)/2 must be prime")

	// generator of the full order-2q group
	g := grp.G()
	one := big.NewInt(1)
	assert.NotZero(t, new(big.Int).Exp(g, big.NewInt(2), p).Cmp(one))
	assert.NotZero(t, new(big.Int).Exp(g, q, p).Cmp(one))

	assert.Equal(t, 3, grp.ByteLen())
}

func TestNewGroupValidation(t *testing.T) {
	p := big.NewInt(227)

	grp, err := NewGroup(p, big.NewInt(2))
	require.NoError(t, err)
	assert.True(t, grp.Equal(grp))
	assert.Equal(t, 1, grp.ByteLen())

	_, err = NewGroup(nil, big.NewInt(2))
	assert.ErrorIs(t, err, ErrInvalidGroup)
	_, err = NewGroup(p, nil)
	assert.ErrorIs(t, err, ErrInvalidGroup)
	_, err = NewGroup(p, big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidGroup)
	_, err = NewGroup(p, big.NewInt(227))
	assert.ErrorIs(t, err, ErrInvalidGroup)
	_, err = NewGroup(big.NewInt(225), big.NewInt(2)) // composite
	assert.ErrorIs(t, err, ErrInvalidGroup)
	_, err = NewGroup(big.NewInt(226), big.NewInt(3)) // even
	assert.ErrorIs(t, err, ErrInvalidGroup)
}

func TestEqual(t *testing.T) {
	a, err := NewGroup(big.NewInt(227), big.NewInt(2))
	require.NoError(t, err)
	b, err := NewGroup(big.NewInt(227), big.NewInt(2))
	require.NoError(t, err)
	c, err := NewGroup(big.NewInt(227), big.NewInt(5))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
