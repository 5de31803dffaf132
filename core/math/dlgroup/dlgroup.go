// Package dlgroup implements the (p, g) discrete-logarithm group shared by
// ElGamal key pairs: a safe prime p and a generator g of the multiplicative
// group mod p.
package dlgroup

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var ErrInvalidGroup = errors.New("dlgroup: invalid group parameters")

// Number of Miller-Rabin rounds for ProbablyPrime. Composites slip through
// with probability at most 4⁻²⁰ on top of the baseline BPSW test.
const primeChecks = 20

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Group is an immutable (p, g) pair. A private key and the public key
// derived from it share one Group by reference.
type Group struct {
	p *big.Int
	g *big.Int
}

// NewGroup wraps caller-supplied parameters. p must be an odd probable
// prime and g must satisfy 1 < g < p.
func NewGroup(p, g *big.Int) (*Group, error) {
	if p == nil || g == nil {
		return nil, ErrInvalidGroup
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, ErrInvalidGroup
	}
	if p.Bit(0) == 0 || !p.ProbablyPrime(primeChecks) {
		return nil, ErrInvalidGroup
	}
	return &Group{p: p, g: g}, nil
}

// New discovers a fresh group of the given bit size: a safe prime
// p = 2q+1 with q prime, and a uniform generator of the full order-2q
// group. A nil random selects crypto/rand.
func New(random io.Reader, bits int) (*Group, error) {
	if random == nil {
		random = cryptorand.Reader
	}
	for {
		q, err := cryptorand.Prime(random, bits-1)
		if err != nil {
			return nil, errors.WithMessage(err, "dlgroup: prime search failed")
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if !p.ProbablyPrime(primeChecks) {
			continue
		}
		for {
			a, err := cryptorand.Int(random, p)
			if err != nil {
				return nil, errors.WithMessage(err, "dlgroup: generator search failed")
			}
			if a.Cmp(two) < 0 {
				continue
			}
			// a generates the full group iff a² ≠ 1 and a^q ≠ 1 (mod p)
			if new(big.Int).Exp(a, two, p).Cmp(one) == 0 {
				continue
			}
			if new(big.Int).Exp(a, q, p).Cmp(one) == 0 {
				continue
			}
			return &Group{p: p, g: a}, nil
		}
	}
}

// P returns the prime modulus. Callers must not mutate it.
func (grp *Group) P() *big.Int { return grp.p }

// G returns the generator. Callers must not mutate it.
func (grp *Group) G() *big.Int { return grp.g }

// ByteLen is the width of one serialized group element:
// ceil(bitlen(p)/8) bytes.
func (grp *Group) ByteLen() int { return (grp.p.BitLen() + 7) / 8 }

func (grp *Group) Equal(other *Group) bool {
	return grp.p.Cmp(other.p) == 0 && grp.g.Cmp(other.g) == 0
}
