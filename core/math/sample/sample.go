// Package sample draws the random integers the public-key operations
// consume. Every function takes an explicit io.Reader so callers (and
// tests) control the randomness; a nil reader selects crypto/rand.
package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/math/arith"
)

var two = big.NewInt(2)

// Unit returns a uniform element of [1, m-1] that is coprime to m.
// Candidates are drawn and rejected until one is a unit; the loop has no
// iteration cap. With m = p-1 this is the ephemeral-exponent draw used by
// ElGamal encryption and signing, which needs k invertible mod p-1.
func Unit(random io.Reader, m *big.Int) (*big.Int, error) {
	if random == nil {
		random = cryptorand.Reader
	}
	for {
		u, err := cryptorand.Int(random, m)
		if err != nil {
			return nil, errors.WithMessage(err, "sample: failed to read randomness")
		}
		if u.Sign() == 0 {
			continue
		}
		if arith.IsUnit(u, m) {
			return u, nil
		}
	}
}

// Exponent returns a uniform integer in [2, p-2], the range of an ElGamal
// secret exponent.
func Exponent(random io.Reader, p *big.Int) (*big.Int, error) {
	if random == nil {
		random = cryptorand.Reader
	}
	bound := new(big.Int).Sub(p, big.NewInt(3))
	x, err := cryptorand.Int(random, bound)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read randomness")
	}
	return x.Add(x, two), nil
}
