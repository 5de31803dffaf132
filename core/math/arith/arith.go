package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

var one = big.NewInt(1)

// Exp returns xᵉ (mod p) for odd p. The exponentiation goes through
// saferith's Montgomery machinery so its timing does not depend on the
// values of x or e, only on their sizes.
func Exp(x, e, p *big.Int) *big.Int {
	pMod := saferith.ModulusFromBytes(p.Bytes())
	xNat := new(saferith.Nat).SetBig(x, x.BitLen())
	eNat := new(saferith.Nat).SetBig(e, e.BitLen())
	return new(saferith.Nat).Exp(xNat, eNat, pMod).Big()
}

// Inv returns a⁻¹ (mod p) for odd p. a must be a unit mod p.
func Inv(a, p *big.Int) *big.Int {
	pMod := saferith.ModulusFromBytes(p.Bytes())
	aNat := new(saferith.Nat).SetBig(a, a.BitLen())
	return new(saferith.Nat).ModInverse(aNat, pMod).Big()
}

// IsUnit reports whether gcd(a, m) = 1, i.e. a is invertible mod m.
func IsUnit(a, m *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, m).Cmp(one) == 0
}
