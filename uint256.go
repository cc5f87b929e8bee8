package num

import "github.com/holiman/uint256"

// U256 and uint256.Int share a limb layout: four uint64s, least significant
// first. Conversions in either direction are a copy.

// U256FromUint256 converts a github.com/holiman/uint256 value. A nil v returns
// zero.
func U256FromUint256(v *uint256.Int) U256 {
	if v == nil {
		return U256{}
	}
	return U256{n: [u256Limbs]uint64(*v)}
}

// AsUint256 returns u as a newly allocated github.com/holiman/uint256 value.
func (u U256) AsUint256() *uint256.Int {
	v := uint256.Int(u.n)
	return &v
}

// IntoUint256 overwrites v with u.
func (u U256) IntoUint256(v *uint256.Int) {
	*v = uint256.Int(u.n)
}
