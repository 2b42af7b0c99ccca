package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/hash_to_curve"
)

// fieldHashL is the byte length hashed into each Fp element before modular
// reduction, per RFC 9380 §5.2: L = ceil((ceil(log2(p)) + k) / 8) with
// p the BLS12-381 base prime (381 bits) and k = 128 bits of security,
// giving L = ceil((381+128)/8) = 64.
const fieldHashL = 64

// hashToField implements hash_to_field specialized to m=1 (§4.2): it expands
// msg under dst to count*64 uniform octets via the ciphersuite's expand
// function and reduces each 64-octet block modulo the base field prime p.
// hashToCurve calls it with count=2.
func hashToField(cs *Ciphersuite, msg, dst []byte, count int) ([]fp.Element, error) {
	uniformBytes, err := cs.expand(msg, dst, count*fieldHashL)
	if err != nil {
		return nil, err
	}
	out := make([]fp.Element, count)
	for i := 0; i < count; i++ {
		out[i].SetBytes(uniformBytes[i*fieldHashL : (i+1)*fieldHashL])
	}
	return out, nil
}

// hashToCurve implements hash_to_curve (§4.2): two field elements are each
// mapped to the isogenous curve E' via the simplified SWU map
// (bls12381.MapToCurve1), pulled back to BLS12-381 E via the fixed 11-isogeny
// (hash_to_curve.G1Isogeny), summed, and cofactor-cleared.
func hashToCurve(cs *Ciphersuite, msg, dst []byte) (bls12381.G1Affine, error) {
	if len(dst) == 0 {
		return bls12381.G1Affine{}, errInvalidArgument("hash_to_curve: empty domain separation tag")
	}

	u, err := hashToField(cs, msg, dst, 2)
	if err != nil {
		return bls12381.G1Affine{}, err
	}

	q0 := bls12381.MapToCurve1(&u[0])
	q1 := bls12381.MapToCurve1(&u[1])
	hash_to_curve.G1Isogeny(&q0.X, &q0.Y)
	hash_to_curve.G1Isogeny(&q1.X, &q1.Y)

	var j0, j1 bls12381.G1Jac
	j0.FromAffine(&q0)
	j1.FromAffine(&q1)
	j1.AddAssign(&j0)
	j1.ClearCofactor(&j1)

	var result bls12381.G1Affine
	result.FromJacobian(&j1)
	if result.IsInfinity() {
		return bls12381.G1Affine{}, errInvalidEncoding("hash_to_curve resulted in the identity point")
	}
	return result, nil
}
