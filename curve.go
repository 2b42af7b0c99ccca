package bbs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// scalarMulG1 computes p*s in G1, returned as a Jacobian point so callers
// can accumulate a linear combination without round-tripping through affine
// coordinates at every term.
func scalarMulG1(p bls12381.G1Affine, s fr.Element) bls12381.G1Jac {
	var pj, out bls12381.G1Jac
	pj.FromAffine(&p)
	out.ScalarMultiplication(&pj, s.BigInt(new(big.Int)))
	return out
}

// scalarMulG1Jac computes p*s in G1 where p is already Jacobian.
func scalarMulG1Jac(p bls12381.G1Jac, s fr.Element) bls12381.G1Jac {
	var out bls12381.G1Jac
	out.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return out
}

// msmG1 computes the linear combination base + sum(points[i]*scalars[i]) in
// G1, affine in, affine out. It is the common shape behind B, D, T1, T2, and
// Bv throughout §4.6–§4.9.
func msmG1(base bls12381.G1Affine, points []bls12381.G1Affine, scalars []fr.Element) bls12381.G1Affine {
	var acc bls12381.G1Jac
	acc.FromAffine(&base)
	for i := range points {
		term := scalarMulG1(points[i], scalars[i])
		acc.AddAssign(&term)
	}
	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return out
}

// scalarMulG2 computes p*s in G2, affine in, Jacobian out.
func scalarMulG2(p bls12381.G2Affine, s fr.Element) bls12381.G2Jac {
	var pj, out bls12381.G2Jac
	pj.FromAffine(&p)
	out.ScalarMultiplication(&pj, s.BigInt(new(big.Int)))
	return out
}
