package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Verify implements Verify (§4.7): checks a signature over header and
// messages under pk. Returns (false, nil) for a structurally valid but
// cryptographically wrong signature, and (false, err) for malformed input —
// callers that only care whether the signature holds should treat both as
// rejection.
func (cs *Ciphersuite) Verify(pk []byte, signature []byte, header []byte, messages [][]byte) (bool, error) {
	w, err := OctetsToPublicKey(pk)
	if err != nil {
		return false, err
	}
	a, e, err := octetsToSignature(signature)
	if err != nil {
		return false, err
	}

	msgScalars, err := cs.MessagesToScalars(messages)
	if err != nil {
		return false, err
	}
	l := len(msgScalars)

	generators, err := cs.Generators(uint64(l + 1))
	if err != nil {
		return false, err
	}
	q1 := generators[0]
	h := generators[1:]

	domain, err := calculateDomain(cs, pk, q1, h, header)
	if err != nil {
		return false, err
	}

	return coreVerify(cs.P1(), w, a, e, q1, h, domain, msgScalars)
}

// coreVerify implements the pairing check of core_verify (§4.7): B is
// reconstructed from the public commitments and the check
// e(A, W + BP2*e) * e(B, -BP2) = 1 is evaluated as a single multi-pairing
// over both point pairs, rather than two Pair calls multiplied together.
func coreVerify(p1 bls12381.G1Affine, w bls12381.G2Affine, a bls12381.G1Affine, e fr.Element, q1 bls12381.G1Affine, h []bls12381.G1Affine, domain fr.Element, messages []fr.Element) (bool, error) {
	b := msmG1(p1, append([]bls12381.G1Affine{q1}, h...), append([]fr.Element{domain}, messages...))

	var wPlusE bls12381.G2Jac
	wJac := new(bls12381.G2Jac)
	wJac.FromAffine(&w)
	ePart := scalarMulG2(g2Gen, e)
	wPlusE.Set(wJac)
	wPlusE.AddAssign(&ePart)
	var wPlusEAffine bls12381.G2Affine
	wPlusEAffine.FromJacobian(&wPlusE)

	var negBP2 bls12381.G2Affine
	negBP2.Neg(&g2Gen)

	result, err := bls12381.Pair([]bls12381.G1Affine{a, b}, []bls12381.G2Affine{wPlusEAffine, negBP2})
	if err != nil {
		return false, errCryptoFailure("pairing: %v", err)
	}

	return result.IsOne(), nil
}
