package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// decodedProof is the deserialized form of a proof octet string, per
// octets_to_proof (§4.9/§6.3).
type decodedProof struct {
	abar, bbar, d      bls12381.G1Affine
	eHat, r1Hat, r3Hat fr.Element
	commitments        []fr.Element
	challenge          fr.Element
}

// ProofVerify implements ProofVerify (§4.9): it checks a proof over
// disclosedMessages at disclosedIndexes against pk, header, and ph.
func (cs *Ciphersuite) ProofVerify(pk []byte, proof []byte, header, ph []byte, disclosedMessages [][]byte, disclosedIndexes []int) (bool, error) {
	const proofLenFloor = 3*octetPointG1Len + 4*octetScalarLength
	if len(proof) < proofLenFloor {
		return false, errInvalidEncoding("proof too short: %d bytes", len(proof))
	}
	u := (len(proof) - proofLenFloor) / octetScalarLength
	r := len(disclosedIndexes)

	msgScalars, err := cs.MessagesToScalars(disclosedMessages)
	if err != nil {
		return false, err
	}

	generators, err := cs.Generators(uint64(u + r + 1))
	if err != nil {
		return false, err
	}

	return cs.coreProofVerify(pk, proof, generators, header, ph, msgScalars, disclosedIndexes)
}

// coreProofVerify implements CoreProofVerify (§4.9): it recomputes the
// challenge on the verifier's reconstructed commitments and, only if that
// matches, runs the pairing check.
func (cs *Ciphersuite) coreProofVerify(pk []byte, proofOctets []byte, generators []bls12381.G1Affine, header, ph []byte, disclosedMessages []fr.Element, disclosedIndexes []int) (bool, error) {
	p, err := octetsToProof(proofOctets)
	if err != nil {
		return false, err
	}

	w, err := OctetsToPublicKey(pk)
	if err != nil {
		return false, err
	}

	init, err := cs.proofVerifyInit(pk, p, generators, header, disclosedMessages, disclosedIndexes)
	if err != nil {
		return false, err
	}

	challenge, err := cs.proofChallengeCalculate(init, disclosedMessages, disclosedIndexes, ph)
	if err != nil {
		return false, err
	}

	if !challenge.Equal(&p.challenge) {
		return false, nil
	}

	return verifyProofPairing(p.abar, w, p.bbar)
}

// proofVerifyInit implements ProofVerifyInit (§4.9/§5.6): it reconstructs T1
// and T2 — the same commitments the prover built blind, now from the
// verifier's disclosed messages and the proof's response scalars — so that
// proofChallengeCalculate recomputes the same challenge only if the proof is
// internally consistent.
func (cs *Ciphersuite) proofVerifyInit(pk []byte, p decodedProof, generators []bls12381.G1Affine, header []byte, disclosedMessages []fr.Element, disclosedIndexes []int) (proofInitResult, error) {
	u := len(p.commitments)
	r := len(disclosedIndexes)
	l := r + u

	disclosedSet := make(map[int]bool, r)
	for _, i := range disclosedIndexes {
		if i < 0 || i >= l {
			return proofInitResult{}, errInvalidArgument("disclosed index %d out of range [0,%d)", i, l)
		}
		disclosedSet[i] = true
	}
	if len(disclosedMessages) != r {
		return proofInitResult{}, errInvalidArgument("disclosed messages length mismatch: %d vs %d", len(disclosedMessages), r)
	}
	if len(generators) != l+1 {
		return proofInitResult{}, errInvalidArgument("generators length %d, expected %d", len(generators), l+1)
	}

	q1 := generators[0]
	h := generators[1:]

	domain, err := calculateDomain(cs, pk, q1, h, header)
	if err != nil {
		return proofInitResult{}, err
	}

	// T1 = Bbar * c + Abar * e^ + D * r1^
	t1Jac := scalarMulG1(p.bbar, p.challenge)
	abarEHat := scalarMulG1(p.abar, p.eHat)
	t1Jac.AddAssign(&abarEHat)
	dr1Hat := scalarMulG1(p.d, p.r1Hat)
	t1Jac.AddAssign(&dr1Hat)
	var t1 bls12381.G1Affine
	t1.FromJacobian(&t1Jac)

	// Bv = P1 + Q_1 * domain + H_i1 * msg_i1 + ... + H_iR * msg_iR
	bvPoints := make([]bls12381.G1Affine, 0, r+1)
	bvScalars := make([]fr.Element, 0, r+1)
	bvPoints = append(bvPoints, q1)
	bvScalars = append(bvScalars, domain)
	for i, idx := range disclosedIndexes {
		bvPoints = append(bvPoints, h[idx])
		bvScalars = append(bvScalars, disclosedMessages[i])
	}
	bv := msmG1(cs.P1(), bvPoints, bvScalars)

	// T2 = Bv * c + D * r3^ + H_j1 * m^_j1 + ... + H_jU * m^_jU
	t2Jac := scalarMulG1(bv, p.challenge)
	dr3Hat := scalarMulG1(p.d, p.r3Hat)
	t2Jac.AddAssign(&dr3Hat)

	undisclosedIndexes := make([]int, 0, u)
	for i := 0; i < l; i++ {
		if !disclosedSet[i] {
			undisclosedIndexes = append(undisclosedIndexes, i)
		}
	}
	for i, j := range undisclosedIndexes {
		term := scalarMulG1(h[j], p.commitments[i])
		t2Jac.AddAssign(&term)
	}
	var t2 bls12381.G1Affine
	t2.FromJacobian(&t2Jac)

	return proofInitResult{abar: p.abar, bbar: p.bbar, d: p.d, t1: t1, t2: t2, domain: domain}, nil
}

// octetsToProof implements octets_to_proof (§4.9/§6.3): 3 fixed G1 points
// followed by 3+U+1 scalars (e^, r1^, r3^, U undisclosed-message commitments,
// and the challenge).
func octetsToProof(proofOctets []byte) (decodedProof, error) {
	const minLen = 3*octetPointG1Len + 4*octetScalarLength
	if len(proofOctets) < minLen {
		return decodedProof{}, errInvalidEncoding("proof octets too short: %d bytes", len(proofOctets))
	}
	remaining := len(proofOctets) - minLen
	if remaining%octetScalarLength != 0 {
		return decodedProof{}, errInvalidEncoding("proof octets length %d misaligned", len(proofOctets))
	}
	u := remaining / octetScalarLength

	off := 0
	nextPoint := func(name string) (bls12381.G1Affine, error) {
		pt, err := octetsToPointG1(proofOctets[off : off+octetPointG1Len])
		off += octetPointG1Len
		if err != nil {
			return bls12381.G1Affine{}, errInvalidEncoding("proof %s: %v", name, err)
		}
		if pt.IsInfinity() {
			return bls12381.G1Affine{}, errInvalidEncoding("proof %s is identity", name)
		}
		return pt, nil
	}
	nextScalar := func(name string) (fr.Element, error) {
		s, err := decodeScalarNonzeroRange(proofOctets[off : off+octetScalarLength])
		off += octetScalarLength
		if err != nil {
			return fr.Element{}, errInvalidEncoding("proof %s: %v", name, err)
		}
		return s, nil
	}

	var p decodedProof
	var err error
	if p.abar, err = nextPoint("Abar"); err != nil {
		return decodedProof{}, err
	}
	if p.bbar, err = nextPoint("Bbar"); err != nil {
		return decodedProof{}, err
	}
	if p.d, err = nextPoint("D"); err != nil {
		return decodedProof{}, err
	}
	if p.eHat, err = nextScalar("e^"); err != nil {
		return decodedProof{}, err
	}
	if p.r1Hat, err = nextScalar("r1^"); err != nil {
		return decodedProof{}, err
	}
	if p.r3Hat, err = nextScalar("r3^"); err != nil {
		return decodedProof{}, err
	}
	p.commitments = make([]fr.Element, u)
	for i := 0; i < u; i++ {
		if p.commitments[i], err = nextScalar("commitment"); err != nil {
			return decodedProof{}, err
		}
	}
	if p.challenge, err = nextScalar("challenge"); err != nil {
		return decodedProof{}, err
	}

	return p, nil
}

// verifyProofPairing checks e(Abar, W) = e(Bbar, BP2), i.e.
// e(Abar, W) * e(Bbar, -BP2) = 1, evaluated as one multi-pairing call.
func verifyProofPairing(abar bls12381.G1Affine, w bls12381.G2Affine, bbar bls12381.G1Affine) (bool, error) {
	var negG2Gen bls12381.G2Affine
	negG2Gen.Neg(&g2Gen)

	result, err := bls12381.Pair([]bls12381.G1Affine{abar, bbar}, []bls12381.G2Affine{w, negG2Gen})
	if err != nil {
		return false, errCryptoFailure("pairing: %v", err)
	}
	return result.IsOne(), nil
}
