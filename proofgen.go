package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// proofInitResult holds the five commitments and the domain scalar shared
// between ProofGen's init/challenge/finalize steps (§4.8) and the honest-path
// reconstruction in ProofVerifyInit (§4.9).
type proofInitResult struct {
	abar, bbar, d, t1, t2 bls12381.G1Affine
	domain                fr.Element
}

// ProofGen implements ProofGen (§4.8): a zero-knowledge proof of knowledge of
// a signature over messages, revealing only those at disclosedIndexes.
func (cs *Ciphersuite) ProofGen(pk []byte, signature []byte, header, ph []byte, messages [][]byte, disclosedIndexes []int) ([]byte, error) {
	msgScalars, err := cs.MessagesToScalars(messages)
	if err != nil {
		return nil, err
	}

	generators, err := cs.Generators(uint64(len(messages) + 1))
	if err != nil {
		return nil, err
	}

	return cs.coreProofGen(pk, signature, generators, header, ph, msgScalars, disclosedIndexes)
}

// coreProofGen implements CoreProofGen (§4.8).
func (cs *Ciphersuite) coreProofGen(pk []byte, signature []byte, generators []bls12381.G1Affine, header, ph []byte, messages []fr.Element, disclosedIndexes []int) ([]byte, error) {
	a, e, err := octetsToSignature(signature)
	if err != nil {
		return nil, err
	}

	l := len(messages)
	r := len(disclosedIndexes)
	if r > l {
		return nil, errInvalidArgument("more disclosed indexes (%d) than messages (%d)", r, l)
	}
	u := l - r

	disclosedSet := make(map[int]bool, r)
	for _, i := range disclosedIndexes {
		if i < 0 || i >= l {
			return nil, errInvalidArgument("disclosed index %d out of range [0,%d)", i, l)
		}
		disclosedSet[i] = true
	}

	undisclosedIndexes := make([]int, 0, u)
	for i := 0; i < l; i++ {
		if !disclosedSet[i] {
			undisclosedIndexes = append(undisclosedIndexes, i)
		}
	}

	disclosedMessages := make([]fr.Element, r)
	for i, idx := range disclosedIndexes {
		disclosedMessages[i] = messages[idx]
	}
	undisclosedMessages := make([]fr.Element, u)
	for i, idx := range undisclosedIndexes {
		undisclosedMessages[i] = messages[idx]
	}

	// Procedure step 1: random_scalars = calculate_random_scalars(5+U)
	randomScalars, err := calculateRandomScalars(5 + u)
	if err != nil {
		return nil, err
	}

	init, err := cs.proofInit(pk, a, e, generators, randomScalars, header, messages, undisclosedIndexes)
	if err != nil {
		return nil, err
	}

	challenge, err := cs.proofChallengeCalculate(init, disclosedMessages, disclosedIndexes, ph)
	if err != nil {
		return nil, err
	}

	return proofFinalize(init, challenge, e, randomScalars, undisclosedMessages)
}

// proofInit implements ProofInit (§4.8/§5.3): it computes the commitments
// (Abar, Bbar, D, T1, T2) and domain that anchor both the challenge hash and
// the final response scalars.
func (cs *Ciphersuite) proofInit(pk []byte, a bls12381.G1Affine, e fr.Element, generators []bls12381.G1Affine, randomScalars []fr.Element, header []byte, messages []fr.Element, undisclosedIndexes []int) (proofInitResult, error) {
	l := len(messages)
	u := len(undisclosedIndexes)

	if len(randomScalars) != u+5 {
		return proofInitResult{}, errInvalidArgument("random_scalars length %d, expected %d", len(randomScalars), u+5)
	}
	if len(generators) != l+1 {
		return proofInitResult{}, errInvalidArgument("generators length %d, expected %d", len(generators), l+1)
	}

	r1, r2, eTilde, r1Tilde, r3Tilde := randomScalars[0], randomScalars[1], randomScalars[2], randomScalars[3], randomScalars[4]
	mTildes := randomScalars[5:]

	q1 := generators[0]
	h := generators[1:]

	domain, err := calculateDomain(cs, pk, q1, h, header)
	if err != nil {
		return proofInitResult{}, err
	}

	// B = P1 + Q_1 * domain + H_1 * msg_1 + ... + H_L * msg_L
	b := msmG1(cs.P1(), append([]bls12381.G1Affine{q1}, h...), append([]fr.Element{domain}, messages...))

	// D = B * r2
	dJac := scalarMulG1(b, r2)
	var d bls12381.G1Affine
	d.FromJacobian(&dJac)

	// Abar = A * (r1 * r2)
	var r1r2 fr.Element
	r1r2.Mul(&r1, &r2)
	abarJac := scalarMulG1(a, r1r2)
	var abar bls12381.G1Affine
	abar.FromJacobian(&abarJac)

	// Bbar = D * r1 - Abar * e
	dr1 := scalarMulG1(d, r1)
	abarE := scalarMulG1(abar, e)
	var bbarJac bls12381.G1Jac
	bbarJac.Set(&dr1)
	bbarJac.SubAssign(&abarE)
	var bbar bls12381.G1Affine
	bbar.FromJacobian(&bbarJac)

	// T1 = Abar * e~ + D * r1~
	abarETilde := scalarMulG1(abar, eTilde)
	dr1Tilde := scalarMulG1(d, r1Tilde)
	var t1Jac bls12381.G1Jac
	t1Jac.Set(&abarETilde)
	t1Jac.AddAssign(&dr1Tilde)
	var t1 bls12381.G1Affine
	t1.FromJacobian(&t1Jac)

	// T2 = D * r3~ + H_j1 * m~_j1 + ... + H_jU * m~_jU
	t2Jac := scalarMulG1(d, r3Tilde)
	for i, j := range undisclosedIndexes {
		term := scalarMulG1(h[j], mTildes[i])
		t2Jac.AddAssign(&term)
	}
	var t2 bls12381.G1Affine
	t2.FromJacobian(&t2Jac)

	return proofInitResult{abar: abar, bbar: bbar, d: d, t1: t1, t2: t2, domain: domain}, nil
}

// proofChallengeCalculate implements ProofChallengeCalculate (§4.8/§5.4): the
// Fiat-Shamir hash binding the commitments, disclosed messages, and presentation
// header into a single scalar.
func (cs *Ciphersuite) proofChallengeCalculate(init proofInitResult, disclosedMessages []fr.Element, disclosedIndexes []int, ph []byte) (fr.Element, error) {
	r := len(disclosedIndexes)
	if len(disclosedMessages) != r {
		return fr.Element{}, errInvalidArgument("disclosed messages/indexes length mismatch: %d vs %d", len(disclosedMessages), r)
	}

	cArr := make([]serializeElem, 0, 1+2*r+6)
	cArr = append(cArr, Count(uint64(r)))
	for i := 0; i < r; i++ {
		cArr = append(cArr, Count(uint64(disclosedIndexes[i])), Scalar(disclosedMessages[i]))
	}
	cArr = append(cArr, G1(init.abar), G1(init.bbar), G1(init.d), G1(init.t1), G1(init.t2), Scalar(init.domain))

	cOcts, err := Serialize(cArr...)
	if err != nil {
		return fr.Element{}, err
	}
	cOcts = append(cOcts, i2osp(len(ph), 8)...)
	cOcts = append(cOcts, ph...)

	return hashToScalar(cs, cOcts, cs.hashToScalarDST)
}

// proofFinalize implements ProofFinalize (§4.8/§5.5): it blinds e, r1, r2's
// inverse r3, and each undisclosed message with the challenge, producing the
// response scalars that make the proof a valid Schnorr-style response.
func proofFinalize(init proofInitResult, challenge, e fr.Element, randomScalars []fr.Element, undisclosedMessages []fr.Element) ([]byte, error) {
	u := len(undisclosedMessages)
	if len(randomScalars) != u+5 {
		return nil, errInvalidArgument("random_scalars length %d, expected %d", len(randomScalars), u+5)
	}
	r1, r2, eTilde, r1Tilde, r3Tilde := randomScalars[0], randomScalars[1], randomScalars[2], randomScalars[3], randomScalars[4]
	mTildes := randomScalars[5:]

	var r3 fr.Element
	r3.Inverse(&r2)

	var eHat, eChal fr.Element
	eChal.Mul(&e, &challenge)
	eHat.Add(&eTilde, &eChal)

	var r1Hat, r1Chal fr.Element
	r1Chal.Mul(&r1, &challenge)
	r1Hat.Sub(&r1Tilde, &r1Chal)

	var r3Hat, r3Chal fr.Element
	r3Chal.Mul(&r3, &challenge)
	r3Hat.Sub(&r3Tilde, &r3Chal)

	mHats := make([]fr.Element, u)
	for j := 0; j < u; j++ {
		var mChal fr.Element
		mChal.Mul(&undisclosedMessages[j], &challenge)
		mHats[j].Add(&mTildes[j], &mChal)
	}

	elems := make([]serializeElem, 0, 7+u)
	elems = append(elems, G1(init.abar), G1(init.bbar), G1(init.d), Scalar(eHat), Scalar(r1Hat), Scalar(r3Hat))
	for _, mHat := range mHats {
		elems = append(elems, Scalar(mHat))
	}
	elems = append(elems, Scalar(challenge))

	return Serialize(elems...)
}
