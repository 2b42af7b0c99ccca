package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Sign implements Sign (§4.6): a deterministic signature over header and an
// ordered vector of messages under sk, binding pk (not sk) into the domain
// so that verification needs only the public key.
func (cs *Ciphersuite) Sign(sk fr.Element, pk []byte, header []byte, messages [][]byte) ([]byte, error) {
	if _, err := OctetsToPublicKey(pk); err != nil {
		return nil, err
	}

	msgScalars, err := cs.MessagesToScalars(messages)
	if err != nil {
		return nil, err
	}
	l := len(msgScalars)

	// 1. (Q_1, H_1, ..., H_L) = create_generators(L+1)
	generators, err := cs.Generators(uint64(l + 1))
	if err != nil {
		return nil, err
	}
	q1 := generators[0]
	h := generators[1:]

	// 2. domain = calculate_domain(PK, Q_1, (H_1, ..., H_L), header)
	domain, err := calculateDomain(cs, pk, q1, h, header)
	if err != nil {
		return nil, err
	}

	// 3. e = hash_to_scalar(serialize((SK, domain, msg_1, ..., msg_L)))
	serInputs := make([]serializeElem, 0, 2+l)
	serInputs = append(serInputs, Scalar(sk), Scalar(domain))
	for _, m := range msgScalars {
		serInputs = append(serInputs, Scalar(m))
	}
	ser, err := Serialize(serInputs...)
	if err != nil {
		return nil, err
	}
	e, err := hashToScalar(cs, ser, cs.hashToScalarDST)
	if err != nil {
		return nil, err
	}

	// 4. B = P1 + Q_1 * domain + H_1 * msg_1 + ... + H_L * msg_L
	b := msmG1(cs.P1(), append([]bls12381.G1Affine{q1}, h...), append([]fr.Element{domain}, msgScalars...))

	// 5. A = B * (1 / (SK + e))
	var denom fr.Element
	denom.Add(&sk, &e)
	if denom.IsZero() {
		return nil, errCryptoFailure("SK + e = 0")
	}
	var denomInv fr.Element
	denomInv.Inverse(&denom)

	aJac := scalarMulG1(b, denomInv)
	var a bls12381.G1Affine
	a.FromJacobian(&aJac)
	if a.IsInfinity() {
		return nil, errCryptoFailure("signature point A is identity")
	}

	// 6. return signature_to_octets(A, e)
	return signatureToOctets(a, e)
}
