package bbs

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// hashToScalar implements hash_to_scalar (§4.3): expand msg under dst to 48
// uniform octets and reduce modulo r. The draft treats a zero result as
// INVALID; since that happens with negligible probability, callers surface
// it as a CryptoFailure rather than retrying.
func hashToScalar(cs *Ciphersuite, msg, dst []byte) (fr.Element, error) {
	uniformBytes, err := cs.expand(msg, dst, cs.expandLen)
	if err != nil {
		return fr.Element{}, err
	}
	var s fr.Element
	s.SetBytes(uniformBytes)
	if s.IsZero() {
		return fr.Element{}, errCryptoFailure("hash_to_scalar produced zero")
	}
	return s, nil
}

// MessagesToScalars maps each message to an Fr scalar via hash_to_scalar
// under the ciphersuite's map_msg DST, per §4.6.
func (cs *Ciphersuite) MessagesToScalars(messages [][]byte) ([]fr.Element, error) {
	out := make([]fr.Element, len(messages))
	for i, m := range messages {
		s, err := hashToScalar(cs, m, cs.mapMessageDST)
		if err != nil {
			return nil, errCryptoFailure("message %d: %v", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// calculateDomain implements calculate_domain (§4.6 step 2): it binds the
// public key, the generators, the header, and the api_id into a single
// scalar used as the coefficient of Q1 in B.
func calculateDomain(cs *Ciphersuite, pk []byte, q1 bls12381.G1Affine, h []bls12381.G1Affine, header []byte) (fr.Element, error) {
	if len(pk) != octetPointG2Len {
		return fr.Element{}, errInvalidArgument("public key length %d, expected %d", len(pk), octetPointG2Len)
	}
	if q1.IsInfinity() {
		return fr.Element{}, errInvalidEncoding("Q1 generator is identity")
	}
	for i, hp := range h {
		if hp.IsInfinity() {
			return fr.Element{}, errInvalidEncoding("H generator %d is identity", i)
		}
	}

	domArray := make([]serializeElem, 0, 2+len(h))
	domArray = append(domArray, Count(uint64(len(h))), G1(q1))
	for _, hp := range h {
		domArray = append(domArray, G1(hp))
	}

	domOcts, err := Serialize(domArray...)
	if err != nil {
		return fr.Element{}, err
	}
	domOcts = append(domOcts, cs.apiID...)

	domInput := concat(pk, domOcts, i2osp(len(header), 8), header)

	return hashToScalar(cs, domInput, cs.hashToScalarDST)
}
