package bbs

import (
	"encoding/binary"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// i2osp encodes val as a big-endian octet string of the given length. The
// spec's i2osp fails on overflow; this one does not check: callers here only
// ever pass values that fit (lengths and counts), and a value too wide for
// length octets keeps only its low-order octets.
func i2osp(val, length int) []byte {
	out := make([]byte, length)
	switch length {
	case 1:
		out[0] = byte(val)
	case 2:
		binary.BigEndian.PutUint16(out, uint16(val))
	case 4:
		binary.BigEndian.PutUint32(out, uint32(val))
	case 8:
		binary.BigEndian.PutUint64(out, uint64(val))
	default:
		for i := length - 1; i >= 0 && val != 0; i-- {
			out[i] = byte(val)
			val >>= 8
		}
	}
	return out
}

// os2ip is the inverse of i2osp: the big-endian integer value of an octet
// string.
func os2ip(o []byte) *big.Int {
	return new(big.Int).SetBytes(o)
}

func pointToOctetsG1(p bls12381.G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

func pointToOctetsG2(p bls12381.G2Affine) []byte {
	b := p.Bytes()
	return b[:]
}

func octetsToPointG1(o []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if len(o) != octetPointG1Len {
		return p, errInvalidEncoding("G1 point length %d, expected %d", len(o), octetPointG1Len)
	}
	if _, err := p.SetBytes(o); err != nil {
		return bls12381.G1Affine{}, errInvalidEncoding("cannot decode G1 point: %v", err)
	}
	return p, nil
}

func octetsToPointG2(o []byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if len(o) != octetPointG2Len {
		return p, errInvalidEncoding("G2 point length %d, expected %d", len(o), octetPointG2Len)
	}
	if _, err := p.SetBytes(o); err != nil {
		return bls12381.G2Affine{}, errInvalidEncoding("cannot decode G2 point: %v", err)
	}
	return p, nil
}

// OctetsToPublicKey decodes and validates a BBS public key, per §4.5.
// Implements octets_to_pub_key: the point must decode, land in the
// prime-order subgroup, and not be the identity.
func OctetsToPublicKey(pk []byte) (bls12381.G2Affine, error) {
	w, err := octetsToPointG2(pk)
	if err != nil {
		return bls12381.G2Affine{}, err
	}
	if !w.IsInSubGroup() {
		return bls12381.G2Affine{}, errInvalidEncoding("public key not in prime-order subgroup")
	}
	if w.IsInfinity() {
		return bls12381.G2Affine{}, errInvalidEncoding("public key is identity element")
	}
	return w, nil
}

// serializeElem is implemented by every type Serialize accepts, letting call
// sites build a fixed-shape []serializeElem instead of relying on a type
// switch over interface{} at every call site. G1Affine/G2Affine/fr.Element
// implement it via the wrapper types below; plain integers use Count.
type serializeElem interface {
	serializeBytes() ([]byte, error)
}

type g1Elem struct{ p bls12381.G1Affine }
type g2Elem struct{ p bls12381.G2Affine }
type frElem struct{ s fr.Element }
type countElem uint64

func (e g1Elem) serializeBytes() ([]byte, error) {
	if e.p.IsInfinity() {
		return nil, errInvalidEncoding("cannot serialize identity G1 point")
	}
	return pointToOctetsG1(e.p), nil
}

func (e g2Elem) serializeBytes() ([]byte, error) {
	if e.p.IsInfinity() {
		return nil, errInvalidEncoding("cannot serialize identity G2 point")
	}
	return pointToOctetsG2(e.p), nil
}

func (e frElem) serializeBytes() ([]byte, error) {
	b := e.s.Bytes()
	return b[:], nil
}

func (e countElem) serializeBytes() ([]byte, error) {
	return i2osp(int(e), 8), nil
}

// G1 wraps a G1 point for use in a Serialize call.
func G1(p bls12381.G1Affine) serializeElem { return g1Elem{p} }

// G2 wraps a G2 point for use in a Serialize call.
func G2(p bls12381.G2Affine) serializeElem { return g2Elem{p} }

// Scalar wraps an Fr element for use in a Serialize call.
func Scalar(s fr.Element) serializeElem { return frElem{s} }

// Count wraps a small non-negative integer (a length or index) for use in a
// Serialize call; it is always encoded as 8 big-endian octets.
func Count(n uint64) serializeElem { return countElem(n) }

// Serialize implements serialize from §4.1: the concatenation of the octet
// encoding of each element, where G1/G2 points map to their Zcash-compressed
// form, scalars to 32 big-endian octets, and counts to 8 big-endian octets.
func Serialize(elems ...serializeElem) ([]byte, error) {
	out := make([]byte, 0, len(elems)*octetPointG1Len)
	for i, el := range elems {
		b, err := el.serializeBytes()
		if err != nil {
			return nil, errInvalidEncoding("serialize element %d: %v", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// signatureToOctets encodes (A, e) per §4.6 step 7 / wire format §6.2.
func signatureToOctets(a bls12381.G1Affine, e fr.Element) ([]byte, error) {
	return Serialize(G1(a), Scalar(e))
}

// octetsToSignature decodes and structurally validates an 80-octet
// signature, per §4.7 and §4.10's signature_valid.
func octetsToSignature(sig []byte) (bls12381.G1Affine, fr.Element, error) {
	const want = octetPointG1Len + octetScalarLength
	if len(sig) != want {
		return bls12381.G1Affine{}, fr.Element{}, errInvalidEncoding("signature length %d, expected %d", len(sig), want)
	}

	a, err := octetsToPointG1(sig[:octetPointG1Len])
	if err != nil {
		return bls12381.G1Affine{}, fr.Element{}, err
	}
	if a.IsInfinity() {
		return bls12381.G1Affine{}, fr.Element{}, errInvalidEncoding("signature point A is identity")
	}

	e, err := decodeScalarNonzeroRange(sig[octetPointG1Len:want])
	if err != nil {
		return bls12381.G1Affine{}, fr.Element{}, err
	}

	return a, e, nil
}

// decodeScalarNonzeroRange decodes 32 big-endian octets into an Fr element,
// requiring 0 < s < r. fr.Element.SetBytes silently reduces mod r, so we
// additionally require the raw octets already represent a value below r by
// round-tripping through the modulus check.
func decodeScalarNonzeroRange(b []byte) (fr.Element, error) {
	if len(b) != octetScalarLength {
		return fr.Element{}, errInvalidEncoding("scalar length %d, expected %d", len(b), octetScalarLength)
	}
	raw := os2ip(b)
	if raw.Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, errInvalidEncoding("scalar value >= r")
	}
	var s fr.Element
	s.SetBigInt(raw)
	if s.IsZero() {
		return fr.Element{}, errInvalidEncoding("scalar value is zero")
	}
	return s, nil
}
