package bbs

import (
	"crypto/rand"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	_, _, _, g2Gen = bls12381.Generators()
)

const maxKeyInfoLength = 65535

// KeyGen implements KeyGen (§4.5): derives a secret key from key material,
// optional key_info, and an optional DST (defaulting to
// ciphersuite_id || "KEYGEN_DST_"). Key material must be at least 32 bytes.
func (cs *Ciphersuite) KeyGen(keyMaterial, keyInfo, keyDST []byte) (fr.Element, error) {
	if len(keyMaterial) < 32 {
		return fr.Element{}, errInvalidArgument("key material must be at least 32 bytes, got %d", len(keyMaterial))
	}
	if len(keyInfo) > maxKeyInfoLength {
		return fr.Element{}, errInvalidArgument("key_info must be at most %d bytes, got %d", maxKeyInfoLength, len(keyInfo))
	}
	if keyDST == nil {
		keyDST = []byte(cs.id + "KEYGEN_DST_")
	}

	deriveInput := concat(keyMaterial, i2osp(len(keyInfo), 2), keyInfo)

	sk, err := hashToScalar(cs, deriveInput, keyDST)
	if err != nil {
		return fr.Element{}, err
	}
	return sk, nil
}

// GenerateKeyPair draws fresh CSPRNG key material and returns the resulting
// (SK, PK) pair, for hosts that don't want to manage IKM themselves.
func (cs *Ciphersuite) GenerateKeyPair(keyInfo []byte) (fr.Element, []byte, error) {
	ikm := make([]byte, 32)
	if _, err := rand.Read(ikm); err != nil {
		return fr.Element{}, nil, errCryptoFailure("reading key material: %v", err)
	}
	sk, err := cs.KeyGen(ikm, keyInfo, nil)
	if err != nil {
		return fr.Element{}, nil, err
	}
	pk, err := SkToPk(sk)
	if err != nil {
		return fr.Element{}, nil, err
	}
	return sk, pk, nil
}

// SkToPk implements SkToPk (§4.5): PK = point_to_octets_g2(SK * BP2).
func SkToPk(sk fr.Element) ([]byte, error) {
	var pk bls12381.G2Affine
	var skInt big.Int
	sk.BigInt(&skInt)
	pk.ScalarMultiplication(&g2Gen, &skInt)
	if pk.IsInfinity() {
		return nil, errCryptoFailure("public key derived to identity")
	}
	return pointToOctetsG2(pk), nil
}
