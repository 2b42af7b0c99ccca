package bbs

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// expandFn produces lenInBytes pseudorandom octets from msg under dst, per
// one of the two expand_message variants in RFC 9380 §5.4.
type expandFn func(msg, dst []byte, lenInBytes int) ([]byte, error)

// Ciphersuite is an immutable parameter set identifying a BBS variant, plus
// the mutable, monotonically-extended generator cache associated with it.
// The zero value is not usable; obtain one via SHA256 or SHAKE256.
type Ciphersuite struct {
	name   string
	id     string // ciphersuite_id
	apiID  []byte // ciphersuite_id || "H2G_HM2S_"
	expand expandFn

	seedDST            []byte
	generatorDST       []byte
	generatorSeed      []byte
	hashToScalarDST    []byte
	mapMessageDST      []byte
	expandLen          int
	hashToCurveSuiteID []byte // not set by newCiphersuite and not read by hashToCurve

	p1 bls12381.G1Affine

	mu         sync.Mutex
	generators []bls12381.G1Affine
	v          []byte // rolling expand state, §4.4
}

const (
	octetScalarLength = 32
	octetPointG1Len   = 48
	octetPointG2Len   = 96
)

// SHA256 returns the BLS12-381-SHA-256 ciphersuite descriptor
// (BBS_BLS12381G1_XMD:SHA-256_SSWU_RO_H2G_HM2S_), keyring name "bbs".
func SHA256() *Ciphersuite {
	return newCiphersuite("sha256", "BBS_BLS12381G1_XMD:SHA-256_SSWU_RO_", expandMessageXMD)
}

// SHAKE256 returns the BLS12-381-SHAKE-256 ciphersuite descriptor
// (BBS_BLS12381G1_XOF:SHAKE-256_SSWU_RO_), keyring name "bbs_shake".
func SHAKE256() *Ciphersuite {
	return newCiphersuite("shake256", "BBS_BLS12381G1_XOF:SHAKE-256_SSWU_RO_", expandMessageXOF)
}

func newCiphersuite(name, id string, expand expandFn) *Ciphersuite {
	cs := &Ciphersuite{
		name:      name,
		id:        id,
		apiID:     []byte(id + "H2G_HM2S_"),
		expand:    expand,
		expandLen: 48,
	}
	cs.seedDST = concat(cs.apiID, []byte("SIG_GENERATOR_SEED_"))
	cs.generatorDST = concat(cs.apiID, []byte("SIG_GENERATOR_DST_"))
	cs.generatorSeed = concat(cs.apiID, []byte("MESSAGE_GENERATOR_SEED"))
	cs.hashToScalarDST = concat(cs.apiID, []byte("H2S_"))
	cs.mapMessageDST = concat(cs.apiID, []byte("MAP_MSG_TO_SCALAR_AS_HASH_"))

	p1, err := derivePoint1(cs)
	if err != nil {
		panic(err) // unreachable: fixed, self-consistent constants
	}
	cs.p1 = p1
	return cs
}

// Name reports the ciphersuite's short identity ("sha256" or "shake256").
func (cs *Ciphersuite) Name() string { return cs.name }

// APIID returns ciphersuite_id || "H2G_HM2S_", the api_id bound into every
// domain and challenge computation.
func (cs *Ciphersuite) APIID() []byte { return append([]byte{}, cs.apiID...) }

// P1 returns the ciphersuite's fixed G1 base point, independent of the
// message generators.
func (cs *Ciphersuite) P1() bls12381.G1Affine { return cs.p1 }

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// derivePoint1 computes P1 via the BP_MESSAGE_GENERATOR_SEED construction
// from §4.4/§6.2.1 of the draft: it is generator index "1" of a seed stream
// distinct from the ordinary message generator stream.
func derivePoint1(cs *Ciphersuite) (bls12381.G1Affine, error) {
	seedDST := concat(cs.apiID, []byte("SIG_GENERATOR_SEED_"))
	generatorDST := cs.generatorDST
	seed := concat(cs.apiID, []byte("BP_MESSAGE_GENERATOR_SEED"))

	v, err := cs.expand(seed, seedDST, cs.expandLen)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	v, err = cs.expand(concat(v, i2osp(1, 8)), seedDST, cs.expandLen)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	p1, err := hashToCurve(cs, v, generatorDST)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	if p1.IsInfinity() {
		return bls12381.G1Affine{}, errInvalidEncoding("P1 derived to infinity")
	}
	return p1, nil
}
