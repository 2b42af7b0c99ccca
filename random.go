package bbs

import (
	"crypto/rand"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// maxRejectionAttempts bounds the rejection-sampling loop in randomScalar.
// The loop terminates with probability 1: r is about 0.45 * 2^256, so each
// 32-octet draw is accepted with probability about 0.45 and 128 rejections
// in a row occur with probability about 2^-111. This is a defensive sentinel
// rather than an expected code path.
const maxRejectionAttempts = 128

// randomScalar draws a uniformly random element of Fr by rejection
// sampling: repeatedly draw 32 uniform octets and keep the first value that
// is strictly less than r. Reducing modulo r instead would bias the
// distribution and is exactly the construction the draft forbids, since
// proof unlinkability depends on these scalars being uniform.
func randomScalar() (fr.Element, error) {
	buf := make([]byte, octetScalarLength)
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		if _, err := rand.Read(buf); err != nil {
			return fr.Element{}, errCryptoFailure("reading random octets: %v", err)
		}
		v := os2ip(buf)
		if v.Cmp(fr.Modulus()) < 0 {
			var s fr.Element
			s.SetBigInt(v)
			return s, nil
		}
	}
	return fr.Element{}, errCryptoFailure("rejection sampling exceeded %d attempts", maxRejectionAttempts)
}

// calculateRandomScalars implements calculate_random_scalars (§4.8 step 4,
// §5): the sole source of randomness (and therefore unlinkability) in proof
// generation.
func calculateRandomScalars(count int) ([]fr.Element, error) {
	out := make([]fr.Element, count)
	for i := range out {
		s, err := randomScalar()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
