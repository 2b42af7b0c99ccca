package bbs

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// Generators implements create_generators (§4.4): it returns the first n
// deterministic G1 generators for this ciphersuite, extending and persisting
// the cache as needed. The sequence depends only on the ciphersuite's static
// seeds, so repeated calls — regardless of what has already been cached —
// always return the same prefix.
//
// The lookup and the extension both run under a mutex, so concurrent calls
// are serialized: a goroutine that waited for the lock sees the cache as the
// previous caller left it and computes only the entries beyond it, never
// appending an entry twice, preserving "extend-then-read" equivalence under
// concurrent access.
func (cs *Ciphersuite) Generators(n uint64) ([]bls12381.G1Affine, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if uint64(len(cs.generators)) >= n {
		out := make([]bls12381.G1Affine, n)
		copy(out, cs.generators[:n])
		return out, nil
	}

	v := cs.v
	if v == nil {
		var err error
		v, err = cs.expand(cs.generatorSeed, cs.seedDST, cs.expandLen)
		if err != nil {
			return nil, err
		}
	}

	start := uint64(len(cs.generators))
	for i := start + 1; i <= n; i++ {
		var err error
		v, err = cs.expand(concat(v, i2osp(int(i), 8)), cs.seedDST, cs.expandLen)
		if err != nil {
			return nil, err
		}
		g, err := hashToCurve(cs, v, cs.generatorDST)
		if err != nil {
			return nil, errInvalidEncoding("generator %d: %v", i, err)
		}
		if g.IsInfinity() {
			return nil, errInvalidEncoding("generator %d is identity", i)
		}
		cs.generators = append(cs.generators, g)
	}
	cs.v = v

	out := make([]bls12381.G1Affine, n)
	copy(out, cs.generators[:n])
	return out, nil
}
