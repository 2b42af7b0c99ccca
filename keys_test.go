package bbs_test

import (
	"encoding/hex"
	"testing"

	"github.com/bbscore/bbs"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Draft test vectors, BLS12-381-SHAKE-256 ciphersuite, key material section.
func TestKeyGenVector(t *testing.T) {
	keyMaterial, err := hex.DecodeString("746869732d49532d6a7573742d616e2d546573742d494b4d2d746f2d67656e65726174652d246528724074232d6b6579")
	require.NoError(t, err)
	keyInfo, err := hex.DecodeString("746869732d49532d736f6d652d6b65792d6d657461646174612d746f2d62652d757365642d696e2d746573742d6b65792d67656e")
	require.NoError(t, err)
	expectedSKBytes, err := hex.DecodeString("2eee0f60a8a3a8bec0ee942bfd46cbdae9a0738ee68f5a64e7238311cf09a079")
	require.NoError(t, err)
	expectedPK, err := hex.DecodeString("92d37d1d6cd38fea3a873953333eab23a4c0377e3e049974eb62bd45949cdeb18fb0490edcd4429adff56e65cbce42cf188b31bddbd619e419b99c2c41b38179eb001963bc3decaae0d9f702c7a8c004f207f46c734a5eae2e8e82833f3e7ea5")
	require.NoError(t, err)

	var expectedSK fr.Element
	expectedSK.SetBytes(expectedSKBytes)

	cs := bbs.SHAKE256()
	sk, err := cs.KeyGen(keyMaterial, keyInfo, nil)
	require.NoError(t, err)
	assert.True(t, sk.Equal(&expectedSK))

	pk, err := bbs.SkToPk(sk)
	require.NoError(t, err)
	assert.Equal(t, expectedPK, pk)
}

func TestKeyGenRejectsShortMaterial(t *testing.T) {
	cs := bbs.SHAKE256()
	_, err := cs.KeyGen(make([]byte, 31), nil, nil)
	require.Error(t, err)
}

func TestGenerateKeyPairRoundTrips(t *testing.T) {
	cs := bbs.SHA256()
	sk, pk, err := cs.GenerateKeyPair([]byte("app-context"))
	require.NoError(t, err)
	assert.True(t, bbs.PublicKeyValid(pk))

	derivedPK, err := bbs.SkToPk(sk)
	require.NoError(t, err)
	assert.Equal(t, pk, derivedPK)
}
