package bbs_test

import (
	"encoding/hex"
	"testing"

	"github.com/bbscore/bbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySingleMessageVector(t *testing.T) {
	header, err := hex.DecodeString(shake256HeaderHex)
	require.NoError(t, err)
	pk, err := hex.DecodeString(shake256PublicKeyHex)
	require.NoError(t, err)
	message, err := hex.DecodeString(shake256MultiMessageHex[0])
	require.NoError(t, err)
	signature, err := hex.DecodeString("98eb37fceb31115bf647f2983aef578ad895e55f7451b1add02fa738224cb89a31b148eace4d20d001be31d162c58d12574f30e68665b6403956a83b23a16f1daceacce8c5fde25d3defd52d6d5ff2e1")
	require.NoError(t, err)

	cs := bbs.SHAKE256()
	valid, err := cs.Verify(pk, signature, header, [][]byte{message})
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyMultiMessageVector(t *testing.T) {
	header, err := hex.DecodeString(shake256HeaderHex)
	require.NoError(t, err)
	pk, err := hex.DecodeString(shake256PublicKeyHex)
	require.NoError(t, err)
	messages := decodeAll(t, shake256MultiMessageHex)
	signature, err := hex.DecodeString("97a296c83ed3626fe254d26021c5e9a087b580f1e8bc91bb51efb04420bfdaca215fe376a0bc12440bcc52224fb33c696cca9239b9f28dcddb7bd850aae9cd1a9c3e9f3639953fe789dbba53b8f0dd6f")
	require.NoError(t, err)

	cs := bbs.SHAKE256()
	valid, err := cs.Verify(pk, signature, header, messages)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyTamperedSignatureIsRejected(t *testing.T) {
	header, err := hex.DecodeString(shake256HeaderHex)
	require.NoError(t, err)
	pk, err := hex.DecodeString(shake256PublicKeyHex)
	require.NoError(t, err)
	message, err := hex.DecodeString(shake256MultiMessageHex[0])
	require.NoError(t, err)
	// last byte flipped relative to the valid vector
	signature, err := hex.DecodeString("98eb37fceb31115bf647f2983aef578ad895e55f7451b1add02fa738224cb89a31b148eace4d20d001be31d162c58d12574f30e68665b6403956a83b23a16f1daceacce8c5fde25d3defd52d6d5ff2e2")
	require.NoError(t, err)

	cs := bbs.SHAKE256()
	valid, err := cs.Verify(pk, signature, header, [][]byte{message})
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyWrongMessageIsRejected(t *testing.T) {
	header, err := hex.DecodeString(shake256HeaderHex)
	require.NoError(t, err)
	pk, err := hex.DecodeString(shake256PublicKeyHex)
	require.NoError(t, err)
	wrongMessage, err := hex.DecodeString(shake256MultiMessageHex[1])
	require.NoError(t, err)
	signature, err := hex.DecodeString("98eb37fceb31115bf647f2983aef578ad895e55f7451b1add02fa738224cb89a31b148eace4d20d001be31d162c58d12574f30e68665b6403956a83b23a16f1daceacce8c5fde25d3defd52d6d5ff2e1")
	require.NoError(t, err)

	cs := bbs.SHAKE256()
	valid, err := cs.Verify(pk, signature, header, [][]byte{wrongMessage})
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyRejectsMalformedSignatureLength(t *testing.T) {
	pk, err := hex.DecodeString(shake256PublicKeyHex)
	require.NoError(t, err)

	cs := bbs.SHAKE256()
	_, err = cs.Verify(pk, make([]byte, 10), nil, nil)
	require.Error(t, err)
}

func TestVerifyCrossCiphersuiteRejected(t *testing.T) {
	shake := bbs.SHAKE256()
	sha := bbs.SHA256()

	sk, pk, err := shake.GenerateKeyPair(nil)
	require.NoError(t, err)
	messages := [][]byte{[]byte("hello")}

	sig, err := shake.Sign(sk, pk, nil, messages)
	require.NoError(t, err)

	// A signature produced under one ciphersuite's generators must not
	// verify under the other's, since generators and DSTs differ.
	valid, err := sha.Verify(pk, sig, nil, messages)
	if err == nil {
		assert.False(t, valid)
	}
}
