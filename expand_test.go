package bbs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMessageXMDLengthAndDeterminism(t *testing.T) {
	msg := []byte("hello world")
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")

	a, err := expandMessageXMD(msg, dst, 96)
	require.NoError(t, err)
	assert.Len(t, a, 96)

	b, err := expandMessageXMD(msg, dst, 96)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))

	c, err := expandMessageXMD([]byte("different"), dst, 96)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, c))
}

func TestExpandMessageXMDRejectsOversizedDST(t *testing.T) {
	_, err := expandMessageXMD([]byte("m"), make([]byte, 256), 32)
	require.Error(t, err)
}

func TestExpandMessageXOFLengthAndDeterminism(t *testing.T) {
	msg := []byte("hello world")
	dst := []byte("QUUX-V01-CS02-with-expander-SHAKE256")

	a, err := expandMessageXOF(msg, dst, 48)
	require.NoError(t, err)
	assert.Len(t, a, 48)

	b, err := expandMessageXOF(msg, dst, 48)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestExpandMessageXOFRejectsOversizedDST(t *testing.T) {
	_, err := expandMessageXOF([]byte("m"), make([]byte, 256), 32)
	require.Error(t, err)
}
