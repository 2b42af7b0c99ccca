package bbs

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

const maxDSTLength = 255

// expandMessageXMD implements expand_message_xmd from RFC 9380 §5.4.1 using
// SHA-256 as the underlying hash function (b_in_bytes = 32, r_in_bytes = 64).
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	const bInBytes = 32
	const rInBytes = 64

	if len(dst) > maxDSTLength {
		return nil, errInvalidArgument("expand_message_xmd: DST length %d exceeds %d", len(dst), maxDSTLength)
	}

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || lenInBytes > 65535 {
		return nil, errInvalidArgument("expand_message_xmd: len_in_bytes %d out of range", lenInBytes)
	}

	dstPrime := concat(dst, []byte{byte(len(dst))})
	zPad := make([]byte, rInBytes)
	libStr := i2osp(lenInBytes, 2)

	h := sha256.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bPrev := h.Sum(nil)

	uniform := make([]byte, 0, ell*bInBytes)
	uniform = append(uniform, bPrev...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := 0; j < bInBytes; j++ {
			xored[j] = b0[j] ^ bPrev[j]
		}
		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bPrev = h.Sum(nil)
		uniform = append(uniform, bPrev...)
	}

	return uniform[:lenInBytes], nil
}

// expandMessageXOF implements expand_message_xof from RFC 9380 §5.4.2 using
// SHAKE-256.
func expandMessageXOF(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > maxDSTLength {
		return nil, errInvalidArgument("expand_message_xof: DST length %d exceeds %d", len(dst), maxDSTLength)
	}
	if lenInBytes > 65535 {
		return nil, errInvalidArgument("expand_message_xof: len_in_bytes %d out of range", lenInBytes)
	}

	dstPrime := concat(dst, []byte{byte(len(dst))})

	shake := sha3.NewShake256()
	shake.Write(msg)
	shake.Write(i2osp(lenInBytes, 2))
	shake.Write(dstPrime)

	out := make([]byte, lenInBytes)
	if _, err := shake.Read(out); err != nil {
		return nil, errInvalidEncoding("expand_message_xof: %v", err)
	}
	return out, nil
}
