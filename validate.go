package bbs

// PublicKeyValid implements pubkey_valid (§4.10): a public key is valid if
// it decodes, lies in the G2 prime-order subgroup, and is not the identity.
// OctetsToPublicKey already enforces exactly these conditions.
func PublicKeyValid(pk []byte) bool {
	_, err := OctetsToPublicKey(pk)
	return err == nil
}

// SignatureValid implements signature_valid (§4.10): a signature is valid if
// it decodes to the expected length with A not the identity and e in
// (0, r). octetsToSignature already enforces exactly these conditions.
func SignatureValid(signature []byte) bool {
	_, _, err := octetsToSignature(signature)
	return err == nil
}

// ProofValid implements proof_valid (§4.10): a proof is valid if it decodes
// to a well-formed (points, scalars) shape per octets_to_proof.
func ProofValid(proof []byte) bool {
	_, err := octetsToProof(proof)
	return err == nil
}
