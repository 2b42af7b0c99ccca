// Package bbs implements the BBS signature and selective-disclosure proof
// scheme over BLS12-381, following the IRTF CFRG BBS draft.
//
// An issuer signs an ordered vector of messages with KeyGen/Sign, producing
// an 80-octet signature. A holder in possession of a valid signature derives
// a zero-knowledge proof with ProofGen that discloses only a chosen subset of
// the messages while proving knowledge of a signature over the full vector.
// A verifier checks such a proof with ProofVerify without learning any
// undisclosed message.
//
// Two ciphersuites are supported, selected via SHA256 or SHAKE256: they
// differ only in the hash function used to expand messages into uniform
// bytes (SHA-256 XMD vs SHAKE-256 XOF) and therefore produce non-interoperable
// signatures and proofs. All other algorithms are shared.
//
// This package is a pure cryptographic engine: it has no knowledge of
// transport, storage, or encoding beyond the octet-string wire formats
// defined by the draft. Callers own serialization into whatever envelope
// their protocol uses.
package bbs
