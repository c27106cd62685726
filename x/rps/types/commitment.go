package types

import (
	"bytes"
	"crypto/sha256"

	errorsmod "cosmossdk.io/errors"
)

// Commitment pre-image layout: 1 choice byte followed by a 32-byte salt,
// hashed with SHA-256 into a 32-byte digest.
const (
	SaltLength       = 32
	CommitmentLength = sha256.Size
	PreimageLength   = 1 + SaltLength
)

// CommitmentPreimage assembles the 33-byte pre-image for a choice and salt.
func CommitmentPreimage(choice Choice, salt []byte) ([]byte, error) {
	if !choice.Valid() {
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "invalid choice %d", choice)
	}
	if len(salt) != SaltLength {
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "salt must be %d bytes, got %d", SaltLength, len(salt))
	}
	preimage := make([]byte, 0, PreimageLength)
	preimage = append(preimage, byte(choice))
	preimage = append(preimage, salt...)
	return preimage, nil
}

// ComputeCommitment hashes a pre-image into its commitment digest. Pre-image
// length is validated before hashing; a malformed length is an input error,
// not a hash mismatch.
func ComputeCommitment(preimage []byte) ([]byte, error) {
	if len(preimage) != PreimageLength {
		return nil, errorsmod.Wrapf(ErrInvalidRequest, "preimage must be %d bytes, got %d", PreimageLength, len(preimage))
	}
	digest := sha256.Sum256(preimage)
	return digest[:], nil
}

// VerifyCommitment recomputes the digest over (choice, salt) and compares it
// byte-for-byte against the stored commitment. A mismatch is ErrInvalidHash.
func VerifyCommitment(choice Choice, salt, commitment []byte) error {
	preimage, err := CommitmentPreimage(choice, salt)
	if err != nil {
		return err
	}
	digest, err := ComputeCommitment(preimage)
	if err != nil {
		return err
	}
	if !bytes.Equal(digest, commitment) {
		return ErrInvalidHash
	}
	return nil
}
