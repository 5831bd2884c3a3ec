package ledger

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrReferenceNotFound is returned while no transaction carrying the reference is visible.
var ErrReferenceNotFound = errors.New("reference not found")

// NewReference returns a fresh single-use reference key.
func NewReference() (solana.PublicKey, error) {
	var reference solana.PublicKey
	if _, err := rand.Read(reference[:]); err != nil {
		return solana.PublicKey{}, fmt.Errorf("generate reference: %w", err)
	}
	return reference, nil
}

// ReferenceFinder looks up transactions by their reference account.
type ReferenceFinder struct {
	rpc        SignatureReader
	commitment rpc.CommitmentType
}

// NewReferenceFinder constructs a ReferenceFinder at the given commitment.
func NewReferenceFinder(reader SignatureReader, commitment rpc.CommitmentType) *ReferenceFinder {
	return &ReferenceFinder{rpc: reader, commitment: commitment}
}

// FindReference returns the signature of a transaction that includes reference.
func (f *ReferenceFinder) FindReference(ctx context.Context, reference solana.PublicKey) (solana.Signature, error) {
	limit := 1
	signatures, err := f.rpc.GetSignaturesForAddressWithOpts(ctx, reference, &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: f.commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get signatures for %s: %w", reference, err)
	}
	if len(signatures) == 0 || signatures[0] == nil {
		return solana.Signature{}, ErrReferenceNotFound
	}
	return signatures[0].Signature, nil
}
