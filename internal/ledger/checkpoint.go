package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

// CheckpointSource fetches recent blockhashes for new transactions.
type CheckpointSource struct {
	rpc        BlockhashReader
	commitment rpc.CommitmentType
}

// NewCheckpointSource constructs a CheckpointSource.
func NewCheckpointSource(reader BlockhashReader, commitment rpc.CommitmentType) *CheckpointSource {
	return &CheckpointSource{rpc: reader, commitment: commitment}
}

// Latest returns the most recent blockhash and its validity horizon.
func (s *CheckpointSource) Latest(ctx context.Context) (model.Checkpoint, error) {
	out, err := s.rpc.GetLatestBlockhash(ctx, s.commitment)
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	if out == nil || out.Value == nil {
		return model.Checkpoint{}, errors.New("get latest blockhash: empty response")
	}
	return model.Checkpoint{
		Blockhash:            out.Value.Blockhash,
		LastValidBlockHeight: out.Value.LastValidBlockHeight,
	}, nil
}
