package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

// ProgressStore reads participants' progress records from the cluster.
type ProgressStore struct {
	rpc        AccountReader
	program    *HuntProgram
	commitment rpc.CommitmentType
}

// NewProgressStore constructs a ProgressStore reading at the given commitment.
func NewProgressStore(reader AccountReader, program *HuntProgram, commitment rpc.CommitmentType) *ProgressStore {
	return &ProgressStore{rpc: reader, program: program, commitment: commitment}
}

// FetchProgress returns the participant's record. found is false when the record does not
// exist yet; that is not an error. Any other failure is returned as an error.
func (s *ProgressStore) FetchProgress(ctx context.Context, participant solana.PublicKey) (record model.ProgressRecord, found bool, err error) {
	address, err := s.program.ProgressAddress(participant)
	if err != nil {
		return model.ProgressRecord{}, false, err
	}

	out, err := s.rpc.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: s.commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return model.ProgressRecord{}, false, nil
	}
	if err != nil {
		return model.ProgressRecord{}, false, fmt.Errorf("get progress account %s: %w", address, err)
	}
	if out == nil || out.Value == nil {
		return model.ProgressRecord{}, false, nil
	}
	if out.Value.Data == nil {
		return model.ProgressRecord{}, false, fmt.Errorf("progress account %s has no data", address)
	}

	record, err = s.program.DecodeProgress(out.Value.Owner, out.Value.Data.GetBinary())
	if err != nil {
		return model.ProgressRecord{}, false, fmt.Errorf("progress account %s: %w", address, err)
	}
	return record, true, nil
}
