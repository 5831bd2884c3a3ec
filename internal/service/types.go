package service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ProgressReader interface {
		FetchProgress(ctx context.Context, participant solana.PublicKey) (model.ProgressRecord, bool, error)
	}
	CheckpointSource interface {
		Latest(ctx context.Context) (model.Checkpoint, error)
	}
	EventRecorder interface {
		Record(event model.HuntEvent)
	}
)

// Request is a participant's ask for a transaction. LocationID is ignored by the mint service.
type Request struct {
	Participant solana.PublicKey
	Reference   solana.PublicKey
	LocationID  uint32
}
