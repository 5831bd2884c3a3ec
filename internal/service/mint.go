package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/ledger"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

const mintMessage = "Please approve the transaction to mint your NFT!"

// MintService builds transactions minting the hunt collectible to a participant.
type MintService struct {
	program     *ledger.CollectibleProgram
	checkpoints CheckpointSource
	events      EventRecorder
	cluster     model.Cluster
	game        solana.PublicKey
	logger      *zap.Logger
	newMint     func() (solana.PrivateKey, error)
	now         func() time.Time
}

// NewMintService wires the mint flow. game only labels recorded events.
func NewMintService(
	program *ledger.CollectibleProgram,
	checkpoints CheckpointSource,
	events EventRecorder,
	cluster model.Cluster,
	game solana.PublicKey,
	logger *zap.Logger,
) *MintService {
	return &MintService{
		program:     program,
		checkpoints: checkpoints,
		events:      events,
		cluster:     cluster,
		game:        game,
		logger:      logger,
		newMint:     solana.NewRandomPrivateKey,
		now:         time.Now,
	}
}

// Build returns a transaction creating a fresh mint and minting one token to the participant.
// The mint key signs here and is discarded.
func (s *MintService) Build(ctx context.Context, req Request) (Outcome, error) {
	mint, err := s.newMint()
	if err != nil {
		return Outcome{}, fmt.Errorf("generate mint key: %w", err)
	}

	ix, err := s.program.MintInstruction(req.Participant, mint.PublicKey(), req.Reference)
	if err != nil {
		return Outcome{}, err
	}

	checkpoint, err := s.checkpoints.Latest(ctx)
	if err != nil {
		return Outcome{}, err
	}
	tx, err := ledger.NewTransaction(req.Participant, checkpoint, ix)
	if err != nil {
		return Outcome{}, err
	}
	if err := ledger.PartialSign(tx, mint); err != nil {
		return Outcome{}, err
	}
	encoded, err := ledger.EncodeTransaction(tx)
	if err != nil {
		return Outcome{}, err
	}

	s.logger.Debug("mint transaction built",
		zap.Stringer("participant", req.Participant),
		zap.Stringer("mint", mint.PublicKey()),
	)

	outcome := Accepted(encoded, mintMessage)
	s.events.Record(newEvent(model.EventMint, s.cluster, s.game, req, 0, outcome, s.now()))
	return outcome, nil
}
