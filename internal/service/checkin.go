package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/hunt"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/ledger"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

// CheckInService builds check-in transactions for participants who reached a location.
type CheckInService struct {
	registry    *hunt.Registry
	program     *ledger.HuntProgram
	progress    ProgressReader
	checkpoints CheckpointSource
	authority   solana.PrivateKey
	events      EventRecorder
	cluster     model.Cluster
	logger      *zap.Logger
	now         func() time.Time
}

// NewCheckInService wires the check-in flow. authority co-signs every accepted check-in.
func NewCheckInService(
	registry *hunt.Registry,
	program *ledger.HuntProgram,
	progress ProgressReader,
	checkpoints CheckpointSource,
	authority solana.PrivateKey,
	events EventRecorder,
	cluster model.Cluster,
	logger *zap.Logger,
) *CheckInService {
	return &CheckInService{
		registry:    registry,
		program:     program,
		progress:    progress,
		checkpoints: checkpoints,
		authority:   authority,
		events:      events,
		cluster:     cluster,
		logger:      logger,
		now:         time.Now,
	}
}

// Build validates the participant's progress and returns a transaction recording the check-in.
// A validation failure yields a rejected outcome, never an error.
func (s *CheckInService) Build(ctx context.Context, req Request) (Outcome, error) {
	location, ok := s.registry.Lookup(req.LocationID)
	if !ok {
		outcome := Rejected(string(hunt.ReasonInvalidLocation))
		s.record(req, req.LocationID, outcome)
		return outcome, nil
	}

	record, found, err := s.progress.FetchProgress(ctx, req.Participant)
	if err != nil {
		return Outcome{}, fmt.Errorf("fetch progress of %s: %w", req.Participant, err)
	}
	var progress *model.ProgressRecord
	if found {
		progress = &record
	}

	verdict := s.registry.Validate(progress, location)
	if !verdict.Accepted {
		s.logger.Debug("check-in rejected",
			zap.Stringer("participant", req.Participant),
			zap.Uint32("location", location.Index),
			zap.String("reason", string(verdict.Reason)),
		)
		outcome := Rejected(string(verdict.Reason))
		s.record(req, location.Index, outcome)
		return outcome, nil
	}

	instructions := make([]solana.Instruction, 0, 2)
	if !found {
		initialize, err := s.program.InitializeInstruction(req.Participant)
		if err != nil {
			return Outcome{}, err
		}
		instructions = append(instructions, initialize)
	}
	checkIn, err := s.program.CheckInInstruction(req.Participant, s.authority.PublicKey(), req.Reference, location)
	if err != nil {
		return Outcome{}, err
	}
	instructions = append(instructions, checkIn)

	checkpoint, err := s.checkpoints.Latest(ctx)
	if err != nil {
		return Outcome{}, err
	}
	tx, err := ledger.NewTransaction(req.Participant, checkpoint, instructions...)
	if err != nil {
		return Outcome{}, err
	}
	if err := ledger.PartialSign(tx, s.authority); err != nil {
		return Outcome{}, err
	}
	encoded, err := ledger.EncodeTransaction(tx)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Accepted(encoded, fmt.Sprintf("You've found location %d!", location.Index))
	s.record(req, location.Index, outcome)
	return outcome, nil
}

func (s *CheckInService) record(req Request, locationIndex uint32, outcome Outcome) {
	s.events.Record(newEvent(model.EventCheckIn, s.cluster, s.program.Game(), req, locationIndex, outcome, s.now()))
}

func newEvent(kind model.EventKind, cluster model.Cluster, game solana.PublicKey, req Request, locationIndex uint32, outcome Outcome, at time.Time) model.HuntEvent {
	event := model.HuntEvent{
		Kind:          kind,
		Cluster:       cluster,
		Participant:   req.Participant.String(),
		Reference:     req.Reference.String(),
		LocationIndex: locationIndex,
		CreatedAt:     at.UTC(),
	}
	if !game.IsZero() {
		event.Game = game.String()
	}
	if outcome.Kind == OutcomeAccepted {
		event.Verdict = model.VerdictAccepted
	} else {
		event.Verdict = model.VerdictRejected
		event.Reason = outcome.Message
	}
	return event
}
