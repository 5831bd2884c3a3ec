package ledger

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

var (
	initializeDiscriminator = instructionDiscriminator("initialize")
	checkInDiscriminator    = instructionDiscriminator("check_in")
	userStateDiscriminator  = accountDiscriminator("UserState")
)

// userStateSize is the discriminator plus user, game and last location keys.
const userStateSize = discriminatorSize + 3*solana.PublicKeyLength

type (
	initializeArgs struct {
		Game solana.PublicKey
	}
	checkInArgs struct {
		Game     solana.PublicKey
		Location solana.PublicKey
	}
	userStateAccount struct {
		User         solana.PublicKey
		Game         solana.PublicKey
		LastLocation solana.PublicKey
	}
)

// HuntProgram builds instructions for the scavenger hunt program of a single game.
// Progress records live at the program address derived from [game, participant].
type HuntProgram struct {
	programID solana.PublicKey
	game      solana.PublicKey
}

// NewHuntProgram returns a client for programID scoped to game.
func NewHuntProgram(programID, game solana.PublicKey) *HuntProgram {
	return &HuntProgram{programID: programID, game: game}
}

// ProgramID returns the on-chain program id.
func (p *HuntProgram) ProgramID() solana.PublicKey {
	return p.programID
}

// Game returns the game identity the client is scoped to.
func (p *HuntProgram) Game() solana.PublicKey {
	return p.game
}

// ProgressAddress derives the address of the participant's progress record.
func (p *HuntProgram) ProgressAddress(participant solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindProgramAddress([][]byte{p.game[:], participant[:]}, p.programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive progress address: %w", err)
	}
	return address, nil
}

// InitializeInstruction creates the participant's progress record. The participant pays rent.
func (p *HuntProgram) InitializeInstruction(participant solana.PublicKey) (solana.Instruction, error) {
	progress, err := p.ProgressAddress(participant)
	if err != nil {
		return nil, err
	}
	data, err := encodeInstructionData(initializeDiscriminator, initializeArgs{Game: p.game})
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(p.programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(progress, true, false),
		solana.NewAccountMeta(participant, true, true),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}, data), nil
}

// CheckInInstruction records location as the participant's last location. The authority must
// co-sign. The reference is appended as a read-only, non-signer account so the transaction can
// be found later; the program ignores it.
func (p *HuntProgram) CheckInInstruction(participant, authority, reference solana.PublicKey, location model.Location) (solana.Instruction, error) {
	progress, err := p.ProgressAddress(participant)
	if err != nil {
		return nil, err
	}
	data, err := encodeInstructionData(checkInDiscriminator, checkInArgs{Game: p.game, Location: location.Key})
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(p.programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(progress, true, false),
		solana.NewAccountMeta(participant, true, true),
		solana.NewAccountMeta(authority, false, true),
		referenceMeta(reference),
	}, data), nil
}

// DecodeProgress decodes a user state account owned by the program.
func (p *HuntProgram) DecodeProgress(owner solana.PublicKey, data []byte) (model.ProgressRecord, error) {
	if !owner.Equals(p.programID) {
		return model.ProgressRecord{}, fmt.Errorf("progress account owned by %s, want %s", owner, p.programID)
	}
	if len(data) < userStateSize {
		return model.ProgressRecord{}, fmt.Errorf("progress account data too short: %d bytes", len(data))
	}
	var state userStateAccount
	if err := decodeAccount(userStateDiscriminator, data, &state); err != nil {
		return model.ProgressRecord{}, err
	}
	if !state.Game.Equals(p.game) {
		return model.ProgressRecord{}, fmt.Errorf("progress account belongs to game %s, want %s", state.Game, p.game)
	}
	return model.ProgressRecord{
		Owner:        state.User,
		Game:         state.Game,
		LastLocation: state.LastLocation,
	}, nil
}

// EncodeProgress is the inverse of DecodeProgress, used by tooling and tests.
func EncodeProgress(record model.ProgressRecord) ([]byte, error) {
	return encodeInstructionData(userStateDiscriminator, userStateAccount{
		User:         record.Owner,
		Game:         record.Game,
		LastLocation: record.LastLocation,
	})
}

func referenceMeta(reference solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(reference, false, false)
}
