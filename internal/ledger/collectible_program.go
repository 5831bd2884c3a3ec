package ledger

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

// TokenMetadataProgramID is the Metaplex token metadata program.
var TokenMetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

var mintDiscriminator = instructionDiscriminator("initialize")

type mintArgs struct {
	URI    string
	Name   string
	Symbol string
}

// CollectibleProgram builds mint instructions for the collectible program. The program's
// "auth" address is the mint authority.
type CollectibleProgram struct {
	programID solana.PublicKey
	metadata  model.CollectibleMetadata
}

// NewCollectibleProgram returns a client minting tokens described by metadata.
func NewCollectibleProgram(programID solana.PublicKey, metadata model.CollectibleMetadata) *CollectibleProgram {
	return &CollectibleProgram{programID: programID, metadata: metadata}
}

// ProgramID returns the on-chain program id.
func (p *CollectibleProgram) ProgramID() solana.PublicKey {
	return p.programID
}

// MintInstruction mints one token of a new mint to the participant's associated token account.
// The mint account must sign the transaction.
func (p *CollectibleProgram) MintInstruction(participant, mint, reference solana.PublicKey) (solana.Instruction, error) {
	metadata, _, err := solana.FindProgramAddress([][]byte{
		[]byte("metadata"),
		TokenMetadataProgramID[:],
		mint[:],
	}, TokenMetadataProgramID)
	if err != nil {
		return nil, fmt.Errorf("derive metadata address: %w", err)
	}
	masterEdition, _, err := solana.FindProgramAddress([][]byte{
		[]byte("metadata"),
		TokenMetadataProgramID[:],
		mint[:],
		[]byte("edition"),
	}, TokenMetadataProgramID)
	if err != nil {
		return nil, fmt.Errorf("derive master edition address: %w", err)
	}
	auth, _, err := solana.FindProgramAddress([][]byte{[]byte("auth")}, p.programID)
	if err != nil {
		return nil, fmt.Errorf("derive mint authority: %w", err)
	}
	tokenAccount, _, err := solana.FindProgramAddress([][]byte{
		participant[:],
		solana.TokenProgramID[:],
		mint[:],
	}, solana.SPLAssociatedTokenAccountProgramID)
	if err != nil {
		return nil, fmt.Errorf("derive token account: %w", err)
	}

	data, err := encodeInstructionData(mintDiscriminator, mintArgs{
		URI:    p.metadata.URI,
		Name:   p.metadata.Name,
		Symbol: p.metadata.Symbol,
	})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(p.programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(mint, true, true),
		solana.NewAccountMeta(metadata, true, false),
		solana.NewAccountMeta(masterEdition, true, false),
		solana.NewAccountMeta(auth, false, false),
		solana.NewAccountMeta(tokenAccount, true, false),
		solana.NewAccountMeta(participant, true, true),
		solana.NewAccountMeta(participant, true, true),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(TokenMetadataProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
		referenceMeta(reference),
	}, data), nil
}
