package model

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// Location is a physical checkpoint of the hunt. Indices start at 1.
type Location struct {
	Index uint32
	Key   solana.PublicKey
}

// ProgressRecord mirrors the on-chain user state account of a participant.
// A zero LastLocation means the record exists but no check-in was recorded yet.
type ProgressRecord struct {
	Owner        solana.PublicKey
	Game         solana.PublicKey
	LastLocation solana.PublicKey
}

// HasLocation reports whether a location has been recorded.
func (p ProgressRecord) HasLocation() bool {
	return !p.LastLocation.IsZero()
}

// Checkpoint is a recent blockhash together with its validity horizon.
type Checkpoint struct {
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
}

// CollectibleMetadata describes the token minted by the collectible point.
type CollectibleMetadata struct {
	URI    string
	Name   string
	Symbol string
}

type (
	EventKind string
	Verdict   string
)

var (
	EventCheckIn EventKind = "check_in"
	EventMint    EventKind = "mint"
)

var (
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
)

// HuntEvent is an analytics row describing one issued transaction request outcome.
type HuntEvent struct {
	Kind          EventKind
	Cluster       Cluster
	Game          string
	Participant   string
	Reference     string
	LocationIndex uint32
	Verdict       Verdict
	Reason        string
	CreatedAt     time.Time
}
