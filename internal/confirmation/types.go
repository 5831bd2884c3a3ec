// Package confirmation watches the cluster for transactions carrying a view's reference.
package confirmation

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ReferenceFinder interface {
		FindReference(ctx context.Context, reference solana.PublicKey) (solana.Signature, error)
	}
	TickMetrics interface {
		ObserveTick(found bool, err error, started time.Time)
	}
)
