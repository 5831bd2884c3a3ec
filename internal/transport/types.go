// Package transport exposes the wallet-facing HTTP endpoints and the health service.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionBuilder interface {
		Build(ctx context.Context, req service.Request) (service.Outcome, error)
	}
	RequestMetrics interface {
		Observe(method, result string, started time.Time)
	}
)
