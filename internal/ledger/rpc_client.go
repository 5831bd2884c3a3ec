package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
)

// ObservedClient wraps the Solana RPC client with metrics and client-side throttling.
// It is shared by all in-flight requests; the underlying client is safe for concurrent use.
type ObservedClient struct {
	client     *rpc.Client
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client. rps <= 0 disables throttling.
func NewObservedClient(client *rpc.Client, rps int, rpcMetrics RPCMetrics) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// GetAccountInfoWithOpts returns account state. A missing account yields rpc.ErrNotFound.
func (r *ObservedClient) GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (out *rpc.GetAccountInfoResult, err error) {
	if err := r.wait(ctx); err != nil {
		return out, err
	}
	started := time.Now()
	defer func() {
		observed := err
		if errors.Is(err, rpc.ErrNotFound) {
			observed = nil
		}
		r.rpcMetrics.Observe("get_account_info", observed, started)
	}()
	return r.client.GetAccountInfoWithOpts(ctx, account, opts)
}

// GetLatestBlockhash returns a recent blockhash and its last valid block height.
func (r *ObservedClient) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (out *rpc.GetLatestBlockhashResult, err error) {
	if err := r.wait(ctx); err != nil {
		return out, err
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_latest_blockhash", err, started)
	}()
	return r.client.GetLatestBlockhash(ctx, commitment)
}

// GetSignaturesForAddressWithOpts lists signatures of transactions that reference account.
func (r *ObservedClient) GetSignaturesForAddressWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetSignaturesForAddressOpts) (out []*rpc.TransactionSignature, err error) {
	if err := r.wait(ctx); err != nil {
		return out, err
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_signatures_for_address", err, started)
	}()
	return r.client.GetSignaturesForAddressWithOpts(ctx, account, opts)
}

// wait blocks until the limiter grants a slot. Take cannot be interrupted, so a request canceled
// while queued is dropped here instead of reaching the cluster.
func (r *ObservedClient) wait(ctx context.Context) error {
	r.limiter.Take()
	return ctx.Err()
}

// ClusterEndpoint returns the public RPC endpoint of cluster.
func ClusterEndpoint(cluster model.Cluster) (string, error) {
	switch cluster {
	case model.Devnet:
		return rpc.DevNet_RPC, nil
	case model.Testnet:
		return rpc.TestNet_RPC, nil
	case model.MainnetBeta:
		return rpc.MainNetBeta_RPC, nil
	case model.Localnet:
		return rpc.LocalNet_RPC, nil
	default:
		return "", fmt.Errorf("no rpc endpoint for cluster %q", cluster)
	}
}
