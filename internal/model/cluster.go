package model

import "fmt"

// Cluster names the Solana cluster the service talks to.
type Cluster string

var (
	Devnet      Cluster = "devnet"
	Testnet     Cluster = "testnet"
	MainnetBeta Cluster = "mainnet-beta"
	Localnet    Cluster = "localnet"
)

// ParseCluster validates a cluster name.
func ParseCluster(name string) (Cluster, error) {
	switch c := Cluster(name); c {
	case Devnet, Testnet, MainnetBeta, Localnet:
		return c, nil
	default:
		return "", fmt.Errorf("unknown cluster %q", name)
	}
}
