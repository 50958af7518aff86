// Package model defines the entities owned by the bridge store.
package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network names the source chain network whose headers the bridge accepts.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// Params returns the consensus parameters used for proof-of-work limits.
func (n Network) Params() (*chaincfg.Params, error) {
	switch n {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Testnet:
		return &chaincfg.TestNet3Params, nil
	case Regtest:
		return &chaincfg.RegressionNetParams, nil
	case Signet:
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", string(n))
	}
}
