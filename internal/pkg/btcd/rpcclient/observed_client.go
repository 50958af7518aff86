// Package rpcclient instruments the btcd JSON-RPC client used to follow a bitcoind node.
package rpcclient

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

// Config addresses a bitcoind JSON-RPC endpoint.
type Config struct {
	URL      string
	User     string
	Password string
}

// Dial opens an HTTP POST mode client. The URL scheme selects TLS.
func Dial(cfg Config) (*rpcclient.Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("rpc url is required")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("rpc url %q has no host", cfg.URL)
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         u.Host + u.Path,
		User:         cfg.User,
		Pass:         cfg.Password,
		HTTPPostMode: true,
		DisableTLS:   u.Scheme != "https",
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create rpc client: %w", err)
	}
	return client, nil
}

// ObservedClient reports every call to RPCMetrics.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

func (r *ObservedClient) GetBlockHeader(blockHash *chainhash.Hash) (header *wire.BlockHeader, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header", err, started)
	}()
	return r.client.GetBlockHeader(blockHash)
}

func (r *ObservedClient) GetBlockVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	return r.client.GetBlockVerbose(blockHash)
}
