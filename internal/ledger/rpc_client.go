package ledger

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// NodeClient wraps the btc rpcclient with rate limiting and metrics
// instrumentation. The limiter bounds request rate towards the node; the
// scanner issues requests from a single task, so Take never contends.
type NodeClient struct {
	client     *rpcclient.Client
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewNodeClient constructs an instrumented, rate-limited RPC client.
func NewNodeClient(client *rpcclient.Client, rps int, rpcMetrics RPCMetrics) *NodeClient {
	return &NodeClient{
		client:     client,
		limiter:    ratelimit.New(rps),
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the latest block count known to the node.
func (c *NodeClient) GetBlockCount() (count int64, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return c.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (c *NodeClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return c.client.GetBlockHash(blockHeight)
}

// GetBlockVerboseTx returns a verbose block with transactions.
func (c *NodeClient) GetBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_verbose_tx", err, started)
	}()
	return c.client.GetBlockVerboseTx(blockHash)
}
