// Package ledger reads blocks from a remote ledger node with bounded retries.
package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/income-scanner/internal/clock"
	"github.com/goodnatureofminers/income-scanner/internal/model"
	"github.com/goodnatureofminers/income-scanner/pkg/safe"
)

const (
	defaultMaxAttempts = 4
	defaultBaseDelay   = 500 * time.Millisecond
)

// Client fetches tip height and blocks from a ledger node, retrying
// transient failures with exponentially increasing delays.
type Client struct {
	rpc         RPCClient
	decoder     ScriptDecoder
	logger      *zap.Logger
	sleep       func(context.Context, time.Duration) error
	maxAttempts int
	baseDelay   time.Duration
}

// NewClient builds a Client for the given network.
func NewClient(rpc RPCClient, network model.Network, logger *zap.Logger) (*Client, error) {
	decoder, err := NewScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	return &Client{
		rpc:         rpc,
		decoder:     decoder,
		logger:      logger.With(zap.String("network", string(network))),
		sleep:       clock.SleepWithContext,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}, nil
}

// TipHeight returns the current chain height known to the node.
func (c *Client) TipHeight(ctx context.Context) (uint64, error) {
	var count int64
	err := c.withRetry(ctx, "get_block_count", func() error {
		var err error
		count, err = c.rpc.GetBlockCount()
		return err
	})
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// BlockAt fetches the full block at the given height. A height beyond the
// node's tip yields ErrNotFound.
func (c *Client) BlockAt(ctx context.Context, height uint64) (model.Block, error) {
	if height > math.MaxInt64 {
		return model.Block{}, fmt.Errorf("block height %d exceeds rpc limit", height)
	}

	var src *btcjson.GetBlockVerboseTxResult
	err := c.withRetry(ctx, "get_block", func() error {
		hash, err := c.rpc.GetBlockHash(int64(height))
		if err != nil {
			return err
		}
		src, err = c.rpc.GetBlockVerboseTx(hash)
		return err
	})
	if err != nil {
		return model.Block{}, fmt.Errorf("fetch block height %d: %w", height, err)
	}

	block, err := c.buildBlock(*src)
	if err != nil {
		return model.Block{}, fmt.Errorf("convert block height %d: %w", height, err)
	}
	return block, nil
}

func (c *Client) withRetry(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if attempt > 0 {
			delay := clock.Backoff(c.baseDelay, attempt-1)
			c.logger.Warn("retrying ledger rpc",
				zap.String("operation", op),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr))
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if !isRetryable(err) {
			return fmt.Errorf("%s: %w: %v", op, ErrUpstreamUnavailable, err)
		}
		lastErr = err
	}
	return fmt.Errorf("%s failed after %d attempts: %w: %v", op, c.maxAttempts, ErrUpstreamUnavailable, lastErr)
}
