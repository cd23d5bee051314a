// Package scanner orchestrates resumable, height-ordered ingestion of
// income records from a ledger.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/income-scanner/internal/classifier"
	"github.com/goodnatureofminers/income-scanner/internal/clock"
	"github.com/goodnatureofminers/income-scanner/internal/ledger"
	"github.com/goodnatureofminers/income-scanner/internal/model"
	"github.com/goodnatureofminers/income-scanner/internal/store"
)

// Config carries the engine's scan parameters. StartHeight is exclusive:
// the first scanned height is StartHeight+1 unless the stored cursor is
// higher.
type Config struct {
	StartHeight   uint64
	PollInterval  time.Duration
	ProgressEvery uint64
}

// Engine walks ledger heights strictly in order, classifies each block
// against the configured address set and persists the results. It holds no
// durable state of its own; a restart resumes from the store's cursor.
type Engine struct {
	logger    *zap.Logger
	cfg       Config
	addresses []model.AddressConfig
	ledger    LedgerSource
	store     TransactionStore
	classify  ClassifyFunc
	metrics   EngineMetrics
	sleep     func(context.Context, time.Duration) error
}

// New builds an Engine with the given dependencies.
func New(
	source LedgerSource,
	txStore TransactionStore,
	addresses []model.AddressConfig,
	cfg Config,
	metrics EngineMetrics,
	logger *zap.Logger,
) (*Engine, error) {
	if metrics == nil {
		return nil, errors.New("engine metrics is required")
	}
	if len(addresses) == 0 {
		return nil, errors.New("at least one address config is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = defaultProgressEvery
	}

	return &Engine{
		logger:    logger,
		cfg:       cfg,
		addresses: addresses,
		ledger:    source,
		store:     txStore,
		classify:  classifier.Classify,
		metrics:   metrics,
		sleep:     clock.SleepWithContext,
	}, nil
}

// Run scans until the context is canceled or a fatal error occurs. Fatal
// errors are returned to the caller; the engine never retries past the
// ledger client's own retry budget or a failed store write.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("scan engine starting",
		zap.Uint64("start_height", e.cfg.StartHeight),
		zap.Int("addresses", len(e.addresses)),
		zap.Duration("poll_interval", e.cfg.PollInterval))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.runPass(ctx); err != nil {
			return fmt.Errorf("scan pass: %w", err)
		}
		if err := e.sleep(ctx, e.cfg.PollInterval); err != nil {
			return err
		}
	}
}

// runPass performs one resume-to-tip scan. A nil return means the pass
// ended caught up with the tip; any error is fatal for the engine.
func (e *Engine) runPass(ctx context.Context) (err error) {
	started := time.Now()
	var heights int
	defer func() {
		e.metrics.ObservePass(err, heights, started)
	}()

	start, err := e.resumeHeight(ctx)
	if err != nil {
		return err
	}

	tipStarted := time.Now()
	tip, err := e.ledger.TipHeight(ctx)
	e.metrics.ObserveTipFetch(err, tipStarted)
	if err != nil {
		return fmt.Errorf("fetch tip height: %w", err)
	}
	e.metrics.SetTip(tip)

	if start > tip {
		e.logger.Debug("caught up with ledger tip", zap.Uint64("tip", tip))
		return nil
	}

	e.logger.Info("scanning heights",
		zap.Uint64("from", start),
		zap.Uint64("to", tip))

	// Store writes for the in-flight height finish even when shutdown is
	// requested; cancellation is only observed between heights.
	persistCtx := context.WithoutCancel(ctx)

	for height := start; height <= tip; height++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		err = e.processHeight(ctx, persistCtx, height)
		if errors.Is(err, ledger.ErrNotFound) {
			// The tip moved below the height we were about to fetch;
			// the pass simply ends caught up.
			e.logger.Info("height beyond current tip, ending pass",
				zap.Uint64("height", height))
			err = nil
			return nil
		}
		if err != nil {
			return err
		}

		heights++
		if height%e.cfg.ProgressEvery == 0 {
			e.logger.Info("scan progress",
				zap.Uint64("height", height),
				zap.Uint64("tip", tip))
		}
	}

	e.logger.Info("scan pass complete",
		zap.Int("heights", heights),
		zap.Uint64("tip", tip))
	return nil
}

func (e *Engine) resumeHeight(ctx context.Context) (uint64, error) {
	cursor, ok, err := e.store.MaxHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("read scan cursor: %w", err)
	}

	start := e.cfg.StartHeight
	if ok && cursor > start {
		start = cursor
	}
	return start + 1, nil
}

func (e *Engine) processHeight(ctx, persistCtx context.Context, height uint64) (err error) {
	hStarted := time.Now()
	defer func() {
		e.metrics.ObserveHeight(err, height, hStarted)
	}()

	block, err := e.ledger.BlockAt(ctx, height)
	if err != nil {
		return err
	}

	records, skipped := e.classify(block, e.addresses)
	for _, sk := range skipped {
		e.logger.Warn("skipping unclassifiable transaction",
			zap.Uint64("height", height),
			zap.String("tx_id", sk.TxID),
			zap.Error(sk.Err))
	}

	var inserted, duplicates int
	for _, rec := range records {
		if err = e.store.InsertIncomeRecord(persistCtx, rec); err != nil {
			if errors.Is(err, store.ErrDuplicateRecord) {
				duplicates++
				err = nil
				continue
			}
			return fmt.Errorf("insert income record at height %d: %w", height, err)
		}
		inserted++
	}

	if err = e.store.CommitHeight(persistCtx, height); err != nil {
		return err
	}
	e.metrics.AddRecords(inserted, duplicates)
	e.metrics.SetCursor(height)

	if inserted > 0 || duplicates > 0 {
		e.logger.Info("recorded income",
			zap.Uint64("height", height),
			zap.Int("inserted", inserted),
			zap.Int("duplicates", duplicates))
	}
	return nil
}
