package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/income-scanner/internal/classifier"
	"github.com/goodnatureofminers/income-scanner/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerSource reads tip height and blocks from the ledger node.
	LedgerSource interface {
		TipHeight(ctx context.Context) (uint64, error)
		BlockAt(ctx context.Context, height uint64) (model.Block, error)
	}

	// TransactionStore persists income records and owns the scan cursor.
	TransactionStore interface {
		MaxHeight(ctx context.Context) (uint64, bool, error)
		InsertIncomeRecord(ctx context.Context, rec model.IncomeRecord) error
		CommitHeight(ctx context.Context, height uint64) error
	}

	// EngineMetrics records metrics for the scan engine.
	EngineMetrics interface {
		ObserveTipFetch(err error, started time.Time)
		ObservePass(err error, heights int, started time.Time)
		ObserveHeight(err error, height uint64, started time.Time)
		AddRecords(inserted, duplicates int)
		SetTip(height uint64)
		SetCursor(height uint64)
	}

	// ClassifyFunc turns a block into income records for the address set.
	ClassifyFunc func(block model.Block, configs []model.AddressConfig) ([]model.IncomeRecord, []classifier.Skipped)
)
