// Package classifier decides which ledger transactions count as income
// for a configured address set.
package classifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/income-scanner/internal/model"
)

// ErrMalformedTransaction marks a transaction that cannot be classified.
// Callers skip the transaction; it is never fatal for a scan.
var ErrMalformedTransaction = errors.New("malformed transaction")

// Skipped reports a transaction that classification dropped.
type Skipped struct {
	TxID string
	Err  error
}

// Classify filters a block's transactions against the configured address
// set and returns one income record per (address, transaction) pair that
// received value. Records preserve the block's transaction order; within
// a transaction, configured address order.
func Classify(block model.Block, configs []model.AddressConfig) ([]model.IncomeRecord, []Skipped) {
	var records []model.IncomeRecord
	var skipped []Skipped

	for _, tx := range block.Transactions {
		if err := validate(tx); err != nil {
			skipped = append(skipped, Skipped{TxID: tx.TxID, Err: err})
			continue
		}

		isCoinbase := tx.IsCoinbase()
		for _, cfg := range configs {
			if isCoinbase && !cfg.AcceptCoinbase {
				continue
			}
			if !isCoinbase && !cfg.AcceptNonCoinbase {
				continue
			}

			var received uint64
			for _, out := range tx.Outputs {
				if out.Address == cfg.Address {
					received += out.Value
				}
			}
			// An address appearing only as a non-receiving party is
			// not income.
			if received == 0 {
				continue
			}

			seconds := tx.TimestampMillis / 1000
			records = append(records, model.IncomeRecord{
				Address:   cfg.Address,
				Timestamp: seconds,
				ISODate:   time.Unix(seconds, 0).UTC().Format(time.RFC3339),
				TxID:      tx.TxID,
				Height:    block.Height,
				Symbol:    model.Symbol,
				Currency:  cfg.Currency,
				Amount:    btcutil.Amount(received).ToBTC(),
			})
		}
	}

	return records, skipped
}

func validate(tx model.Transaction) error {
	if tx.TxID == "" {
		return fmt.Errorf("%w: empty transaction id", ErrMalformedTransaction)
	}
	if tx.TimestampMillis < 0 {
		return fmt.Errorf("%w: negative timestamp %d", ErrMalformedTransaction, tx.TimestampMillis)
	}
	return nil
}
