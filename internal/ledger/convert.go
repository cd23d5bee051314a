package ledger

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/income-scanner/internal/model"
	"github.com/goodnatureofminers/income-scanner/pkg/safe"
)

// buildBlock maps a verbose block result into a model.Block, keeping
// transactions in ledger order. The coinbase input is not counted so that
// a coinbase transaction reports zero inputs. A transaction that cannot be
// converted is logged and skipped; only block-level failures are errors.
func (c *Client) buildBlock(src btcjson.GetBlockVerboseTxResult) (model.Block, error) {
	height, err := safe.Uint64(src.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block height overflow: %w", err)
	}

	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		converted, err := c.convertTransaction(tx, src.Time)
		if err != nil {
			c.logger.Warn("skipping malformed transaction",
				zap.Uint64("height", height),
				zap.String("tx_id", tx.Txid),
				zap.Error(err))
			continue
		}
		txs = append(txs, converted)
	}

	return model.Block{
		Height:       height,
		Transactions: txs,
	}, nil
}

func (c *Client) convertTransaction(tx btcjson.TxRawResult, blockTime int64) (model.Transaction, error) {
	timestamp := tx.Time
	if timestamp == 0 {
		timestamp = blockTime
	}
	if timestamp < 0 {
		return model.Transaction{}, fmt.Errorf("tx %s negative timestamp: %d", tx.Txid, timestamp)
	}

	inputs := 0
	for _, vin := range tx.Vin {
		if !vin.IsCoinBase() {
			inputs++
		}
	}

	outputs := make([]model.TxOutput, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return model.Transaction{}, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
		}
		value, err := satoshisFromBTC(vout.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d convert value: %w", tx.Txid, idx, err)
		}

		addresses, err := c.decoder.decodeAddresses(vout)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("decode addresses for tx %s output %d: %w", tx.Txid, idx, err)
		}
		// Outputs without a decodable address are kept with an empty
		// address; they can never match a configured address.
		address := ""
		if len(addresses) > 0 {
			address = addresses[0]
		}

		outputs = append(outputs, model.TxOutput{
			Address: address,
			Value:   value,
		})
	}

	return model.Transaction{
		TxID:            tx.Txid,
		TimestampMillis: timestamp * 1000,
		TotalInputs:     inputs,
		Outputs:         outputs,
	}, nil
}

func satoshisFromBTC(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}
