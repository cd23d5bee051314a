// Package model defines domain models for address income scanning.
package model

type Network string

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// Symbol is the asset ticker recorded on every income record.
const Symbol = "BTC"

// AddressConfig describes one watched address and which transaction
// kinds count as income for it. Immutable for the duration of a scan run.
type AddressConfig struct {
	Address           string
	DisplayName       string
	Currency          string
	AcceptCoinbase    bool
	AcceptNonCoinbase bool
}

// TxOutput is a single output of a ledger transaction.
type TxOutput struct {
	Address string
	Value   uint64
}

// Transaction is a ledger transaction reduced to what classification needs.
type Transaction struct {
	TxID            string
	TimestampMillis int64
	// TotalInputs counts spending inputs only; the coinbase input of a
	// coinbase transaction does not count.
	TotalInputs int
	Outputs     []TxOutput
}

// IsCoinbase reports whether the transaction creates new value.
func (t Transaction) IsCoinbase() bool {
	return t.TotalInputs == 0
}

// Block is a ledger block at a fixed height with its transactions in
// ledger order.
type Block struct {
	Height       uint64
	Transactions []Transaction
}

// IncomeRecord is a persisted fact that a configured address received
// value in a specific transaction. (Address, TxID) is unique in storage.
type IncomeRecord struct {
	Address   string
	Timestamp int64
	ISODate   string
	TxID      string
	Height    uint64
	Symbol    string
	Currency  string
	Amount    float64
}
