package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sqlite "github.com/mattn/go-sqlite3"

	"github.com/goodnatureofminers/income-scanner/internal/model"
)

// InsertIncomeRecord persists one income record. Inserting a record whose
// (address, tx id) pair already exists yields ErrDuplicateRecord.
func (s *Store) InsertIncomeRecord(ctx context.Context, rec model.IncomeRecord) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("insert_income_record", err, started)
	}()

	const query = `
INSERT INTO income_records (address, tx_id, height, timestamp, iso_date, symbol, currency, amount)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		rec.Address, rec.TxID, rec.Height, rec.Timestamp, rec.ISODate, rec.Symbol, rec.Currency, rec.Amount)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique) {
			err = fmt.Errorf("address %s tx %s: %w", rec.Address, rec.TxID, ErrDuplicateRecord)
			return err
		}
		err = fmt.Errorf("insert income record: %w", err)
		return err
	}
	return nil
}

// IncomeRecordCount returns the number of persisted income records.
func (s *Store) IncomeRecordCount(ctx context.Context) (count uint64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("income_record_count", err, started)
	}()

	row := s.db.QueryRowContext(ctx, `SELECT count(*) FROM income_records`)
	if err = row.Scan(&count); err != nil {
		err = fmt.Errorf("count income records: %w", err)
		return 0, err
	}
	return count, nil
}
