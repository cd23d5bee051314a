// Package config loads the watched address set.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goodnatureofminers/income-scanner/internal/model"
)

type addressEntry struct {
	Address           string `json:"address"`
	DisplayName       string `json:"display_name"`
	Currency          string `json:"currency"`
	AcceptCoinbase    bool   `json:"accept_coinbase"`
	AcceptNonCoinbase bool   `json:"accept_non_coinbase"`
}

// LoadAddresses reads and validates the addresses file. The result is
// immutable for the duration of a scan run; the engine does not revalidate.
func LoadAddresses(path string) ([]model.AddressConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read addresses file: %w", err)
	}

	var entries []addressEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse addresses file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("addresses file %s contains no addresses", path)
	}

	configs := make([]model.AddressConfig, 0, len(entries))
	seenNames := make(map[string]struct{}, len(entries))
	seenAddresses := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Address == "" {
			return nil, fmt.Errorf("address entry %d: address is required", i)
		}
		if e.DisplayName == "" {
			return nil, fmt.Errorf("address entry %d: display name is required", i)
		}
		if e.Currency == "" {
			return nil, fmt.Errorf("address entry %d: currency is required", i)
		}
		if !e.AcceptCoinbase && !e.AcceptNonCoinbase {
			return nil, fmt.Errorf("address %s accepts no transaction kinds", e.Address)
		}
		if _, dup := seenNames[e.DisplayName]; dup {
			return nil, fmt.Errorf("duplicate display name %q", e.DisplayName)
		}
		if _, dup := seenAddresses[e.Address]; dup {
			return nil, fmt.Errorf("duplicate address %q", e.Address)
		}
		seenNames[e.DisplayName] = struct{}{}
		seenAddresses[e.Address] = struct{}{}

		configs = append(configs, model.AddressConfig{
			Address:           e.Address,
			DisplayName:       e.DisplayName,
			Currency:          e.Currency,
			AcceptCoinbase:    e.AcceptCoinbase,
			AcceptNonCoinbase: e.AcceptNonCoinbase,
		})
	}

	return configs, nil
}
