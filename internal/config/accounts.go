package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"teller/internal/ledger"
)

type accountSpec struct {
	Name    string `yaml:"name"`
	ID      int64  `yaml:"id"`
	Balance int64  `yaml:"balance"`
}

// LoadAccounts reads the account seed file, a YAML list of
// {name, id, balance} records. File order is preserved because the
// ledger's first-match rule makes it observable when ids repeat.
func LoadAccounts(path string) ([]ledger.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var specs []accountSpec
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("decode accounts file %s: %w", path, err)
	}

	out := make([]ledger.Account, 0, len(specs))
	for _, s := range specs {
		out = append(out, ledger.Account{ID: s.ID, Name: s.Name, Balance: s.Balance})
	}
	return out, nil
}
