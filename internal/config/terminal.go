package config

import "github.com/caarlos0/env/v11"

type TerminalConfig struct {
	AccountsFile string `env:"ACCOUNTS_FILE,required,notEmpty"`
	BankName     string `env:"BANK_NAME" envDefault:"demo bank"`
}

func LoadTerminal() (TerminalConfig, error) {
	var cfg TerminalConfig
	err := env.Parse(&cfg)
	return cfg, err
}
