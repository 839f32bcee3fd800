package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"teller/internal/atm"
	"teller/internal/config"
	"teller/internal/ledger"
	"teller/internal/logging"
	"teller/internal/terminal"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		panic(err)
	}

	specs, err := config.LoadAccounts(cfg.Terminal.AccountsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load accounts failed")
	}

	led := ledger.New(specs)
	svc := atm.NewService(led)
	loop := terminal.NewLoop(svc, led, os.Stdin, os.Stdout, cfg.Terminal.BankName)

	log.Info().Int("accounts", len(specs)).Str("bank", cfg.Terminal.BankName).Msg("terminal ready")
	if err := loop.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal input failed")
	}
	log.Info().Msg("machine shut down")
}
