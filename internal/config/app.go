package config

type AppConfig struct {
	Terminal TerminalConfig
	Log      LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	termCfg, err := LoadTerminal()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Terminal: termCfg,
		Log:      logCfg,
	}, nil
}
