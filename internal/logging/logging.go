package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New cria o logger da CLI. Saída console no stderr para não misturar com o
// relatório no stdout.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("inicializar logger: %w", err)
	}
	return logger.Sugar(), nil
}
