package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Rules      RulesConfig      `mapstructure:"rules"`
}

// ClassifierConfig descreve o binário validador externo opcional.
type ClassifierConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Command string        `mapstructure:"command"`
	Args    []string      `mapstructure:"args"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RulesConfig struct {
	File string `mapstructure:"file"`
}

// Load monta a configuração: defaults, arquivo opcional (explícito via file
// ou taskguard.yaml procurado em searchDir e no diretório atual) e overrides
// por variável de ambiente TASKGUARD_*.
func Load(file, searchDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("taskguard")
		v.SetConfigType("yaml")
		if searchDir != "" {
			v.AddConfigPath(searchDir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TASKGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Sem arquivo é ok quando nenhum foi pedido explicitamente
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ler configuração: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decodificar configuração: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("classifier.enabled", true)
	v.SetDefault("classifier.command", "taskguard-classifier")
	v.SetDefault("classifier.args", []string{})
	v.SetDefault("classifier.timeout", "30s")
	v.SetDefault("rules.file", "")
}
