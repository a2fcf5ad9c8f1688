package core

import (
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds the effective runtime settings for a run.
type Configuration struct {
	Port       int    `mapstructure:"port"`
	DataFile   string `mapstructure:"data_file"`
	SamplesDir string `mapstructure:"samples_dir"`
	PlotsDir   string `mapstructure:"plots_dir"`

	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age"`
}

// Config is the process-wide configuration, populated by InitConfig.
var Config Configuration

// InitConfig loads configuration from defaults, STEAMLENS_* environment
// variables and an optional config file, in increasing priority.
func InitConfig(path string) error {
	v := viper.New()

	v.SetDefault("port", 7973)
	v.SetDefault("data_file", "data/dataset/steam_games.csv")
	v.SetDefault("samples_dir", "data/samples")
	v.SetDefault("plots_dir", "data/plots")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_max_size", 100)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age", 28)

	v.SetEnvPrefix("steamlens")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	return v.Unmarshal(&Config)
}
