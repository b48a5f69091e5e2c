package logger

import (
	"time"

	"github.com/lintang-b-s/campus-navigator/pkg/logger/config"
	myZap "github.com/lintang-b-s/campus-navigator/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New reads LOG_LEVEL and LOG_TIME_FORMAT through viper and builds the application logger.
func New() (*zap.Logger, error) {
	viper.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	_ = viper.BindEnv("LOG_LEVEL")
	_ = viper.BindEnv("LOG_TIME_FORMAT")

	cfg := config.Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	log, err := myZap.New(cfg)

	if err != nil {
		return nil, err
	}

	return log, nil
}
