package logger

import (
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg/logger/config"
	myZap "github.com/lintang-b-s/grasp-maxcut/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New() (*zap.Logger, error) {
	return NewWithViper(viper.GetViper())
}

// NewWithViper reads LOG_LEVEL and LOG_TIME_FORMAT from v, so the binary can hand over the
// instance that already carries its flags and config file.
func NewWithViper(v *viper.Viper) (*zap.Logger, error) {
	v.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	cfg := config.Configuration{
		Level:      v.GetInt("LOG_LEVEL"),
		TimeFormat: v.GetString("LOG_TIME_FORMAT"),
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
