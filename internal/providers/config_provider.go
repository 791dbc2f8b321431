package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"marinecast/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "MARINECAST_LOG_LEVEL")
	viper.BindEnv("forecast.baseUrl", "MARINECAST_BASE_URL")
	viper.BindEnv("forecast.maxAge", "MARINECAST_MAX_AGE")
	viper.BindEnv("forecast.refreshInterval", "MARINECAST_REFRESH_INTERVAL")
	viper.BindEnv("cache.enabled", "MARINECAST_CACHE_ENABLED")
	viper.BindEnv("cache.size", "MARINECAST_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "MarineCast"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
