package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Logging struct {
		Level  string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
		Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	} `mapstructure:"logging"`
	Harness struct {
		Verbose bool `mapstructure:"verbose"`
	} `mapstructure:"harness"`
}

var AppConfig Config

// LoadConfig reads config.yml from the given path into AppConfig.
// A missing file is not an error; the defaults below apply and any
// matching environment variables still override them.
func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("harness.verbose", false)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
