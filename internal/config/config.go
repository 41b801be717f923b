package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Storage StorageConfig `mapstructure:"storage"`
	Bins    BinsConfig    `mapstructure:"bins"`
	AppHost string        `mapstructure:"host"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type StorageConfig struct {
	Driver    string `mapstructure:"driver"` // "local" or "s3"
	Path      string `mapstructure:"path"`
	PublicURL string `mapstructure:"public_url"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
}

type BinsConfig struct {
	OverpassURL string `mapstructure:"overpass_url"`
	UseFixture  bool   `mapstructure:"use_fixture"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.SetDefault("storage.driver", "local")
	viper.SetDefault("storage.path", "./data/uploads")
	viper.SetDefault("storage.public_url", "http://localhost:8080/files")
	viper.SetDefault("bins.overpass_url", "https://overpass-api.de/api/interpreter")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
