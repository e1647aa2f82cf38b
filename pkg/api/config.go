package api

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the remote endpoints and the local data directory.
type Config interface {
	BaseURL() string
	EventsURL() string
	BasePath() string
}

// LoadConfig resolves configuration from a .guiatv file and GUIATV_*
// environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("base_url", "https://streaming-guide-backend-staging.up.railway.app")
	viper.SetDefault("events_url", "")
	viper.SetDefault("path", "~/.guiatv.db")
	viper.SetConfigName(".guiatv") // .yaml is implicit
	viper.SetEnvPrefix("GUIATV")
	viper.AutomaticEnv()

	if override := os.Getenv("GUIATV_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("api: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("api: expand data path: %w", err)
	}

	return &fileConfig{
		Base:   viper.GetString("base_url"),
		Events: viper.GetString("events_url"),
		Path:   path,
	}, nil
}

type fileConfig struct {
	Base   string `json:"base_url"`
	Events string `json:"events_url"`
	Path   string `json:"path"`
}

func (f *fileConfig) BaseURL() string { return f.Base }

// EventsURL defaults to the live-events stream under the base URL when not
// set explicitly.
func (f *fileConfig) EventsURL() string {
	if f.Events != "" {
		return f.Events
	}
	return f.Base + "/youtube/live-events"
}

func (f *fileConfig) BasePath() string { return f.Path }
