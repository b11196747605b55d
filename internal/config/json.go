package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		AccessTokenSecret    string   `json:"access_token_secret"`
		RefreshTokenSecret   string   `json:"refresh_token_secret"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Staging struct {
			Dir string `json:"dir"`
		} `json:"staging,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Media struct {
		UploadURL      string   `json:"upload_url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"media,omitempty"`

	Workers struct {
		StagingCleanupInterval Duration `json:"staging_cleanup_interval"`
		StagingMaxAge          Duration `json:"staging_max_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccessTokenSecret:    jsonCfg.App.AccessTokenSecret,
			RefreshTokenSecret:   jsonCfg.App.RefreshTokenSecret,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Staging: Staging{
				Dir: jsonCfg.Storage.Staging.Dir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Media: Media{
			UploadURL:      jsonCfg.Media.UploadURL,
			APIKey:         jsonCfg.Media.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Media.RequestTimeout),
		},
		Workers: Workers{
			StagingCleanupInterval: time.Duration(jsonCfg.Workers.StagingCleanupInterval),
			StagingMaxAge:          time.Duration(jsonCfg.Workers.StagingMaxAge),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration string %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}
