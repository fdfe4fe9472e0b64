package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the layout of the JSON config file. Durations are written
// as Go duration strings ("30s", "5m") or as nanoseconds.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogFile       string   `json:"log_file"`
	} `json:"app"`
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		ClientDB struct {
			DSN string `json:"dsn"`
		} `json:"client_db"`
		SessionFile string `json:"session_file"`
	} `json:"storage"`
	Server  endpoint `json:"server"`
	Adapter endpoint `json:"adapter"`
	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers"`
}

type endpoint struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

// parseJSON rejects unknown keys so a misspelt setting fails loudly instead
// of silently falling back to a default.
func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var fc fileConfig
	if err = dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	return fc.structured(), nil
}

func (fc *fileConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App = App{
		TokenSignKey:  fc.App.TokenSignKey,
		TokenIssuer:   fc.App.TokenIssuer,
		TokenDuration: time.Duration(fc.App.TokenDuration),
		Version:       fc.App.Version,
		LogFile:       fc.App.LogFile,
	}
	cfg.Storage.DB.DSN = fc.Storage.DB.DSN
	cfg.Storage.Client.DSN = fc.Storage.ClientDB.DSN
	cfg.Storage.SessionFile = fc.Storage.SessionFile
	cfg.Server = Server{HTTPAddress: fc.Server.HTTPAddress, RequestTimeout: time.Duration(fc.Server.RequestTimeout)}
	cfg.Adapter = Adapter{HTTPAddress: fc.Adapter.HTTPAddress, RequestTimeout: time.Duration(fc.Adapter.RequestTimeout)}
	cfg.Workers.SyncInterval = time.Duration(fc.Workers.SyncInterval)

	return cfg
}

// Duration accepts "1h30m" style strings as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return json.Unmarshal(b, (*int64)(d))
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
