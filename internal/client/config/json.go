package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/walletsession/internal/flagx"
	"github.com/dmitrijs2005/walletsession/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they can be strings like "750ms" or
// integer nanoseconds. RPC endpoint keys are chain ids.
type JsonConfig struct {
	BackendURL     string           `json:"backend_url"`
	WebsiteURL     string           `json:"website_url"`
	DBPath         string           `json:"db_path"`
	VerifyDelay    timex.Duration   `json:"verify_delay"`
	RequestTimeout timex.Duration   `json:"request_timeout"`
	LogLevel       string           `json:"log_level"`
	LaunchURL      string           `json:"launch_url"`
	KeyFile        string           `json:"key_file"`
	ChainID        int64            `json:"chain_id"`
	Connectors     []string         `json:"connectors"`
	RPCEndpoints   map[int64]string `json:"rpc_endpoints"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Only fields present
// (non-zero) in the file are copied. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BackendURL, jc.BackendURL)
	setString(&cfg.WebsiteURL, jc.WebsiteURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LaunchURL, jc.LaunchURL)
	setString(&cfg.KeyFile, jc.KeyFile)

	if jc.VerifyDelay.Duration > 0 {
		cfg.VerifyDelay = jc.VerifyDelay.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ChainID != 0 {
		cfg.ChainID = jc.ChainID
	}
	if len(jc.Connectors) > 0 {
		cfg.Connectors = jc.Connectors
	}
	if len(jc.RPCEndpoints) > 0 {
		cfg.RPCEndpoints = jc.RPCEndpoints
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
