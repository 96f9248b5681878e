package config

import "time"

// Config holds runtime settings for the wallet session CLI.
//
// Fields:
//   - BackendURL: base URL of the profile API (GET /profile, POST /profile/auth).
//   - WebsiteURL: site the user logs in to; its host goes into the signed message.
//   - DBPath: SQLite file backing the cookie jar and local storage.
//   - VerifyDelay: quiet period before a wallet is asked to sign.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: debug, info, warn or error.
//   - LaunchURL: URL the client was opened with; its ref query is captured.
//   - KeyFile: optional file holding the hex private key for the injected wallet.
//   - ChainID, Connectors, RPCEndpoints: wallet modal configuration.
type Config struct {
	BackendURL     string        `env:"WALLETSESSION_BACKEND_URL"`
	WebsiteURL     string        `env:"WEBSITE"`
	DBPath         string        `env:"WALLETSESSION_DB_PATH"`
	VerifyDelay    time.Duration `env:"WALLETSESSION_VERIFY_DELAY"`
	RequestTimeout time.Duration `env:"WALLETSESSION_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"WALLETSESSION_LOG_LEVEL"`
	LaunchURL      string        `env:"WALLETSESSION_LAUNCH_URL"`
	KeyFile        string        `env:"WALLETSESSION_KEY_FILE"`
	ChainID        int64         `env:"WALLETSESSION_CHAIN_ID"`
	Connectors     []string      `env:"WALLETSESSION_CONNECTORS" envSeparator:","`
	RPCEndpoints   map[int64]string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:8080"
	c.WebsiteURL = "http://localhost:3000"
	c.DBPath = "walletsession.db"
	c.VerifyDelay = 999 * time.Millisecond
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.ChainID = 1
	c.Connectors = []string{"injected", "walletconnect"}
	c.RPCEndpoints = map[int64]string{
		1:   "https://rpc.mainnet.eth.arbitrum.network",
		137: "https://rpc-mainnet.maticvigil.com",
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
