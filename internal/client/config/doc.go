// Package config loads runtime configuration for the wallet session CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv): WALLETSESSION_BACKEND_URL,
//     WEBSITE, WALLETSESSION_DB_PATH, WALLETSESSION_VERIFY_DELAY,
//     WALLETSESSION_REQUEST_TIMEOUT, WALLETSESSION_LOG_LEVEL,
//     WALLETSESSION_LAUNCH_URL, WALLETSESSION_KEY_FILE,
//     WALLETSESSION_CHAIN_ID and WALLETSESSION_CONNECTORS (comma separated).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-w string   website URL
//	-d string   SQLite database path
//	-u string   launch URL
//	-l string   log level
//	-k string   wallet key file
//
// # JSON schema
//
//	{
//	  "backend_url": "http://127.0.0.1:8080",
//	  "website_url": "https://app.example",
//	  "verify_delay": "999ms",
//	  "request_timeout": "10s",
//	  "chain_id": 1,
//	  "connectors": ["injected", "walletconnect"],
//	  "rpc_endpoints": {"1": "https://rpc.mainnet.eth.arbitrum.network"}
//	}
package config
