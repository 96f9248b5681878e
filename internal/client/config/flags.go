package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/walletsession/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend API base URL
//	-w string   website URL bound into the signed message
//	-d string   SQLite database path
//	-u string   launch URL (its ref query parameter is captured)
//	-l string   log level
//	-k string   file with the wallet private key
//
// Only these flags are parsed; others in os.Args are filtered out with
// flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-u", "-l", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "backend API base URL")
	fs.StringVar(&cfg.WebsiteURL, "w", cfg.WebsiteURL, "website URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "database path")
	fs.StringVar(&cfg.LaunchURL, "u", cfg.LaunchURL, "launch URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.KeyFile, "k", cfg.KeyFile, "file with the wallet private key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
