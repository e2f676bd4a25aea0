// Package config defines the CLI structure for kong parsing.
package config

import (
	"github.com/hatchbot/hatchbot/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"HATCHBOT_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"HATCHBOT_LOG_FILE"`
}

// CLI is the root command structure for kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config string `help:"Config file path" env:"HATCHBOT_CONFIG"`

	Run      cmd.Run      `cmd:"" help:"Play the script against a report transport"`
	Simulate cmd.Simulate `cmd:"" help:"Dry-run the script without hardware"`
	Export   cmd.Export   `cmd:"" help:"Write the built-in script as YAML"`
}
