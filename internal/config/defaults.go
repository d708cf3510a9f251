// Package config provides configuration loading and defaults for secposture.
package config

// DefaultConfigDir is the default location for secposture configuration.
const DefaultConfigDir = "~/.config/secposture"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:    true,
	BarWidth: 20,
}
