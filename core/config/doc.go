// Package config provides configuration management for the toolkit command line.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
//   - Log: Logging level and format
//   - Format: Locale, extra date layout and time zone for parsing and rendering
//   - Settings: Directory of the key/value settings store
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tag, err := cfg.Format.Language()
package config
