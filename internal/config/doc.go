// Package config provides configuration management for qrgen.
//
// This package handles:
//   - Default configuration values
//   - Reading an optional .env file
//   - Overlaying process environment variables
//   - Conversion to model.RenderParams for the rendering packages
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults:
//
//	settings := config.DefaultSettings()
//	// Writes into ./qr_codes
//	// Red modules on a white background
//	// Box size 10, border 5, starting at version 1
//
// # Loading
//
//	settings, err := config.Load(config.DefaultEnvFile)
//	if err != nil {
//	    // .env exists but is malformed; settings still hold env + defaults
//	}
//
// # Environment Variables
//
//   - QR_CODE_DIR: output directory (default "qr_codes")
//   - FILL_COLOR: colour of dark modules (default "red")
//   - BACK_COLOR: colour of light modules (default "white")
//   - QR_DATA_URL: URL encoded when --url is not given
//   - LOG_LEVEL: logrus level name (default "info"); "debug" logs state changes
//
// Only this package reads the environment. Everything downstream receives a
// Settings value or the RenderParams derived from it.
package config
