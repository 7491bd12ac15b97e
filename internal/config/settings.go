package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/handiism/qrgen/internal/model"
)

// Environment keys recognised by Load.
const (
	EnvOutputDir  = "QR_CODE_DIR"
	EnvFillColor  = "FILL_COLOR"
	EnvBackColor  = "BACK_COLOR"
	EnvDefaultURL = "QR_DATA_URL"
	EnvLogLevel   = "LOG_LEVEL"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Settings holds all configuration options for one run.
type Settings struct {
	// Output
	OutputDir string

	// Data
	DefaultURL string

	// Colours, as colour names or #rgb / #rrggbb
	FillColor string
	BackColor string

	// Symbol geometry
	Version int
	BoxSize int
	Border  int

	// Logging
	LogLevel string
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:  "qr_codes",
		DefaultURL: "https://github.com/srushti0510",
		FillColor:  "red",
		BackColor:  "white",
		Version:    1,
		BoxSize:    10,
		Border:     5,
		LogLevel:   "info",
	}
}

// LookupFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load resolves settings from a dotenv file and the process environment.
//
// A missing envFile is not an error. Variables present in the process
// environment take precedence over the file, which takes precedence over
// the defaults. When the file exists but cannot be parsed, the returned
// settings are still usable (environment and defaults) and the error
// describes the file problem.
func Load(envFile string) (*Settings, error) {
	file, err := readEnvFile(envFile)
	return Resolve(os.LookupEnv, file), err
}

// Resolve builds settings from a lookup function and values read from a dotenv file.
func Resolve(lookup LookupFunc, file map[string]string) *Settings {
	settings := DefaultSettings()

	get := func(key, fallback string) string {
		if lookup != nil {
			if v, ok := lookup(key); ok && v != "" {
				return v
			}
		}
		if v := file[key]; v != "" {
			return v
		}
		return fallback
	}

	settings.OutputDir = get(EnvOutputDir, settings.OutputDir)
	settings.FillColor = get(EnvFillColor, settings.FillColor)
	settings.BackColor = get(EnvBackColor, settings.BackColor)
	settings.DefaultURL = get(EnvDefaultURL, settings.DefaultURL)
	settings.LogLevel = get(EnvLogLevel, settings.LogLevel)

	return settings
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return values, nil
}

// ToRenderParams converts settings to RenderParams.
func (s *Settings) ToRenderParams() model.RenderParams {
	return model.RenderParams{
		Version:   s.Version,
		BoxSize:   s.BoxSize,
		Border:    s.Border,
		FillColor: s.FillColor,
		BackColor: s.BackColor,
	}
}
