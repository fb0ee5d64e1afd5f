// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"

	"github.com/codeminter/codeminter/internal/logger"
)

// Defaults returns the built-in configuration used when no config file is
// present.
func Defaults() Config {
	return Config{
		Title: "codeminter",
		Generate: Generate{
			Charset:   "recommended",
			Case:      "upper",
			Encoding:  "utf-8",
			MaxLines:  0,
			OutputDir: "codes",
		},
		Log: logger.Log{
			LogLevel:    "info",
			AppName:     "codeminter",
			ServiceName: "codeminter",
			Console:     logger.Console{Enabled: false},
		},
	}
}

// ReadConfig from config file. A missing file is not an error: the tool
// runs on the built-in defaults.
func ReadConfig(path string) (Config, error) {
	var (
		c             = Defaults()
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}

		c = Defaults()
	}

	// override it from env
	JSONConfigEnv = os.Getenv("CODEMINTER_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config override from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate fills empty generate settings with defaults and rejects values
// no run could use.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	defaults := Defaults()

	if c.Generate.Charset == "" {
		c.Generate.Charset = defaults.Generate.Charset
	}

	if c.Generate.Case == "" {
		c.Generate.Case = defaults.Generate.Case
	}

	if c.Generate.Encoding == "" {
		c.Generate.Encoding = defaults.Generate.Encoding
	}

	if c.Generate.OutputDir == "" {
		c.Generate.OutputDir = defaults.Generate.OutputDir
	}

	if c.Generate.MaxLines < 0 {
		return errors.Wrap(ErrNegativeMaxLines, invalidErrMessage)
	}

	return nil
}
