// Package config resolves CLI settings from defaults, an optional config
// file and TGENTITIES_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyMode              = "mode"
	KeyProtocolTags      = "render.protocol_tags"
	KeyMaxMessageLength  = "prepare.max_message_length"
	KeyMaxCodeBlockLines = "prepare.max_code_block_lines"
	KeyPlainFallback     = "prepare.plain_fallback"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration options, their defaults and
// meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: KeyMode, Default: "markdown", Comment: "Markup of the input: markdown or html"},
		{Key: KeyProtocolTags, Default: false, Comment: "Render tg-spoiler, tg-emoji and tg://user links"},
		{Key: KeyMaxMessageLength, Default: 4096, Comment: "UTF-16 budget of one text message"},
		{Key: KeyMaxCodeBlockLines, Default: 50, Comment: "Longer pre blocks are sent as files; 0 keeps them inline"},
		{Key: KeyPlainFallback, Default: false, Comment: "Send markup that fails to parse as plain text"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// A config file set with SetConfigFile must exist; otherwise config.* is
// looked up in $XDG_CONFIG_HOME/tgentities, ~/.config/tgentities and the
// working directory, and may be absent.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "tgentities"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tgentities"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("tgentities")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.Set(KeyMode, strings.ToLower(strings.TrimSpace(v.GetString(KeyMode))))
	return nil
}

// CheckConfigValidity reports every invalid setting in one error.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error
	switch mode := v.GetString(KeyMode); mode {
	case "markdown", "html":
	default:
		errs = append(errs, fmt.Errorf("%s must be markdown or html, got %q", KeyMode, mode))
	}
	if v.GetInt(KeyMaxMessageLength) <= 0 {
		errs = append(errs, fmt.Errorf("%s must be greater than 0", KeyMaxMessageLength))
	}
	if v.GetInt(KeyMaxCodeBlockLines) < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyMaxCodeBlockLines))
	}
	return errors.Join(errs...)
}
