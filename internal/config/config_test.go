package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Load(context.Background(), v))

	require.Equal(t, "markdown", v.GetString(KeyMode))
	require.False(t, v.GetBool(KeyProtocolTags))
	require.Equal(t, 4096, v.GetInt(KeyMaxMessageLength))
	require.Equal(t, 50, v.GetInt(KeyMaxCodeBlockLines))
	require.False(t, v.GetBool(KeyPlainFallback))
	require.NoError(t, CheckConfigValidity(v))
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "tgentities", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0o700))
	content := `mode = "HTML"

[render]
protocol_tags = true

[prepare]
max_code_block_lines = 10
`
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))
	t.Setenv("TGENTITIES_PREPARE_MAX_MESSAGE_LENGTH", "100")

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))

	require.Equal(t, "html", v.GetString(KeyMode))
	require.True(t, v.GetBool(KeyProtocolTags))
	require.Equal(t, 10, v.GetInt(KeyMaxCodeBlockLines))
	require.Equal(t, 100, v.GetInt(KeyMaxMessageLength))
	require.Equal(t, cfg, v.ConfigFileUsed())
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, Load(context.Background(), v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set(KeyMode, "bbcode")
	v.Set(KeyMaxMessageLength, 0)
	v.Set(KeyMaxCodeBlockLines, -1)

	err := CheckConfigValidity(v)
	require.Error(t, err)
	for _, want := range []string{
		`mode must be markdown or html, got "bbcode"`,
		"prepare.max_message_length must be greater than 0",
		"prepare.max_code_block_lines must not be negative",
	} {
		require.Contains(t, err.Error(), want)
	}
}
