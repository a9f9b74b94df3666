// Package cli implements the tgentities command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riverfjs/tgentities/internal/config"
)

type ctxKey string

const configKey ctxKey = "config"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command. Configuration is loaded before
// any subcommand runs and stashed in the command context.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "tgentities",
		Short:         "Convert Telegram Markdown and HTML to message entities and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey, v))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newEscapeCmd())
	cmd.AddCommand(newSplitCmd())
	cmd.AddCommand(newPrepareCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// getConfig returns the loaded configuration with the flags of cmd that
// were set on the command line applied on top. flagKeys maps flag names to
// configuration keys.
func getConfig(cmd *cobra.Command, flagKeys map[string]string) (*viper.Viper, error) {
	v, ok := cmd.Context().Value(configKey).(*viper.Viper)
	if !ok {
		return nil, fmt.Errorf("internal error: config not loaded")
	}
	for flagName, key := range flagKeys {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		setFromFlag(cmd, v, flagName, key)
	}
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	return v, nil
}

func setFromFlag(cmd *cobra.Command, v *viper.Viper, flagName, key string) {
	switch cmd.Flags().Lookup(flagName).Value.Type() {
	case "bool":
		if val, err := cmd.Flags().GetBool(flagName); err == nil {
			v.Set(key, val)
		}
	case "int":
		if val, err := cmd.Flags().GetInt(flagName); err == nil {
			v.Set(key, val)
		}
	default:
		if val, err := cmd.Flags().GetString(flagName); err == nil {
			v.Set(key, val)
		}
	}
}

// readInput reads the file named by the only argument, or stdin when there
// is none.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
