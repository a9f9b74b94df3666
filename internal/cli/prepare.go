package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riverfjs/tgentities"
	"github.com/riverfjs/tgentities/internal/config"
)

// preparedContent is one line of prepare output.
type preparedContent struct {
	Type     string              `json:"type"`
	Text     string              `json:"text,omitempty"`
	Entities []tgentities.Entity `json:"entities,omitempty"`
	FileName string              `json:"file_name,omitempty"`
	Language string              `json:"language,omitempty"`
	Size     int                 `json:"size,omitempty"`
	Path     string              `json:"path,omitempty"`
}

func newPrepareCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "prepare [file]",
		Short: "Cut markup into sendable text messages and files (NDJSON)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := getConfig(cmd, map[string]string{
				"mode":           config.KeyMode,
				"max-length":     config.KeyMaxMessageLength,
				"max-code-lines": config.KeyMaxCodeBlockLines,
				"plain-fallback": config.KeyPlainFallback,
			})
			if err != nil {
				return err
			}
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			contents, err := tgentities.Prepare(cmd.Context(), string(in), prepareOptions(v)...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, c := range contents {
				line, err := describe(c, outDir)
				if err != nil {
					return err
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("mode", "markdown", "input markup: markdown or html")
	cmd.Flags().Int("max-length", 4096, "maximum text message length in UTF-16 code units")
	cmd.Flags().Int("max-code-lines", 50, "send longer pre blocks as files; 0 keeps them inline")
	cmd.Flags().Bool("plain-fallback", false, "send markup that fails to parse as plain text")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write extracted files to this directory")
	return cmd
}

func prepareOptions(v *viper.Viper) []tgentities.Option {
	cfg := *tgentities.DefaultConfig()
	cfg.AllowProtocolTags = v.GetBool(config.KeyProtocolTags)
	cfg.MaxMessageLength = v.GetInt(config.KeyMaxMessageLength)
	cfg.MaxCodeBlockLines = v.GetInt(config.KeyMaxCodeBlockLines)
	return []tgentities.Option{
		tgentities.WithMode(tgentities.Mode(v.GetString(config.KeyMode))),
		tgentities.WithPlainFallback(v.GetBool(config.KeyPlainFallback)),
		tgentities.WithConfig(&cfg),
	}
}

func describe(c tgentities.Content, outDir string) (preparedContent, error) {
	switch c := c.(type) {
	case *tgentities.Text:
		return preparedContent{Type: "text", Text: c.Text, Entities: c.Entities}, nil
	case *tgentities.File:
		line := preparedContent{
			Type:     "file",
			FileName: c.FileName,
			Language: c.Language,
			Size:     len(c.FileData),
		}
		if outDir == "" {
			return line, nil
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return preparedContent{}, err
		}
		line.Path = filepath.Join(outDir, fmt.Sprintf("%d-%s", c.ContentTrace.UTF16Start, c.FileName))
		if err := os.WriteFile(line.Path, c.FileData, 0o644); err != nil {
			return preparedContent{}, err
		}
		return line, nil
	default:
		return preparedContent{}, fmt.Errorf("unexpected content type %s", c.GetContentType())
	}
}
