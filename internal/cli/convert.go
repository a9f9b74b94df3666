package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/tgentities"
	"github.com/riverfjs/tgentities/internal/config"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Convert Markdown or HTML to a message and its entities (JSON)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := getConfig(cmd, map[string]string{"mode": config.KeyMode})
			if err != nil {
				return err
			}
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			e, err := tgentities.Parse(string(in), tgentities.Mode(v.GetString(config.KeyMode)))
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(e)
		},
	}
	cmd.Flags().String("mode", "markdown", "input markup: markdown or html")
	return cmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert a message and its entities (JSON) to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := getConfig(cmd, map[string]string{"protocol-tags": config.KeyProtocolTags})
			if err != nil {
				return err
			}
			e, err := readEntities(cmd, args)
			if err != nil {
				return err
			}
			out, err := e.ToHTML(tgentities.WithProtocolTags(v.GetBool(config.KeyProtocolTags)))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Bool("protocol-tags", false, "render tg-spoiler, tg-emoji and tg://user links")
	return cmd
}

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split a message and its entities (JSON) into parts of at most --max UTF-16 units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := getConfig(cmd, map[string]string{"max": config.KeyMaxMessageLength})
			if err != nil {
				return err
			}
			e, err := readEntities(cmd, args)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(e.Split(v.GetInt(config.KeyMaxMessageLength)))
		},
	}
	cmd.Flags().Int("max", 4096, "maximum part length in UTF-16 code units")
	return cmd
}

func readEntities(cmd *cobra.Command, args []string) (tgentities.Entities, error) {
	in, err := readInput(cmd, args)
	if err != nil {
		return tgentities.Entities{}, err
	}
	var e tgentities.Entities
	if err := json.Unmarshal(in, &e); err != nil {
		return tgentities.Entities{}, fmt.Errorf("decode entities: %w", err)
	}
	return e, nil
}
