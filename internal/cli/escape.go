package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/tgentities"
)

var escapers = map[string]func(string) string{
	"markdown":  tgentities.MarkdownEscape,
	"code":      tgentities.MarkdownCodeEscape,
	"codeblock": tgentities.MarkdownCodeBlockEscape,
	"url":       tgentities.MarkdownURLEscape,
	"html":      tgentities.HTMLEscape,
}

func newEscapeCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "escape [file]",
		Short: "Escape text so it converts back to itself literally",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			escape, ok := escapers[kind]
			if !ok {
				return fmt.Errorf("unknown escape kind %q (want markdown, code, codeblock, url or html)", kind)
			}
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), escape(string(in)))
			return err
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "markdown", "markdown, code, codeblock, url or html")
	return cmd
}
