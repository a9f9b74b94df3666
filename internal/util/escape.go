package util

import (
	"strings"

	gmutil "github.com/yuin/goldmark/util"
)

var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	`_`, `\_`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`~`, `\~`,
	"`", "\\`",
	`>`, `\>`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`=`, `\=`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`.`, `\.`,
	`!`, `\!`,
)

// EscapeMarkdown backslash-escapes every character with a meaning in the
// Markdown dialect.
func EscapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

// EscapeMarkdownCodeBlock escapes ``` fences inside a pre block body.
func EscapeMarkdownCodeBlock(text string) string {
	return strings.ReplaceAll(text, "```", "\\```")
}

// EscapeMarkdownCode escapes backticks inside an inline code body.
func EscapeMarkdownCode(text string) string {
	return strings.ReplaceAll(text, "`", "\\`")
}

// EscapeMarkdownURL escapes closing parentheses inside a link destination.
func EscapeMarkdownURL(text string) string {
	return strings.ReplaceAll(text, ")", "\\)")
}

// EscapeHTML escapes text for HTML bodies and double-quoted attributes.
// Quotes are always escaped (' as &apos;) and invalid UTF-8 is replaced
// with U+FFFD.
func EscapeHTML(text string) string {
	text = strings.ToValidUTF8(text, "�")
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\'' {
			sb.WriteString("&apos;")
			continue
		}
		if esc := gmutil.EscapeHTMLByte(c); esc != nil {
			sb.Write(esc)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
