package tgentities

import "github.com/riverfjs/tgentities/internal/util"

// MarkdownEscape escapes text so FromMarkdown reproduces it literally.
func MarkdownEscape(text string) string {
	return util.EscapeMarkdown(text)
}

// MarkdownCodeBlockEscape escapes text for the body of a ``` block.
func MarkdownCodeBlockEscape(text string) string {
	return util.EscapeMarkdownCodeBlock(text)
}

// MarkdownCodeEscape escapes text for the body of an inline ` span.
func MarkdownCodeEscape(text string) string {
	return util.EscapeMarkdownCode(text)
}

// MarkdownURLEscape escapes text for a link destination.
func MarkdownURLEscape(text string) string {
	return util.EscapeMarkdownURL(text)
}

// HTMLEscape escapes text so FromHTML reproduces it literally.
func HTMLEscape(text string) string {
	return util.EscapeHTML(text)
}
