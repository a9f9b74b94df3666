// Package tgentities converts between Telegram message entities and the two
// markup forms the Bot API accepts.
//
// A Telegram message is plain text plus a flat list of entities, each a
// (type, offset, length) triple measured in UTF-16 code units. This package
// parses the Bot API Markdown dialect and HTML subset into that form and
// renders it back to HTML:
//
//	e, err := tgentities.FromMarkdown("*bold _and italic_* text")
//	// e.Message == "bold and italic text"
//	html, err := e.ToHTML()
//	// html == "<b>bold <i>and italic</i></b> text"
//
// Main API:
//   - FromMarkdown, FromHTML, FromNode: markup → Entities
//   - Entities.ToHTML: Entities → HTML
//   - MarkdownEscape and friends: embed arbitrary text in markup
//   - SplitEntities, Entities.Split: fit a message into length limits
//   - Prepare: parse, extract long code blocks and split in one call
//
// All functions are safe for concurrent use; none of them keeps state
// between calls.
package tgentities
