package tgentities

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/riverfjs/tgentities/internal/converter"
	"github.com/riverfjs/tgentities/internal/parser"
	"github.com/riverfjs/tgentities/internal/render"
)

// Entities is a message together with its styled-text entities, in the
// shape the Bot API sends and receives them. The converters never keep a
// reference to a returned value, so callers may modify both fields freely.
type Entities struct {
	Message  string   `json:"text"`
	Entities []Entity `json:"entities"`
}

// FromMarkdown converts Bot API Markdown to a message and its entities.
//
// Unclosed fences and markers fail with *UnclosedError, a link without its
// closing parenthesis with *UnclosedLinkError.
func FromMarkdown(markdown string) (Entities, error) {
	message, entities, err := parser.ParseMarkdown(markdown)
	if err != nil {
		return Entities{}, err
	}
	return newEntities(message, entities), nil
}

// FromHTML converts the Bot API HTML subset to a message and its entities.
// Unbalanced markup fails with *MalformedDocumentError.
func FromHTML(markup string) (Entities, error) {
	root, err := converter.ParseDocument(markup)
	if err != nil {
		return Entities{}, err
	}
	return FromNode(root), nil
}

// FromNode converts an already parsed node tree, such as one returned by
// html.Parse, to a message and its entities. Unknown elements, including
// html, head and body, only contribute their children.
func FromNode(root *html.Node) Entities {
	if root == nil {
		return newEntities("", nil)
	}
	message, entities := converter.Walk(root)
	return newEntities(message, entities)
}

// Parse converts markup written in mode.
func Parse(markup string, mode Mode) (Entities, error) {
	switch mode {
	case ModeMarkdown, "":
		return FromMarkdown(markup)
	case ModeHTML:
		return FromHTML(markup)
	default:
		return Entities{}, fmt.Errorf("unknown parse mode %q", mode)
	}
}

// ToHTML renders the message as HTML. Telegram-only tags are rendered only
// with WithProtocolTags(true); otherwise spoilers become
// <span class="tg-spoiler">, and custom emoji and text mentions lose their
// markup.
func (e Entities) ToHTML(opts ...Option) (string, error) {
	options := applyOptions(opts...)
	return render.HTML(e.Message, e.Entities, options.Config.AllowProtocolTags)
}

// UTF16Len returns the message length in UTF-16 code units.
func (e Entities) UTF16Len() int {
	return UTF16Len(e.Message)
}

// Split cuts the message into parts of at most maxUTF16Len UTF-16 code
// units; see SplitEntities.
func (e Entities) Split(maxUTF16Len int) []Entities {
	chunks := SplitEntities(e.Message, e.Entities, maxUTF16Len)
	parts := make([]Entities, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, newEntities(c.Text, c.Entities))
	}
	return parts
}

func newEntities(message string, entities []Entity) Entities {
	if entities == nil {
		entities = []Entity{}
	}
	return Entities{Message: message, Entities: entities}
}
