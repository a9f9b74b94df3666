// Package converter turns an HTML node tree into a message and its
// entities.
package converter

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/riverfjs/tgentities/internal/buffer"
	"github.com/riverfjs/tgentities/internal/types"
	"github.com/riverfjs/tgentities/internal/util"
)

// TreeWalker walks a node tree depth-first, writing text nodes to a buffer
// and recording one entity per styled element.
type TreeWalker struct {
	buf      *buffer.TextBuffer
	entities []types.Entity
}

// NewTreeWalker creates a TreeWalker with an empty buffer.
func NewTreeWalker() *TreeWalker {
	return &TreeWalker{buf: buffer.New()}
}

// Walk converts the subtree rooted at n.
func Walk(n *html.Node) (string, []types.Entity) {
	w := NewTreeWalker()
	w.Walk(n)
	return w.Result()
}

// Result returns the trimmed message and its entities, in the order their
// elements closed.
func (w *TreeWalker) Result() (string, []types.Entity) {
	return util.TrimMessage(w.buf.String(), w.entities)
}

// Walk processes n and its descendants and returns the number of UTF-16
// code units they wrote. Trailing blanks reduce the entity length of an
// element but not the returned length.
func (w *TreeWalker) Walk(n *html.Node) int {
	switch n.Type {
	case html.TextNode:
		w.buf.Write(n.Data)
		return util.UTF16Len(n.Data)
	case html.ElementNode, html.DocumentNode:
	default:
		return 0
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		w.buf.Write("\n")
		return 1
	}

	start := w.buf.UTF16Offset()
	ent, styled := elementEntity(n)
	length := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		length += w.Walk(c)
	}
	if styled {
		w.finalizeEntity(ent, start, length)
	}
	return length
}

func (w *TreeWalker) finalizeEntity(ent types.Entity, start, length int) {
	length -= w.buf.TrailingBlankCount()
	if length <= 0 {
		return
	}
	ent.Offset = start
	ent.Length = length
	w.entities = append(w.entities, ent)
}

// elementEntity returns the entity template of an element; ok is false for
// elements that carry no style and only contribute their children.
func elementEntity(n *html.Node) (ent types.Entity, ok bool) {
	if n.Type != html.ElementNode {
		return types.Entity{}, false
	}
	switch n.Data {
	case "b", "strong":
		return types.Entity{Type: types.Bold}, true
	case "i", "em":
		return types.Entity{Type: types.Italic}, true
	case "u":
		return types.Entity{Type: types.Underline}, true
	case "s", "strike", "del":
		return types.Entity{Type: types.Strikethrough}, true
	case "code":
		return types.Entity{Type: types.Code}, true
	case "pre":
		lang, _ := attr(n, "language")
		return types.Entity{Type: types.Pre, Language: lang}, true
	case "blockquote":
		return types.Entity{Type: types.BlockQuote}, true
	case "spoiler", "tg-spoiler":
		return types.Entity{Type: types.Spoiler}, true
	case "span":
		if class, _ := attr(n, "class"); class == "tg-spoiler" {
			return types.Entity{Type: types.Spoiler}, true
		}
	case "tg-emoji":
		return emojiEntity(n, "emoji-id")
	case "emoji":
		return emojiEntity(n, "id")
	case "a":
		if href, found := attr(n, "href"); found {
			return types.LinkEntity(href), true
		}
	}
	return types.Entity{}, false
}

func emojiEntity(n *html.Node, key string) (types.Entity, bool) {
	raw, found := attr(n, key)
	if !found {
		return types.Entity{}, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return types.Entity{}, false
	}
	return types.Entity{Type: types.CustomEmoji, CustomEmojiID: id}, true
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
