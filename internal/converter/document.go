package converter

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/tgentities/internal/types"
	"github.com/riverfjs/tgentities/internal/util"
)

var (
	errUnexpectedEnd = errors.New("closing tag does not match the open element")
	errUnclosed      = errors.New("element is never closed")
)

// ParseDocument builds a node tree from markup. The tree is rooted at a
// synthetic <body> element.
//
// Tags must be balanced: unlike an HTML5 parser, nothing is reopened,
// reparented or implied, and a stray or missing end tag fails with a
// *types.MalformedDocumentError. <br> needs no end tag. Comments and
// doctypes are dropped.
//
// The content of <textarea>, <title>, <script> and <style> is raw text to
// the tokenizer, so markup inside them is kept literally and never becomes
// entities: <textarea><b>x</b></textarea> yields the text "<b>x</b>".
func ParseDocument(markup string) (*html.Node, error) {
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	open := []*html.Node{root}
	pos := 0

	z := html.NewTokenizer(strings.NewReader(strings.Trim(markup, util.TrimCutset)))
	for {
		tt := z.Next()
		at := pos
		pos += len(z.Raw())
		cur := open[len(open)-1]

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, &types.MalformedDocumentError{Pos: at, Err: err}
			}
			if len(open) > 1 {
				return nil, &types.MalformedDocumentError{Pos: at, Tag: open[len(open)-1].Data, Err: errUnclosed}
			}
			return root, nil

		case html.TextToken:
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: string(z.Text())})

		case html.StartTagToken, html.SelfClosingTagToken:
			node := elementNode(z)
			cur.AppendChild(node)
			if tt == html.StartTagToken && node.DataAtom != atom.Br {
				open = append(open, node)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				cur.AppendChild(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br})
				continue
			}
			if len(open) == 1 || cur.Data != string(name) {
				return nil, &types.MalformedDocumentError{Pos: at, Tag: "/" + string(name), Err: errUnexpectedEnd}
			}
			open = open[:len(open)-1]
		}
	}
}

func elementNode(z *html.Tokenizer) *html.Node {
	name, more := z.TagName()
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     string(name),
		DataAtom: atom.Lookup(name),
	}
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		node.Attr = append(node.Attr, html.Attribute{Key: string(key), Val: string(val)})
	}
	return node
}
